package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

// logger reports progress on stderr, keeping stdout clean for page content
// in dry-run mode.
var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

var rootLongDesc = titleStyle.Render("rosdocgen") + subtitleStyle.Render(" - Markdown documentation generator for ROS 2 workspaces") + `

rosdocgen turns the pieces of a ROS 2 workspace into wiki-ready Markdown:
CLI help output, launch file argument listings, and a rendered landing page
that stitches the generated docs together with package metadata.

` + subtitleStyle.Render("Typical wiki build:") + `

  ` + cmdStyle.Render("rosdocgen cli --command arcscfg --output wiki/cli_docs") + `
  ` + cmdStyle.Render("rosdocgen launch --workspace ros_ws --package-name turtle_nav") + `
  ` + cmdStyle.Render("rosdocgen render --template-dir templates --template-name Home.template.md \\") + `
  ` + cmdStyle.Render("    --output wiki/Home.md --launch-docs-dir ros_ws/launch_docs \\") + `
  ` + cmdStyle.Render("    --workspace ros_ws --package-name turtle_nav") + `

Each generator degrades softly: a tool whose help query fails gets the error
text embedded in its page, and missing metadata sources render as empty
values rather than aborting the build.`

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return fang.Execute(
		context.Background(),
		cmd,
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rosdocgen",
		Short:         "Generate Markdown docs for ROS 2 workspaces",
		Long:          rootLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(newCLIDocsCmd(stdout))
	cmd.AddCommand(newLaunchDocsCmd(stdout))
	cmd.AddCommand(newRenderCmd(stdout))
	cmd.AddCommand(newCompletionCmd(cmd, stdout))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command, stdout io.Writer) *cobra.Command {
	const longDesc = `Generate shell completion scripts for rosdocgen.

The output should be evaluated by your shell. For example:

  # bash
  rosdocgen completion bash > /usr/local/etc/bash_completion.d/rosdocgen

  # zsh
  rosdocgen completion zsh > "${fpath[1]}/_rosdocgen"

  # fish
  rosdocgen completion fish | source

  # PowerShell
  rosdocgen completion powershell | Out-String | Invoke-Expression
`
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(stdout)
		case "zsh":
			return root.GenZshCompletion(stdout)
		case "fish":
			return root.GenFishCompletion(stdout, true)
		case "powershell":
			return root.GenPowerShellCompletion(stdout)
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI itself",
		Long: strings.TrimSpace(`
Write a Markdown file per rosdocgen command, suitable for publishing the
tool's own CLI reference alongside the generated workspace docs.

Example:

  rosdocgen gen-docs wiki/rosdocgen
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
