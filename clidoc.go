package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

const cliDocsLongDesc = `
Generate one Markdown page per command of an installed CLI tool.

The tool's top-level help (` + "`<command> -h`" + `) becomes the first page. When that
help output lists subcommands after an "Available commands" marker, e.g.

  Available commands:
    {build, test, clean}

each listed subcommand gets its own page from ` + "`<command> <subcommand> -h`" + `.
A failing help invocation is recorded inside its page rather than aborting
the run, so one broken subcommand cannot sink the batch.
`

type cliDocOptions struct {
	command string
	output  string
	name    string
	title   string
	dryRun  bool
}

func newCLIDocsCmd(stdout io.Writer) *cobra.Command {
	var opts cliDocOptions
	cmd := &cobra.Command{
		Use:           "cli",
		Short:         "Generate Markdown pages from a CLI tool's help output",
		Long:          strings.TrimSpace(cliDocsLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.command, "command", "", "CLI tool to document (name on PATH or an absolute path)")
	flags.StringVar(&opts.output, "output", "cli_docs", "directory for the generated Markdown pages")
	flags.StringVar(&opts.name, "name", "", "file stem for the top-level page (default: the command's base name)")
	flags.StringVar(&opts.title, "title", "", `title for the top-level page (default: "<command> CLI")`)
	flags.BoolVar(&opts.dryRun, "dry-run", false, "print the pages instead of writing files")
	_ = cmd.MarkFlagRequired("command")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return generateCLIDocs(cmd.Context(), stdout, opts)
	}
	return cmd
}

// generateCLIDocs documents an installed CLI tool: one page for the tool
// itself plus one per subcommand discovered in its help output.
func generateCLIDocs(ctx context.Context, stdout io.Writer, opts cliDocOptions) error {
	outDir, err := filepath.Abs(opts.output)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}

	base := filepath.Base(opts.command)
	name := opts.name
	if name == "" {
		name = base
	}
	title := opts.title
	if title == "" {
		title = base + " CLI"
	}

	topHelp := helpText(ctx, opts.command, "-h")
	if err := writePage(stdout, filepath.Join(outDir, name+".md"), renderHelpPage(title, topHelp), opts.dryRun); err != nil {
		return err
	}

	subs := extractSubcommands(topHelp)
	if len(subs) == 0 {
		logger.Warn("no subcommands found in help output", "command", base)
	} else {
		logger.Info("found subcommands", "command", base, "count", len(subs), "names", strings.Join(subs, ", "))
	}

	for _, sub := range subs {
		page := renderHelpPage(base+" "+sub, helpText(ctx, opts.command, sub, "-h"))
		if err := writePage(stdout, filepath.Join(outDir, name+"_"+sub+".md"), page, opts.dryRun); err != nil {
			return err
		}
	}

	if opts.dryRun {
		logger.Info("dry run complete, no files written", "dir", outDir)
	} else {
		logger.Info("cli docs generated", "dir", outDir)
	}
	return nil
}

// helpText captures a help invocation's stdout. On failure the error text
// becomes the page body, so the page still documents what went wrong.
func helpText(ctx context.Context, argv ...string) string {
	stdout, stderr, err := runCapture(ctx, "", argv...)
	if err != nil {
		logger.Error("help command failed", "argv", strings.Join(argv, " "), "error", err)
		return "[ERROR] Failed to run " + strings.Join(argv, " ") + ":\n" + failureText(stderr, err)
	}
	return stdout
}
