package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

const launchDocsLongDesc = `
Generate one Markdown page per ROS 2 launch file of a workspace package.

Launch files are discovered under ` + "`<workspace>/src/<package>`" + ` in any
directory named launch. Each file's declared arguments are captured with
` + "`ros2 launch <file> --show-args`" + ` and written as a fenced listing together
with the file's workspace-relative path. A launch file whose argument query
fails still gets a page recording the failure.

The package source directory must exist; a missing package aborts the run.
`

type launchDocOptions struct {
	workspace    string
	output       string
	packageName  string
	launchTool   string
	launchSuffix string
	dryRun       bool
}

func newLaunchDocsCmd(stdout io.Writer) *cobra.Command {
	var opts launchDocOptions
	cmd := &cobra.Command{
		Use:           "launch",
		Short:         "Generate Markdown pages from a package's launch files",
		Long:          strings.TrimSpace(launchDocsLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.workspace, "workspace", "", "path to the ROS 2 workspace root (e.g. ros_ws)")
	flags.StringVar(&opts.output, "output", "", "base directory for generated docs (default: <workspace>/launch_docs)")
	flags.StringVar(&opts.packageName, "package-name", "", "workspace package whose launch files are documented")
	flags.StringVar(&opts.launchTool, "launch-tool", "ros2", "tool invoked as '<tool> launch <file> --show-args'")
	flags.StringVar(&opts.launchSuffix, "launch-suffix", ".launch.py", "file name suffix that marks a launch file")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "print intended file names instead of writing")
	_ = cmd.MarkFlagRequired("workspace")
	_ = cmd.MarkFlagRequired("package-name")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return generateLaunchDocs(cmd.Context(), stdout, opts)
	}
	return cmd
}

// generateLaunchDocs documents every launch file of one workspace package.
// A missing package source directory is the one hard failure; everything
// else degrades to warnings or error text inside the affected page.
func generateLaunchDocs(ctx context.Context, stdout io.Writer, opts launchDocOptions) error {
	wsDir, err := filepath.Abs(opts.workspace)
	if err != nil {
		return fmt.Errorf("resolve workspace: %w", err)
	}
	baseDir := opts.output
	if baseDir == "" {
		baseDir = filepath.Join(wsDir, "launch_docs")
	}
	baseDir, err = filepath.Abs(baseDir)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}
	docsDir := filepath.Join(baseDir, opts.packageName)

	logger.Info("workspace root", "dir", wsDir)
	logger.Info("docs output directory", "dir", docsDir)
	logger.Info("targeting package", "package", opts.packageName)

	pkgSrc := filepath.Join(wsDir, "src", opts.packageName)
	if _, err := os.Stat(pkgSrc); err != nil {
		logger.Error("package directory not found", "dir", pkgSrc)
		return fmt.Errorf("package directory not found: %s", pkgSrc)
	}

	launchFiles, err := findLaunchFiles(pkgSrc, opts.launchSuffix)
	if err != nil {
		return fmt.Errorf("scan launch files: %w", err)
	}
	if len(launchFiles) == 0 {
		logger.Warn("no launch files found", "package", opts.packageName)
	} else {
		logger.Info("found launch files", "count", len(launchFiles))
		for _, lf := range launchFiles {
			logger.Info("launch file", "path", lf)
		}
	}

	for _, lf := range launchFiles {
		listing, errOut, err := runCapture(ctx, "", opts.launchTool, "launch", lf, "--show-args")
		if err != nil {
			logger.Error("failed to show launch arguments", "file", lf, "error", err)
			listing = fmt.Sprintf("[ERROR] Failed to show args for `%s`:\n%s", lf, failureText(errOut, err))
		}

		fileName := launchStem(filepath.Base(lf)) + ".md"
		if opts.dryRun {
			logger.Info("dry run, skipping write", "file", fileName, "dir", docsDir)
			continue
		}
		rel, relErr := filepath.Rel(wsDir, lf)
		if relErr != nil {
			rel = lf
		}
		content := renderLaunchPage(filepath.Base(lf), rel, listing)
		if err := writePage(stdout, filepath.Join(docsDir, fileName), content, false); err != nil {
			return err
		}
	}

	if opts.dryRun {
		logger.Info("launch docs simulated", "dir", docsDir)
	} else {
		logger.Info("launch docs generated", "dir", docsDir)
	}
	return nil
}

// findLaunchFiles walks the package source tree and collects files that sit
// in a directory named launch and end in the launch suffix, sorted by path.
func findLaunchFiles(root, suffix string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		if filepath.Base(filepath.Dir(path)) != "launch" {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// launchStem drops the final extension only, so nav.launch.py keeps its
// .launch marker in the page file name.
func launchStem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
