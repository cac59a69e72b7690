package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
)

const renderLongDesc = `
Render a documentation template into a single page, typically a wiki Home.md.

The template receives a flat context assembled from several optional
sources: launch doc and CLI doc listings generated earlier, package manifest
metadata (description, license, maintainers), remote branch names, and
pinned dependency entries from a .repos manifest. A missing source leaves
its keys empty instead of failing the render.

Context keys: repo_name, github_user, branches, launch_docs, cli_docs,
description, license, maintainers, dependencies, docs_workflow_filename,
tests_workflow_filename.
`

type renderOptions struct {
	templateDir       string
	templateName      string
	output            string
	launchDocsDir     string
	cliDocsDir        string
	workspace         string
	packageName       string
	githubUser        string
	docsWorkflowFile  string
	testsWorkflowFile string
	dependencyFiles   []string
	dryRun            bool
}

func newRenderCmd(stdout io.Writer) *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:           "render",
		Short:         "Render a documentation template with gathered metadata",
		Long:          strings.TrimSpace(renderLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.templateDir, "template-dir", "", "directory containing the template")
	flags.StringVar(&opts.templateName, "template-name", "", "template file name (e.g. Home.template.md)")
	flags.StringVar(&opts.output, "output", "", "path for the rendered file (e.g. wiki/Home.md)")
	flags.StringVar(&opts.launchDocsDir, "launch-docs-dir", "", "base directory holding per-package launch doc pages")
	flags.StringVar(&opts.cliDocsDir, "cli-docs-dir", "", "directory holding CLI doc pages")
	flags.StringVar(&opts.workspace, "workspace", "", "path to the ROS 2 workspace root")
	flags.StringVar(&opts.packageName, "package-name", "", "package whose docs and metadata are gathered")
	flags.StringVar(&opts.githubUser, "github-user", "csun-arcs", "GitHub user or org for URLs built in templates")
	flags.StringVar(&opts.docsWorkflowFile, "docs-workflow-filename", "generate-docs.yml", "workflow file name behind documentation badges")
	flags.StringVar(&opts.testsWorkflowFile, "tests-workflow-filename", "run-tests.yml", "workflow file name behind test badges")
	flags.StringSliceVar(&opts.dependencyFiles, "dependencies-files", []string{"deps.repos", "dependencies.repos"}, "candidate dependency manifest names, first existing wins")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "print the rendered page instead of writing it")
	_ = cmd.MarkFlagRequired("template-dir")
	_ = cmd.MarkFlagRequired("template-name")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("launch-docs-dir")
	_ = cmd.MarkFlagRequired("workspace")
	_ = cmd.MarkFlagRequired("package-name")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return renderTemplate(cmd.Context(), stdout, opts)
	}
	return cmd
}

// renderTemplate loads the template, gathers the context, and writes (or
// prints) the rendered page. The renderer itself adds no content beyond
// what the template expresses.
func renderTemplate(ctx context.Context, stdout io.Writer, opts renderOptions) error {
	tmplPath := filepath.Join(opts.templateDir, opts.templateName)
	raw, err := os.ReadFile(tmplPath)
	if err != nil {
		return fmt.Errorf("load template: %w", err)
	}
	tmpl, err := template.New(opts.templateName).Funcs(templateFuncs()).Parse(string(raw))
	if err != nil {
		return fmt.Errorf("parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, buildRenderContext(ctx, opts)); err != nil {
		return fmt.Errorf("render template: %w", err)
	}

	if opts.dryRun {
		logger.Info("dry run enabled, rendered output below")
		delim := strings.Repeat("=", 40)
		fmt.Fprintln(stdout, delim)
		fmt.Fprintln(stdout, buf.String())
		fmt.Fprintln(stdout, delim)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.output), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return err
	}
	logger.Info("rendered template written", "path", opts.output)
	return nil
}

// buildRenderContext gathers every metadata source into the flat map the
// template sees. Each source is optional; a missing one degrades to empty
// values with a warning.
func buildRenderContext(ctx context.Context, opts renderOptions) map[string]any {
	launchDir := filepath.Join(opts.launchDocsDir, opts.packageName)
	launchDocs, err := listDocPages(launchDir, ".launch.md")
	if err != nil {
		logger.Warn("launch docs directory not found", "dir", launchDir)
	}
	if len(launchDocs) == 0 {
		logger.Warn("no launch docs found", "package", opts.packageName)
	} else {
		logger.Info("found launch docs", "package", opts.packageName, "count", len(launchDocs))
	}

	var cliDocs []docPage
	if opts.cliDocsDir != "" {
		cliDocs, err = listDocPages(opts.cliDocsDir, ".md")
		if err != nil {
			logger.Warn("cli docs directory not found", "dir", opts.cliDocsDir)
		} else {
			logger.Info("found cli docs", "count", len(cliDocs))
		}
	}

	pkgDir := filepath.Join(opts.workspace, "src", opts.packageName)
	meta := extractPackageMetadata(pkgDir)

	return map[string]any{
		"repo_name":               opts.packageName,
		"github_user":             opts.githubUser,
		"branches":                remoteBranches(ctx, pkgDir),
		"launch_docs":             launchDocs,
		"cli_docs":                cliDocs,
		"description":             meta.Description,
		"license":                 meta.License,
		"maintainers":             meta.Maintainers,
		"dependencies":            loadDependencies(pkgDir, opts.dependencyFiles),
		"docs_workflow_filename":  opts.docsWorkflowFile,
		"tests_workflow_filename": opts.testsWorkflowFile,
	}
}

// templateFuncs are the helpers templates may call beyond plain
// substitution.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"join":  strings.Join,
		"title": func(s string) string { return titleize(s, "") },
	}
}
