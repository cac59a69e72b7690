package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// docPage describes one generated Markdown page for link listings: the file
// name on disk and a human-readable title derived from it.
type docPage struct {
	Name  string
	Title string
}

// writePage writes a rendered Markdown page, creating parent directories as
// needed. In dry-run mode it prints the page to stdout instead, so both
// modes share the same rendered content.
func writePage(stdout io.Writer, path, content string, dryRun bool) error {
	if dryRun {
		logger.Info("dry run, skipping write", "path", path)
		fmt.Fprintln(stdout, content)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	logger.Info("wrote page", "path", path)
	return nil
}

// renderHelpPage wraps captured help text in a titled, fenced Markdown page.
func renderHelpPage(title, body string) string {
	return fmt.Sprintf("# %s\n\n```\n%s\n```\n", title, body)
}

// renderLaunchPage formats one launch file's argument listing as Markdown.
// relPath is shown relative to the workspace root.
func renderLaunchPage(fileName, relPath, listing string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# `%s`\n\n", fileName)
	fmt.Fprintf(&b, "**Path**: `%s`\n\n", relPath)
	fmt.Fprintf(&b, "```\n%s\n```\n", listing)
	return b.String()
}

// listDocPages returns the Markdown files directly under dir as docPage
// records in file name order. The error reports an unreadable or missing
// directory; callers decide how loudly to treat that.
func listDocPages(dir, titleSuffix string) ([]docPage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var docs []docPage
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		docs = append(docs, docPage{
			Name:  entry.Name(),
			Title: titleize(entry.Name(), titleSuffix),
		})
	}
	return docs, nil
}

// titleize turns a file name into a page title: the suffix is dropped,
// underscores become spaces, and each word is title-cased.
func titleize(name, suffix string) string {
	base := strings.ReplaceAll(strings.TrimSuffix(name, suffix), "_", " ")
	return cases.Title(language.English).String(base)
}
