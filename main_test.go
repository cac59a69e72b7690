package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// cliToolScript fakes an argparse-style tool: top-level help advertises
// three subcommands, and each subcommand answers its own -h.
const cliToolScript = `if [ "$1" = "-h" ]; then
  echo "usage: turtlectl [-h] <command> ..."
  echo ""
  echo "Teleoperation helper for the turtle platform."
  echo ""
  echo "Available commands:"
  echo "  {dock, undock, patrol}"
  exit 0
fi
echo "usage: turtlectl $1 [-h]"
echo "help for turtlectl $1"
`

// launchToolScript fakes ros2 launch <file> --show-args.
const launchToolScript = `echo "Arguments (pass arguments as '<name>:=<value>'):"
echo ""
echo "    'use_sim_time':"
echo "        Use the simulation clock instead of wall time."
echo "        (default: 'false')"
`

func TestCLIDocsWritesPagePerSubcommand(t *testing.T) {
	tmp := t.TempDir()
	tool := writeScript(t, tmp, "turtlectl", cliToolScript)
	outDir := filepath.Join(tmp, "cli_docs")

	if err := run([]string{"cli", "--command", tool, "--output", outDir}, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}

	top, err := os.ReadFile(filepath.Join(outDir, "turtlectl.md"))
	if err != nil {
		t.Fatalf("read top page: %v", err)
	}
	assertContains(t, string(top), "# turtlectl CLI")
	assertContains(t, string(top), "Available commands")

	for _, sub := range []string{"dock", "undock", "patrol"} {
		page, err := os.ReadFile(filepath.Join(outDir, "turtlectl_"+sub+".md"))
		if err != nil {
			t.Fatalf("read %s page: %v", sub, err)
		}
		assertContains(t, string(page), "# turtlectl "+sub)
		assertContains(t, string(page), "help for turtlectl "+sub)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 pages, found %d", len(entries))
	}
}

func TestCLIDocsHonorsNameAndTitleOverrides(t *testing.T) {
	tmp := t.TempDir()
	tool := writeScript(t, tmp, "turtlectl", cliToolScript)
	outDir := filepath.Join(tmp, "cli_docs")

	err := run([]string{
		"cli", "--command", tool, "--output", outDir,
		"--name", "teleop", "--title", "Teleop Reference",
	}, io.Discard)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	top, err := os.ReadFile(filepath.Join(outDir, "teleop.md"))
	if err != nil {
		t.Fatalf("read top page: %v", err)
	}
	assertContains(t, string(top), "# Teleop Reference")
	if _, err := os.Stat(filepath.Join(outDir, "teleop_dock.md")); err != nil {
		t.Fatalf("renamed subcommand page missing: %v", err)
	}
}

func TestCLIDocsDryRunMatchesRealRun(t *testing.T) {
	tmp := t.TempDir()
	tool := writeScript(t, tmp, "turtlectl", cliToolScript)

	realDir := filepath.Join(tmp, "real")
	if err := run([]string{"cli", "--command", tool, "--output", realDir}, io.Discard); err != nil {
		t.Fatalf("real run: %v", err)
	}
	written, err := os.ReadFile(filepath.Join(realDir, "turtlectl_dock.md"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}

	var buf bytes.Buffer
	dryDir := filepath.Join(tmp, "dry")
	if err := run([]string{"cli", "--command", tool, "--output", dryDir, "--dry-run"}, &buf); err != nil {
		t.Fatalf("dry run: %v", err)
	}
	assertContains(t, buf.String(), string(written))
	if _, err := os.Stat(dryDir); !os.IsNotExist(err) {
		t.Fatalf("dry run created the output directory")
	}
}

func TestCLIDocsEmbedsHelpFailure(t *testing.T) {
	tmp := t.TempDir()
	tool := writeScript(t, tmp, "brokenctl", "echo \"no help here\" >&2\nexit 3\n")
	outDir := filepath.Join(tmp, "cli_docs")

	if err := run([]string{"cli", "--command", tool, "--output", outDir}, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}

	top, err := os.ReadFile(filepath.Join(outDir, "brokenctl.md"))
	if err != nil {
		t.Fatalf("read top page: %v", err)
	}
	assertContains(t, string(top), "[ERROR] Failed to run")
	assertContains(t, string(top), "no help here")

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the top page, found %d files", len(entries))
	}
}

func TestLaunchDocsWritesPagePerLaunchFile(t *testing.T) {
	tmp := t.TempDir()
	tool := writeScript(t, tmp, "ros2", launchToolScript)
	outBase := filepath.Join(tmp, "launch_docs")

	err := run([]string{
		"launch",
		"--workspace", filepath.Join("testdata", "workspace"),
		"--package-name", "turtle_nav",
		"--launch-tool", tool,
		"--output", outBase,
	}, io.Discard)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	docsDir := filepath.Join(outBase, "turtle_nav")
	page, err := os.ReadFile(filepath.Join(docsDir, "nav_bringup.launch.md"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	assertContains(t, string(page), "# `nav_bringup.launch.py`")
	assertContains(t, string(page), "**Path**: `"+filepath.Join("src", "turtle_nav", "launch", "nav_bringup.launch.py")+"`")
	assertContains(t, string(page), "Arguments (pass arguments as")

	// Nested launch/ directories are included, everything else is not.
	if _, err := os.Stat(filepath.Join(docsDir, "deep_nav.launch.md")); err != nil {
		t.Fatalf("nested launch page missing: %v", err)
	}
	entries, err := os.ReadDir(docsDir)
	if err != nil {
		t.Fatalf("read docs dir: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 pages, found %d", len(entries))
	}
}

func TestLaunchDocsEmbedsShowArgsFailure(t *testing.T) {
	tmp := t.TempDir()
	tool := writeScript(t, tmp, "ros2", "echo \"launch file has no arguments handler\" >&2\nexit 1\n")
	outBase := filepath.Join(tmp, "launch_docs")

	err := run([]string{
		"launch",
		"--workspace", filepath.Join("testdata", "workspace"),
		"--package-name", "turtle_nav",
		"--launch-tool", tool,
		"--output", outBase,
	}, io.Discard)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	page, err := os.ReadFile(filepath.Join(outBase, "turtle_nav", "sensor_fusion.launch.md"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	assertContains(t, string(page), "[ERROR] Failed to show args for")
	assertContains(t, string(page), "launch file has no arguments handler")
}

func TestLaunchDocsMissingPackageFails(t *testing.T) {
	err := run([]string{
		"launch",
		"--workspace", filepath.Join("testdata", "workspace"),
		"--package-name", "ghost_pkg",
		"--output", filepath.Join(t.TempDir(), "launch_docs"),
	}, io.Discard)
	if err == nil {
		t.Fatal("expected an error for a missing package directory")
	}
	assertContains(t, err.Error(), "package directory not found")
}

func TestLaunchDocsEmptyPackageSucceeds(t *testing.T) {
	outBase := filepath.Join(t.TempDir(), "launch_docs")
	err := run([]string{
		"launch",
		"--workspace", filepath.Join("testdata", "workspace"),
		"--package-name", "bare_controls",
		"--output", outBase,
	}, io.Discard)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(outBase); !os.IsNotExist(err) {
		t.Fatalf("expected no output for a package without launch files")
	}
}

func TestLaunchDocsDryRunWritesNothing(t *testing.T) {
	tmp := t.TempDir()
	tool := writeScript(t, tmp, "ros2", launchToolScript)
	outBase := filepath.Join(tmp, "launch_docs")

	var buf bytes.Buffer
	err := run([]string{
		"launch",
		"--workspace", filepath.Join("testdata", "workspace"),
		"--package-name", "turtle_nav",
		"--launch-tool", tool,
		"--output", outBase,
		"--dry-run",
	}, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(outBase); !os.IsNotExist(err) {
		t.Fatalf("dry run created the output directory")
	}
	// Intended file names go to the log; stdout stays free of page content.
	if buf.Len() != 0 {
		t.Fatalf("unexpected stdout: %q", buf.String())
	}
}

func TestRenderWritesPage(t *testing.T) {
	tmp := t.TempDir()
	ws := seedWorkspace(t, tmp)
	out := filepath.Join(tmp, "wiki", "Home.md")

	err := run([]string{
		"render",
		"--template-dir", filepath.Join("testdata", "templates"),
		"--template-name", "Home.template.md",
		"--output", out,
		"--launch-docs-dir", filepath.Join("testdata", "launch_docs"),
		"--cli-docs-dir", filepath.Join("testdata", "cli_docs"),
		"--workspace", ws,
		"--package-name", "turtle_nav",
	}, io.Discard)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read rendered page: %v", err)
	}
	content := string(raw)
	assertContains(t, content, "# Turtle Nav")
	assertContains(t, content, "Waypoint navigation stack for the ARCS turtle platform.")
	assertContains(t, content, "**License:** Apache-2.0")
	assertContains(t, content, "Kara Bye (kbye [at] example [dot] com)")
	assertContains(t, content, "Jordan Ross (jross [at] lab [dot] example [dot] edu)")
	assertContains(t, content, "[Nav Bringup](nav_bringup.launch.md)")
	assertContains(t, content, "[Sensor Fusion](sensor_fusion.launch.md)")
	assertContains(t, content, "[Arcscfg Build](arcscfg_build.md)")
	assertContains(t, content, "[arcs_msgs](https://github.com/csun-arcs/arcs_msgs.git) @ main")
	assertContains(t, content, "[turtle_description](https://github.com/csun-arcs/turtle_description.git) @ humble")
	assertContains(t, content, "csun-arcs/turtle_nav/actions/workflows/generate-docs.yml")
	assertContains(t, content, "csun-arcs/turtle_nav/actions/workflows/run-tests.yml")
}

func TestRenderDryRunPrintsBetweenDelimiters(t *testing.T) {
	tmp := t.TempDir()
	ws := seedWorkspace(t, tmp)
	out := filepath.Join(tmp, "wiki", "Home.md")

	var buf bytes.Buffer
	err := run([]string{
		"render",
		"--template-dir", filepath.Join("testdata", "templates"),
		"--template-name", "Home.template.md",
		"--output", out,
		"--launch-docs-dir", filepath.Join("testdata", "launch_docs"),
		"--workspace", ws,
		"--package-name", "turtle_nav",
		"--dry-run",
	}, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	printed := buf.String()
	delim := strings.Repeat("=", 40)
	if got := strings.Count(printed, delim); got != 2 {
		t.Fatalf("expected 2 delimiter lines, found %d\n\n%s", got, printed)
	}
	assertContains(t, printed, "# Turtle Nav")
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("dry run wrote the output file")
	}
}

func TestRenderMissingSourcesDegrade(t *testing.T) {
	tmp := t.TempDir()
	out := filepath.Join(tmp, "Home.md")

	// No package directory, no launch docs, no cli docs: every metadata
	// source ends up empty and the render still succeeds.
	err := run([]string{
		"render",
		"--template-dir", filepath.Join("testdata", "templates"),
		"--template-name", "Home.template.md",
		"--output", out,
		"--launch-docs-dir", filepath.Join(tmp, "launch_docs"),
		"--workspace", filepath.Join(tmp, "ws"),
		"--package-name", "ghost_nav",
	}, io.Discard)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	content, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read rendered page: %v", err)
	}
	assertContains(t, string(content), "# Ghost Nav")
	if strings.Contains(string(content), "[at]") {
		t.Fatalf("unexpected maintainer output:\n%s", content)
	}
}

func TestRenderMissingTemplateFails(t *testing.T) {
	err := run([]string{
		"render",
		"--template-dir", filepath.Join("testdata", "templates"),
		"--template-name", "Nope.template.md",
		"--output", filepath.Join(t.TempDir(), "Home.md"),
		"--launch-docs-dir", filepath.Join("testdata", "launch_docs"),
		"--workspace", filepath.Join("testdata", "workspace"),
		"--package-name", "turtle_nav",
	}, io.Discard)
	if err == nil {
		t.Fatal("expected an error for a missing template")
	}
	assertContains(t, err.Error(), "load template")
}

func TestCompletionCommand(t *testing.T) {
	var buf bytes.Buffer
	if err := run([]string{"completion", "bash"}, &buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected completion output")
	}
	assertContains(t, buf.String(), "__start_rosdocgen")
}

func TestGenDocsCommand(t *testing.T) {
	tmp := t.TempDir()
	if err := run([]string{"gen-docs", tmp}, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, name := range []string{"rosdocgen.md", "rosdocgen_cli.md", "rosdocgen_launch.md", "rosdocgen_render.md"} {
		if _, err := os.Stat(filepath.Join(tmp, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
}

// writeScript drops an executable fake tool into dir and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools require a POSIX shell")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

// seedWorkspace lays out a throwaway workspace with manifest and dependency
// files for the turtle_nav package.
func seedWorkspace(t *testing.T, dir string) string {
	t.Helper()
	ws := filepath.Join(dir, "ws")
	pkgDir := filepath.Join(ws, "src", "turtle_nav")
	for _, f := range []string{"package.xml", "deps.repos"} {
		src := filepath.Join("testdata", "workspace", "src", "turtle_nav", f)
		data, err := os.ReadFile(src)
		if err != nil {
			t.Fatalf("read fixture %s: %v", f, err)
		}
		if err := os.MkdirAll(pkgDir, 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(pkgDir, f), data, 0o644); err != nil {
			t.Fatalf("write %s: %v", f, err)
		}
	}
	return ws
}

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\n\n%s", needle, haystack)
	}
}
