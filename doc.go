// # rosdocgen
//
// `rosdocgen` generates wiki-ready Markdown documentation for ROS 2
// workspaces. It scrapes CLI help output, queries launch files for their
// declared arguments, and renders a templated landing page that links the
// generated docs together with package metadata.
//
// Key capabilities:
//
//   - document an installed CLI tool one page per subcommand, discovered by
//     scraping the `{build, test, clean}` style listing that argparse help
//     prints after its "Available commands" marker.
//   - document every `*.launch.py` file of a workspace package with the
//     argument listing reported by `ros2 launch <file> --show-args`.
//   - render a template (typically `Home.template.md`) into a wiki landing
//     page, fed by launch doc and CLI doc listings, `package.xml` metadata,
//     remote branch names, and pinned `.repos` dependency entries.
//   - degrade softly: a failing help or launch query is recorded inside the
//     affected page, and missing metadata sources render as empty values.
//   - ship a Cobra-powered CLI with rich `--help`, `--version`, shell
//     completion, and a `gen-docs` helper for publishing the CLI reference
//     itself.
//
// ## Usage
//
//	rosdocgen <command> [flags]
//
// Examples:
//
//   - Document the `arcscfg` tool, one Markdown page per subcommand:
//
//     rosdocgen cli --command arcscfg --output wiki/cli_docs
//
//   - Document the launch files of one workspace package:
//
//     rosdocgen launch --workspace ros_ws --package-name turtle_nav
//
//   - Render the wiki landing page from a template:
//
//     rosdocgen render --template-dir templates --template-name Home.template.md \
//     --output wiki/Home.md --launch-docs-dir ros_ws/launch_docs \
//     --workspace ros_ws --package-name turtle_nav
//
// ## CLI Pages
//
// `rosdocgen cli` runs `<command> -h`, writes the captured help as the
// top-level page, then runs `<command> <subcommand> -h` for every name found
// in the brace-enclosed list after the "Available commands" marker. Pages
// are named `<name>.md` and `<name>_<subcommand>.md`. A help invocation
// that fails gets its stderr embedded in the page instead of aborting the
// batch.
//
// ## Launch Pages
//
// `rosdocgen launch` walks `<workspace>/src/<package>` for launch files in
// `launch/` directories and writes one page per file under
// `<workspace>/launch_docs/<package>/`. Each page records the file's
// workspace-relative path and its `--show-args` listing. A missing package
// directory is the one hard failure and exits non-zero.
//
// ## Rendering
//
// `rosdocgen render` assembles a flat template context (`repo_name`,
// `github_user`, `branches`, `launch_docs`, `cli_docs`, `description`,
// `license`, `maintainers`, `dependencies`, `docs_workflow_filename`,
// `tests_workflow_filename`) and substitutes it into the named template.
// Maintainer emails come in plaintext and an obfuscated `[at]`/`[dot]` form
// for publishing. Templates may call `join` and `title` beyond plain
// substitution.
//
// ## Dry Runs
//
// Every generator accepts `--dry-run`. The CLI generator prints the pages
// it would write, the launch generator prints the intended file names, and
// the renderer prints the rendered page between `=` delimiter lines. Dry
// runs perform the same external queries and render the same content as
// real runs; only the writes are skipped.
//
// ## Shell Completion
//
// Autocompletion is provided via Cobra's generators:
//
//	rosdocgen completion bash        # bash
//	rosdocgen completion zsh         # zsh
//	rosdocgen completion fish | source
//	rosdocgen completion powershell | Out-String | Invoke-Expression
//
// ## CLI Docs
//
// `rosdocgen` can generate Markdown for each of its own commands via
// `gen-docs`, handy when the tool's reference should live in the same wiki
// as the docs it generates:
//
//	rosdocgen gen-docs wiki/rosdocgen
//
// Every command becomes its own Markdown file under the provided directory.
package main
