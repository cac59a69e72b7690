package main

import (
	"regexp"
	"strings"
)

// subcommandMarker is the phrase that introduces the subcommand listing in
// argparse-style help output.
const subcommandMarker = "Available commands"

// braceListRe matches a line holding a brace-enclosed name list, e.g.
// "  {build, test, clean}".
var braceListRe = regexp.MustCompile(`^\s*\{([^}]*)\}`)

// extractSubcommands scrapes the brace-enclosed subcommand list that follows
// the marker phrase in a tool's help text. Names keep their original order.
// Help text without the marker, or without a brace list after it, yields an
// empty list.
func extractSubcommands(helpText string) []string {
	inSection := false
	for _, line := range strings.Split(helpText, "\n") {
		if strings.Contains(line, subcommandMarker) {
			inSection = true
		}
		if !inSection {
			continue
		}
		m := braceListRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		var subs []string
		for _, name := range strings.Split(m[1], ",") {
			if name = strings.TrimSpace(name); name != "" {
				subs = append(subs, name)
			}
		}
		return subs
	}
	return nil
}
