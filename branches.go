package main

import (
	"context"
	"strings"
)

// parseBranchRefs extracts branch names from git ls-remote --heads output,
// one "<sha>\trefs/heads/<name>" line per branch.
func parseBranchRefs(output string) []string {
	var branches []string
	for _, line := range strings.Split(output, "\n") {
		if _, ref, ok := strings.Cut(line, "refs/heads/"); ok {
			branches = append(branches, strings.TrimSpace(ref))
		}
	}
	return branches
}

// remoteBranches lists the branch names advertised by the origin remote of
// the repository at repoDir. Any failure (no git, not a repository, no
// origin remote) degrades to an empty list with a warning so rendering can
// proceed without branch links.
func remoteBranches(ctx context.Context, repoDir string) []string {
	stdout, stderr, err := runCapture(ctx, repoDir, "git", "ls-remote", "--heads", "origin")
	if err != nil {
		logger.Warn("could not retrieve branch list", "dir", repoDir, "error", failureText(stderr, err))
		return nil
	}
	return parseBranchRefs(stdout)
}
