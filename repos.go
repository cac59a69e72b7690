package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// reposFile mirrors the vcstool .repos manifest layout: a top-level
// repositories mapping from dependency name to repository record.
type reposFile struct {
	Repositories map[string]repoEntry `yaml:"repositories"`
}

type repoEntry struct {
	Type    string `yaml:"type"`
	URL     string `yaml:"url"`
	Version string `yaml:"version"`
}

// dependency is one pinned external repository as exposed to templates.
type dependency struct {
	Name    string
	URL     string
	Version string
}

// parseDependencies decodes a .repos manifest and returns its entries
// sorted by name, so rendered dependency listings are stable run to run.
func parseDependencies(data []byte) ([]dependency, error) {
	var rf reposFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, err
	}
	deps := make([]dependency, 0, len(rf.Repositories))
	for name, entry := range rf.Repositories {
		deps = append(deps, dependency{Name: name, URL: entry.URL, Version: entry.Version})
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].Name < deps[j].Name })
	return deps, nil
}

// loadDependencies reads the first candidate manifest that exists under
// pkgDir. No candidate existing is the normal no-dependencies case; a
// candidate that exists but cannot be parsed warns and yields nothing.
func loadDependencies(pkgDir string, candidates []string) []dependency {
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		path := filepath.Join(pkgDir, candidate)
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger.Warn("could not read dependency manifest", "path", path, "error", err)
			}
			continue
		}
		deps, err := parseDependencies(data)
		if err != nil {
			logger.Warn("failed to parse dependency manifest", "path", path, "error", err)
			return nil
		}
		logger.Info("loaded dependency manifest", "path", path, "count", len(deps))
		return deps
	}
	return nil
}
