package main

import (
	"encoding/xml"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// packageManifest mirrors the subset of the ROS package.xml schema that the
// template renderer consumes.
type packageManifest struct {
	XMLName     xml.Name         `xml:"package"`
	Description string           `xml:"description"`
	License     string           `xml:"license"`
	Maintainers []maintainerElem `xml:"maintainer"`
}

type maintainerElem struct {
	Name  string `xml:",chardata"`
	Email string `xml:"email,attr"`
}

// maintainer is one package maintainer as exposed to templates. The
// obfuscated address replaces @ and . with bracketed tokens so a published
// wiki page does not hand the plain address to crawlers.
type maintainer struct {
	Name            string
	Email           string
	ObfuscatedEmail string
}

// packageMetadata is the manifest-derived slice of the template context.
// Zero values stand in for anything the manifest does not declare.
type packageMetadata struct {
	Description string
	License     string
	Maintainers []maintainer
}

// extractPackageMetadata reads <pkgDir>/package.xml. A missing or malformed
// manifest degrades to zero metadata; only the malformed case warns.
func extractPackageMetadata(pkgDir string) packageMetadata {
	path := filepath.Join(pkgDir, "package.xml")
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("could not read package manifest", "path", path, "error", err)
		}
		return packageMetadata{}
	}

	var m packageManifest
	if err := xml.Unmarshal(data, &m); err != nil {
		logger.Warn("failed to parse package manifest", "path", path, "error", err)
		return packageMetadata{}
	}

	meta := packageMetadata{
		Description: strings.TrimSpace(m.Description),
		License:     strings.TrimSpace(m.License),
	}
	for _, el := range m.Maintainers {
		meta.Maintainers = append(meta.Maintainers, maintainer{
			Name:            strings.TrimSpace(el.Name),
			Email:           el.Email,
			ObfuscatedEmail: obfuscateEmail(el.Email),
		})
	}
	return meta
}

// obfuscateEmail rewrites an address with bracketed at/dot tokens.
func obfuscateEmail(email string) string {
	if email == "" {
		return ""
	}
	obfuscated := strings.ReplaceAll(email, "@", " [at] ")
	return strings.ReplaceAll(obfuscated, ".", " [dot] ")
}
