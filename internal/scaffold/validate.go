package scaffold

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/movekit-dev/movekit/internal/manifest"
)

var (
	packageNamePattern    = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
	dependencyNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	addressNamePattern    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// DefaultReservedNames are the manifest's own table names. They may not be
// used as dependency or address names.
var DefaultReservedNames = []string{
	"package",
	"dependencies",
	"dev-dependencies",
	"addresses",
	"dev-addresses",
	"build",
}

// NormalizeName lower-cases a package name the way the generator does before
// using it as a directory and address name.
func NormalizeName(name string) string {
	return cases.Lower(language.Und).String(name)
}

func validatePackageName(name string) error {
	if name == "" {
		return zerr.Wrap(ErrInvalidName, "package name is empty")
	}
	if !packageNamePattern.MatchString(name) {
		return zerr.With(zerr.Wrap(ErrInvalidName,
			fmt.Sprintf("package name %q must match %s", name, packageNamePattern)), "name", name)
	}
	return nil
}

func validateVersion(version string) error {
	if _, err := semver.StrictNewVersion(version); err != nil {
		return zerr.With(zerr.Wrap(ErrInvalidVersion,
			fmt.Sprintf("version %q is not a semantic version (%v)", version, err)), "version", version)
	}
	return nil
}

// validateEntries checks one manifest section: every name must match
// pattern, be unique within the section and avoid the reserved set.
func validateEntries(section string, entries []manifest.Entry, pattern *regexp.Regexp, reserved map[string]bool) error {
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		switch {
		case !pattern.MatchString(e.Name):
			return zerr.With(zerr.Wrap(ErrInvalidName,
				fmt.Sprintf("%s name %q must match %s", section, e.Name, pattern)), "name", e.Name)
		case reserved[e.Name]:
			return zerr.With(zerr.Wrap(ErrInvalidName,
				fmt.Sprintf("%s name %q is reserved", section, e.Name)), "name", e.Name)
		case seen[e.Name]:
			return zerr.With(zerr.Wrap(ErrInvalidName,
				fmt.Sprintf("%s name %q is declared twice", section, e.Name)), "name", e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}
