package framework

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/iancoleman/strcase"
	"go.yaml.in/yaml/v3"

	"github.com/movekit-dev/movekit/internal/manifest"
	"github.com/movekit-dev/movekit/internal/scaffold"
)

//go:embed sui.yaml
var rawSui []byte

// Dependency points at a framework package in a git repository.
type Dependency struct {
	Name   string `yaml:"name"`
	Git    string `yaml:"git"`
	Subdir string `yaml:"subdir"`
	Rev    string `yaml:"rev"`
}

// Preset is the set of values injected into every generated package.
type Preset struct {
	PackageVersion string     `yaml:"package_version"`
	Dependency     Dependency `yaml:"dependency"`
	AddressValue   string     `yaml:"address_value"`
}

var (
	suiOnce sync.Once
	sui     Preset
)

// Sui returns the Sui framework preset.
func Sui() Preset {
	suiOnce.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		sui = Preset{
			PackageVersion: "0.0.1",
			Dependency: Dependency{
				Name:   "Sui",
				Git:    "https://github.com/MystenLabs/sui.git",
				Subdir: "crates/sui-framework",
				Rev:    "main",
			},
			AddressValue: "0x0",
		}
		_ = yaml.Unmarshal(rawSui, &sui)
	})
	return sui
}

// Descriptor renders the dependency as an inline TOML table, e.g.
// { git = "...", subdir = "...", rev = "main" }.
func (p Preset) Descriptor() string {
	d := p.Dependency
	fields := []string{"git = " + manifest.Quote(d.Git)}
	if d.Subdir != "" {
		fields = append(fields, "subdir = "+manifest.Quote(d.Subdir))
	}
	fields = append(fields, "rev = "+manifest.Quote(d.Rev))
	return "{ " + strings.Join(fields, ", ") + " }"
}

// Request builds the generator request for a package called name. path and
// seed are passed through unchanged.
func (p Preset) Request(name, path, seed string) scaffold.Request {
	return scaffold.Request{
		Path:    path,
		Name:    name,
		Version: p.PackageVersion,
		Dependencies: []manifest.Entry{
			{Name: p.Dependency.Name, Value: p.Descriptor()},
		},
		Addresses: []manifest.Entry{
			{Name: scaffold.NormalizeName(name), Value: p.AddressValue},
		},
		SeedContent: seed,
	}
}

// SeedModule returns an empty module for the package, published under the
// package's own named address.
func SeedModule(name string) string {
	return fmt.Sprintf("module %s::%s {\n}\n", scaffold.NormalizeName(name), strcase.ToSnake(name))
}
