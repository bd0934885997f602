package manifest

// FileName is the manifest file name at the root of every Move package.
const FileName = "Move.toml"

// Manifest is the decoded form of a Move.toml file.
type Manifest struct {
	Package         PackageInfo           `toml:"package" json:"package"`
	Dependencies    map[string]Dependency `toml:"dependencies,omitempty" json:"dependencies,omitempty"`
	DevDependencies map[string]Dependency `toml:"dev-dependencies,omitempty" json:"dev-dependencies,omitempty"`
	Addresses       map[string]string     `toml:"addresses,omitempty" json:"addresses,omitempty"`
	DevAddresses    map[string]string     `toml:"dev-addresses,omitempty" json:"dev-addresses,omitempty"`
}

// PackageInfo is the [package] table.
type PackageInfo struct {
	Name    string   `toml:"name" json:"name"`
	Version string   `toml:"version" json:"version"`
	Edition string   `toml:"edition,omitempty" json:"edition,omitempty"`
	License string   `toml:"license,omitempty" json:"license,omitempty"`
	Authors []string `toml:"authors,omitempty" json:"authors,omitempty"`
}

// Dependency is a single entry of the [dependencies] table. Exactly one of
// Git or Local is set in a well-formed manifest.
type Dependency struct {
	Git    string `toml:"git,omitempty" json:"git,omitempty"`
	Subdir string `toml:"subdir,omitempty" json:"subdir,omitempty"`
	Rev    string `toml:"rev,omitempty" json:"rev,omitempty"`
	Local  string `toml:"local,omitempty" json:"local,omitempty"`
}

// Entry is an ordered key/value pair used when rendering a manifest.
// For dependencies Value is an opaque TOML fragment written verbatim; for
// addresses it is the literal address, quoted on output.
type Entry struct {
	Name  string
	Value string
}

// Document holds everything the manifest template needs.
type Document struct {
	Name         string
	Version      string
	Dependencies []Entry
	Addresses    []Entry
}
