package manifest

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/zerr"
)

// Parse reads and decodes the manifest at path.
func Parse(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data, path)
}

// ParseBytes decodes manifest data. path is only used in error messages.
func ParseBytes(data []byte, path string) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, fmt.Sprintf("parsing manifest %s", path)), "path", path)
	}
	return &m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, fmt.Sprintf("reading file %s", path)), "path", path)
	}
	return data, nil
}
