package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/movekit-dev/movekit/internal/branding"
)

// DefaultLevel is used when neither the flag, the environment nor the config
// file set a level.
const DefaultLevel = "warn"

// ParseLevel converts a level name into an hclog.Level. An empty string maps
// to DefaultLevel.
func ParseLevel(name string) (hclog.Level, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		name = DefaultLevel
	}
	level := hclog.LevelFromString(name)
	if level == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("unknown log level %q: want trace, debug, info, warn, error or off", name)
	}
	return level, nil
}

// New returns a logger named after the CLI writing to w at the given level.
func New(w io.Writer, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   branding.CLIName(),
		Level:  level,
		Output: w,
	})
}
