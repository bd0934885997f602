// Package config manages user-level settings stored in config.yaml under the
// XDG config home (e.g. ~/.config/movekit/config.yaml). Values can also be
// supplied through MOVEKIT_* environment variables.
package config
