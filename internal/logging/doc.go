// Package logging builds the leveled logger shared by the CLI and the
// scaffold generator. Diagnostics go to stderr; user-facing output is written
// by the commands themselves.
package logging
