// Package cli defines the Cobra command tree for the movekit CLI. Each file
// in this package registers one top-level command (new, manifest, config,
// version) with the root command. Commands delegate to internal packages for
// the actual work and only handle flags, output formatting and exit codes.
package cli
