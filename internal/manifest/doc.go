// Package manifest handles the Move package manifest (Move.toml). It renders
// new manifests from an embedded template, decodes existing ones, and
// validates them against the JSON Schema embedded under schema/.
package manifest
