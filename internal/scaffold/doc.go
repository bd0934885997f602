// Package scaffold creates the on-disk skeleton of a new Move package: the
// package directory, a Move.toml manifest carrying the requested dependencies
// and named addresses, the sources/ directory and an optional seed source
// file. It knows nothing about any particular framework; callers inject the
// dependency and address entries through a Request.
package scaffold
