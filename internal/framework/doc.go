// Package framework holds the fixed parameters the "new" command injects
// into the scaffold generator: the Sui framework dependency and the named
// address binding for the package itself. Keeping them here leaves the
// generator free of framework defaults.
package framework
