package scaffold

import (
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrInvalidName is returned when the package, a dependency or an address
	// name is empty, malformed, reserved or duplicated.
	ErrInvalidName = zerr.New("invalid name")

	// ErrInvalidVersion is returned when the package version is not a
	// semantic version.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrAlreadyExists is returned when the target path exists and is either
	// not a directory or not empty.
	ErrAlreadyExists = zerr.New("target already exists and is not empty")

	// ErrIO matches every *IOError under errors.Is.
	ErrIO = zerr.New("filesystem operation failed")
)

// IOError records a failed filesystem operation. It unwraps to the
// underlying error so callers can still test for fs.ErrPermission and
// friends, and it matches ErrIO.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }

func ioError(op, path string, err error) error {
	return &IOError{Op: op, Path: path, Err: err}
}
