package tracker

import "errors"

// Soft errors are user-facing notices: the CLI reports them as ordinary
// output and still exits zero. Storage failures are not soft and propagate.
var (
	ErrNotFound      = errors.New("habit not found")
	ErrAlreadyExists = errors.New("habit already exists")
	ErrInvalidName   = errors.New("habit name must not be empty")
)

// IsSoft reports whether err is a notice rather than a failure.
func IsSoft(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrInvalidName)
}
