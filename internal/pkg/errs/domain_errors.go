package errs

import "errors"

// Error taxonomy surfaced to the boundary layer. Every failure the
// registration and booking services produce is marked with exactly one of
// these sentinels; the message carries the offending identifiers.
var (
	// ErrInvalidInput: malformed or missing required fields, detected
	// before any store access.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound: a required precondition row is absent.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists: a uniqueness precondition is violated.
	ErrAlreadyExists = errors.New("record already exists")
)

// InvalidInputf builds an ErrInvalidInput-marked error with a formatted message.
func InvalidInputf(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrInvalidInput)
}

// NotFoundf builds an ErrNotFound-marked error with a formatted message.
func NotFoundf(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrNotFound)
}

// AlreadyExistsf builds an ErrAlreadyExists-marked error with a formatted message.
func AlreadyExistsf(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrAlreadyExists)
}
