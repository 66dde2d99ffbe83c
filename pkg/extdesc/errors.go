package extdesc

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := generator.Generate(cfg)
//	if errors.Is(err, extdesc.ErrParse) {
//	    // Existing descriptor is malformed
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrParse indicates an existing descriptor is not valid JSON or not a JSON object.
	ErrParse = errors.New("descriptor parse error")

	// ErrIO indicates a directory could not be created or a file could not be read or written.
	ErrIO = errors.New("descriptor i/o error")
)

// usageErrorPatterns are message fragments produced by cobra for command-line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
	"missing required argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrParse):
		return ExitParseError
	case errors.Is(err, ErrIO):
		return ExitIOError
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

// ioError keeps the cause's message while matching ErrIO.
type ioError struct {
	cause error
}

func (e *ioError) Error() string        { return e.cause.Error() }
func (e *ioError) Unwrap() error        { return e.cause }
func (e *ioError) Is(target error) bool { return target == ErrIO }

// IOError wraps cause so that it matches both ErrIO and the underlying error.
// Returns nil for a nil cause.
func IOError(cause error) error {
	if cause == nil {
		return nil
	}
	return &ioError{cause: cause}
}
