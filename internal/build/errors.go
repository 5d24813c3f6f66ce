package build

import (
	"errors"
	"strings"
)

// Sentinel kinds for emission failures. Every error returned by BuildFile
// wraps exactly one of them, so callers can sort failures with errors.Is
// without parsing messages.
var (
	// ErrInvalidFileSpec marks file specs that cannot be built at all:
	// missing destination, unknown or missing format, bad filter.
	ErrInvalidFileSpec = errors.New("invalid file spec")
	// ErrFormatFailed marks failures raised by the format function.
	ErrFormatFailed = errors.New("format failed")
	// ErrWriteFailed marks directory-creation and file-write failures.
	ErrWriteFailed = errors.New("write failed")
)

// BuildError ties one of the sentinel kinds to the file it concerns.
type BuildError struct {
	Kind        error
	Destination string
	Msg         string
	Err         error
}

func (e *BuildError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Destination != "" {
		b.WriteString(" for ")
		b.WriteString(e.Destination)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the underlying cause to errors.Is.
func (e *BuildError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func invalidSpec(destination, msg string) error {
	return &BuildError{Kind: ErrInvalidFileSpec, Destination: destination, Msg: msg}
}

func formatFailed(destination string, err error) error {
	return &BuildError{Kind: ErrFormatFailed, Destination: destination, Err: err}
}

func writeFailed(destination string, err error) error {
	return &BuildError{Kind: ErrWriteFailed, Destination: destination, Err: err}
}
