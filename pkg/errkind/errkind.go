// Package errkind tags pipeline errors with the stage that produced them.
package errkind

import (
	"github.com/pkg/errors"
)

// Kind classifies a failure by the pipeline stage it came from.
type Kind int

const (
	Unknown Kind = iota
	Usage
	Input
	Trace
	Parse
	Output
)

func (k Kind) String() string {
	switch k {
	case Usage:
		return "usage error"
	case Input:
		return "input error"
	case Trace:
		return "tracing error"
	case Parse:
		return "parse error"
	case Output:
		return "output error"
	}
	return "error"
}

// Error is an error tagged with a Kind. The message is the wrapped error's
// message; the kind is not added to it.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }

// Cause lets errors.Cause see through the tag to the root error.
func (e *Error) Cause() error { return errors.Cause(e.Err) }

// New returns a tagged error with a stack trace.
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Err: errors.New(message)}
}

// Errorf is like New with formatting.
func Errorf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Err: errors.Errorf(format, args...)}
}

// Wrap annotates err with message and tags it. Wrap returns nil if err is nil.
func Wrap(kind Kind, err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrap(err, message)}
}

// Wrapf is like Wrap with formatting.
func Wrapf(kind Kind, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrapf(err, format, args...)}
}

// Of returns the kind of the outermost tagged error in err's chain, or
// Unknown.
func Of(err error) Kind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return Unknown
}
