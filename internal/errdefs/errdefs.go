package errdefs

import (
	"errors"
	"fmt"
)

// Kind categorizes an error.
type Kind int

const (
	// KindUnknown is reported for errors that carry no Kind.
	KindUnknown Kind = iota
	// KindNotFound indicates a template name that resolved to nothing.
	KindNotFound
	// KindInvalidTemplate indicates a malformed template document.
	KindInvalidTemplate
	// KindAlreadyExists indicates a destination collision on create.
	KindAlreadyExists
	// KindIO indicates an unreadable or unwritable path.
	KindIO
	// KindInvalidArgument indicates a missing or malformed CLI argument.
	KindInvalidArgument
)

// String returns the kind name used in log fields.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidTemplate:
		return "InvalidTemplate"
	case KindAlreadyExists:
		return "AlreadyExists"
	case KindIO:
		return "IOError"
	case KindInvalidArgument:
		return "InvalidArgument"
	default:
		return "Unknown"
	}
}

// Error is a kind-tagged error.
type Error struct {
	Kind    Kind
	Message string
	// Path is the file or directory involved, if any.
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error without a path or cause.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error around cause.
func Wrap(kind Kind, cause error, path, message string) *Error {
	return &Error{Kind: kind, Message: message, Path: path, Cause: cause}
}

// NotFound creates a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

// InvalidTemplate creates a KindInvalidTemplate error.
func InvalidTemplate(format string, args ...any) *Error {
	return New(KindInvalidTemplate, format, args...)
}

// AlreadyExists creates a KindAlreadyExists error for path.
func AlreadyExists(path, message string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: message, Path: path}
}

// IO wraps a filesystem failure on path.
func IO(cause error, path, message string) *Error {
	return Wrap(KindIO, cause, path, message)
}

// InvalidArgument creates a KindInvalidArgument error.
func InvalidArgument(format string, args ...any) *Error {
	return New(KindInvalidArgument, format, args...)
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a KindNotFound error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsInvalidTemplate reports whether err is a KindInvalidTemplate error.
func IsInvalidTemplate(err error) bool { return KindOf(err) == KindInvalidTemplate }

// IsAlreadyExists reports whether err is a KindAlreadyExists error.
func IsAlreadyExists(err error) bool { return KindOf(err) == KindAlreadyExists }

// IsIO reports whether err is a KindIO error.
func IsIO(err error) bool { return KindOf(err) == KindIO }

// IsInvalidArgument reports whether err is a KindInvalidArgument error.
func IsInvalidArgument(err error) bool { return KindOf(err) == KindInvalidArgument }

// ExitCode maps err to a process exit code. All user-facing failures exit 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
