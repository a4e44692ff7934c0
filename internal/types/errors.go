package types

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so callers can branch on it.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindIO
	KindArchiveFormat
	KindEntryNotFound
	KindAccessDenied
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindIO:
		return "i/o error"
	case KindArchiveFormat:
		return "invalid archive"
	case KindEntryNotFound:
		return "entry not found"
	case KindAccessDenied:
		return "access denied"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is. Any *Error of the same Kind matches.
var (
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrIO            = &Error{Kind: KindIO}
	ErrArchiveFormat = &Error{Kind: KindArchiveFormat}
	ErrEntryNotFound = &Error{Kind: KindEntryNotFound}
	ErrAccessDenied  = &Error{Kind: KindAccessDenied}
)

// Error is returned by the listers and the extractor.
type Error struct {
	Kind Kind
	Op   string // "list directory", "list archive", "read archive"
	Path string
	Err  error
}

// NewError builds an *Error.
func NewError(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
