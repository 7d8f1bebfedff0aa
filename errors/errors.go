// Package errors defines the failure vocabulary shared by the subscriber,
// the event handler, and the storage layer. Every error crossing a component
// boundary is one of three kinds: connection failures against the validator,
// event parse failures, and storage failures. All three are fatal to the
// current run; only the subscriber's UNKNOWN_BLOCK reorg retry recovers
// locally, and it does so before an error is ever constructed.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind discriminates the three failure families.
type Kind int

const (
	// Connection covers transport failures and malformed or unexpected
	// protocol responses from the validator.
	Connection Kind = iota
	// Parse covers malformed event frames: missing commit events,
	// non-numeric block numbers, unrecognized in-namespace addresses.
	Parse
	// Storage wraps failures reported by the reporting database.
	Storage
)

// Error is the concrete type behind all three kinds.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	prefix := ""
	switch e.kind {
	case Connection:
		prefix = "error connecting to validator"
	case Parse:
		prefix = "error parsing event"
	case Storage:
		prefix = "the database returned an error"
	}
	if e.msg == "" && e.cause != nil {
		return fmt.Sprintf("%s: %v", prefix, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.msg)
}

// Unwrap exposes the underlying cause, if any.
func (e *Error) Unwrap() error { return e.cause }

// Kind reports which failure family this error belongs to.
func (e *Error) Kind() Kind { return e.kind }

// Connectionf builds a connection error.
func Connectionf(format string, args ...interface{}) error {
	return &Error{kind: Connection, msg: fmt.Sprintf(format, args...)}
}

// ConnectionWrap builds a connection error caused by err.
func ConnectionWrap(err error) error {
	return &Error{kind: Connection, cause: err}
}

// Parsef builds a parse error.
func Parsef(format string, args ...interface{}) error {
	return &Error{kind: Parse, msg: fmt.Sprintf(format, args...)}
}

// ParseWrap builds a parse error caused by err.
func ParseWrap(err error) error {
	return &Error{kind: Parse, cause: err}
}

// StorageWrap builds a storage error caused by err. The cause is preserved
// unchanged; callers propagate it without further handling.
func StorageWrap(err error) error {
	return &Error{kind: Storage, cause: err}
}

// IsKind reports whether err (or anything it wraps) is a taxonomy error of
// the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.kind == kind
	}
	return false
}
