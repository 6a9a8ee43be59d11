package types

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ErrorKind classifies the failures of a reconstruction.
type ErrorKind string

const (
	KindInvalidDigit            ErrorKind = "InvalidDigit"
	KindEmptyValue              ErrorKind = "EmptyValue"
	KindInvalidBase             ErrorKind = "InvalidBase"
	KindMissingThreshold        ErrorKind = "MissingThreshold"
	KindInsufficientShares      ErrorKind = "InsufficientShares"
	KindDegenerateInterpolation ErrorKind = "DegenerateInterpolation"
	KindNonIntegerResult        ErrorKind = "NonIntegerResult"
	KindMalformedRecord         ErrorKind = "MalformedRecord"
)

// Sentinels to be used with errors.Is / xerrors.Is. Only the kind is compared.
var (
	ErrInvalidDigit            = &Error{Kind: KindInvalidDigit}
	ErrEmptyValue              = &Error{Kind: KindEmptyValue}
	ErrInvalidBase             = &Error{Kind: KindInvalidBase}
	ErrMissingThreshold        = &Error{Kind: KindMissingThreshold}
	ErrInsufficientShares      = &Error{Kind: KindInsufficientShares}
	ErrDegenerateInterpolation = &Error{Kind: KindDegenerateInterpolation}
	ErrNonIntegerResult        = &Error{Kind: KindNonIntegerResult}
	ErrMalformedRecord         = &Error{Kind: KindMalformedRecord}
)

// Error is a typed reconstruction failure. Key is the share being processed
// when the failure happened, 0 when no single share is to blame.
type Error struct {
	Kind ErrorKind
	Key  int
	Msg  string
}

// NewError creates an error of the given kind.
func NewError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// Error implements error.
func (e *Error) Error() string {
	if e.Key != 0 {
		return fmt.Sprintf("%s: share %d: %s", e.Kind, e.Key, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is makes two errors of the same kind match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// WithKey returns a copy of the error annotated with a share key.
func (e *Error) WithKey(key int) *Error {
	cp := *e
	cp.Key = key
	return &cp
}

// KindOf returns the kind of the first *Error found in err's chain, or an
// empty kind.
func KindOf(err error) ErrorKind {
	var e *Error
	if xerrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// KeyOf returns the share key attached to err, or 0.
func KeyOf(err error) int {
	var e *Error
	if xerrors.As(err, &e) {
		return e.Key
	}
	return 0
}
