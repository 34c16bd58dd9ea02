package serde

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind rather than matching error strings.
// Use errors.As to extract *Error, or IsKind for a quick check.
type Kind string

const (
	KindMissingPrefix   Kind = "MissingPrefix"
	KindInvalidHex      Kind = "InvalidHex"
	KindSizeMismatch    Kind = "SizeMismatch"
	KindMalformedNumber Kind = "MalformedNumber"
	KindFractionalValue Kind = "FractionalValue"
	KindNegativeValue   Kind = "NegativeValue"
	KindOutOfField      Kind = "OutOfField"
)

// Error is the structured decode error returned by this package and by the
// types built on top of it.
//
// Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

func wrapError(kind Kind, msg string, cause error) error {
	if cause == nil {
		return newError(kind, msg)
	}
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) an *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// KindOf returns the Kind of a structured error, or "" if err is not one.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}

// CheckLen fails with KindSizeMismatch unless len(b) == want.
func CheckLen(what string, b []byte, want int) error {
	if len(b) != want {
		return newError(KindSizeMismatch, fmt.Sprintf("%s: size mismatch: expected %d bytes, got %d", what, want, len(b)))
	}
	return nil
}

// CheckLenOneOf is CheckLen for values with more than one valid width.
func CheckLenOneOf(what string, b []byte, wants ...int) error {
	for _, w := range wants {
		if len(b) == w {
			return nil
		}
	}
	widths := make([]string, len(wants))
	for i, w := range wants {
		widths[i] = fmt.Sprint(w)
	}
	return newError(KindSizeMismatch, fmt.Sprintf("%s: size mismatch: expected %s bytes, got %d", what, strings.Join(widths, " or "), len(b)))
}
