// Package errors provides the single error type used across the compiler:
// recoverable, code-tagged failures that attach to a specific token or path
// instead of aborting compilation.
package errors

import (
	"errors"
	"fmt"
)

// Code identifies one of the five recoverable failure kinds a token can
// produce during compilation. None of them are panics: callers append a
// Diagnostic and continue with the next token.
type Code string

const (
	// MalformedToken: the raw token string itself is unparseable (unbalanced
	// brackets, empty segments, dangling colon).
	MalformedToken Code = "MALFORMED_TOKEN"
	// UnknownVariant: a `:`-separated prefix doesn't match any known variant
	// shape and isn't a registered custom variant.
	UnknownVariant Code = "UNKNOWN_VARIANT"
	// UnknownUtility: the token's base segment doesn't match any registered
	// utility parser.
	UnknownUtility Code = "UNKNOWN_UTILITY"
	// InvalidValue: the utility matched but its value failed validation
	// (e.g. a color shade that isn't in the palette, a malformed arbitrary
	// value).
	InvalidValue Code = "INVALID_VALUE"
	// ThemeMiss: the utility and value are well-formed but the theme has no
	// entry for the requested scale key.
	ThemeMiss Code = "THEME_MISS"
)

// Error is the single error type the compiler produces. It carries enough
// context — the offending token path, a code for programmatic dispatch, and
// optional structured details — to become a Diagnostic without further
// wrapping.
type Error struct {
	Code    Code
	Message string
	Path    string // the raw token string that produced this error
	Details map[string]any
	Cause   error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s (token: %q)", e.Code, e.Message, e.Path)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Code, so callers can
// do errors.Is(err, &errors.Error{Code: errors.ThemeMiss}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetail attaches a structured detail and returns e for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithPath sets the offending token path and returns e for chaining.
func (e *Error) WithPath(path string) *Error {
	e.Path = path
	return e
}

func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func NewErrorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func WrapError(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Is reports whether err is an *Error carrying the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func IsMalformedToken(err error) bool { return Is(err, MalformedToken) }
func IsUnknownVariant(err error) bool { return Is(err, UnknownVariant) }
func IsUnknownUtility(err error) bool { return Is(err, UnknownUtility) }
func IsInvalidValue(err error) bool   { return Is(err, InvalidValue) }
func IsThemeMiss(err error) bool      { return Is(err, ThemeMiss) }
