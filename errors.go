package themegen

import (
	"fmt"
	"strings"
)

// ErrorKind identifies which theme rule was violated.
// It implements error so callers can match with errors.Is.
type ErrorKind string

// Theme error kinds.
const (
	ErrMissingSection             ErrorKind = "missing_section"
	ErrWrongShape                 ErrorKind = "wrong_shape"
	ErrWrongAttributeType         ErrorKind = "wrong_attribute_type"
	ErrUnknownAttribute           ErrorKind = "unknown_attribute"
	ErrMissingForeground          ErrorKind = "missing_foreground"
	ErrUnresolvedPaletteReference ErrorKind = "unresolved_palette_reference"
	ErrMalformedDocument          ErrorKind = "malformed_document"
)

// Error implements the error interface.
func (k ErrorKind) Error() string {
	return string(k)
}

// Error describes a single failure while reading or compiling a theme.
type Error struct {
	Kind    ErrorKind
	Section string // "palette" or "highlights"
	Group   string // Highlight group name, if the failure is inside one
	Key     string // Offending key
	Value   string // Offending value (palette references)
	Want    string // Expected value kind
	Got     string // Actual value kind
	Line    int    // Document line, 0 if unknown
	Err     error  // Underlying cause
}

// Error implements the error interface.
func (e *Error) Error() string {
	path := e.path()
	switch e.Kind {
	case ErrMissingSection:
		return fmt.Sprintf("missing required section %q", e.Section)
	case ErrWrongShape:
		return fmt.Sprintf("%s: expected %s, got %s", path, e.Want, e.Got)
	case ErrWrongAttributeType:
		return fmt.Sprintf("%s: %s must be specified by %s, got %s", path, e.Key, e.Want, e.Got)
	case ErrUnknownAttribute:
		return fmt.Sprintf("%s: unrecognized highlight attribute %q", path, e.Key)
	case ErrMissingForeground:
		return fmt.Sprintf("%s: fg must be set", path)
	case ErrUnresolvedPaletteReference:
		return fmt.Sprintf("%s: unknown palette reference %q", path, e.Value)
	case ErrMalformedDocument:
		msg := "malformed document"
		if e.Line > 0 {
			msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
		}
		if e.Err != nil {
			msg += ": " + e.Err.Error()
		}
		return msg
	default:
		return fmt.Sprintf("%s: %s", path, e.Kind)
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is this error's kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

// path renders the dotted location of the failure, e.g. "highlights.Error.bold".
func (e *Error) path() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.Section, e.Group, e.Key} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ".")
}
