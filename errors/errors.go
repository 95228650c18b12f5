package errors

import (
	// Go Internal Packages
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error so callers can branch on the failure
// class instead of matching message strings.
type Kind uint8

const (
	Other        Kind = iota // unclassified
	Invalid                  // rejected locally before any network call
	NotFound                 // upstream 404
	Unauthorized             // upstream 401/403, must not be retried
	Remote                   // any other upstream failure, may be retried
	Internal                 // broken invariant inside this service
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case NotFound:
		return "not found"
	case Unauthorized:
		return "unauthorized"
	case Remote:
		return "remote failure"
	case Internal:
		return "internal"
	}
	return "other"
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Msg, e.Err.Error())
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a kind-tagged error. A nil wrapped error is allowed.
func E(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether any error in err's chain carries the given kind.
func Is(kind Kind, err error) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field string
	Msg   string
}

// ValidationErrors accumulates field errors so a caller can report
// every problem with a request at once.
type ValidationErrors struct {
	fields []FieldError
}

func ValidationErrs() *ValidationErrors {
	return &ValidationErrors{}
}

func (v *ValidationErrors) Add(field, msg string) {
	v.fields = append(v.fields, FieldError{Field: field, Msg: msg})
}

func (v *ValidationErrors) Error() string {
	parts := make([]string, len(v.fields))
	for i, f := range v.fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Msg)
	}
	return strings.Join(parts, "; ")
}

// Err returns nil when no field errors were added.
func (v *ValidationErrors) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return v
}
