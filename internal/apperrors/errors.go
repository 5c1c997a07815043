package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindInputNotFound Kind = "input_not_found"
	KindNumericParse  Kind = "numeric_parse"
	KindFormat        Kind = "format"
	KindWrite         Kind = "write"
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for user-facing output and logs.
	SafeMessage string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindInputNotFound:
		return "Input file not found or not readable."
	case KindNumericParse:
		return "Numeric value could not be parsed."
	case KindFormat:
		return "Input table is malformed."
	case KindWrite:
		return "Output file could not be written."
	default:
		return "Conversion failed."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

func InputNotFound(path string, err error) error {
	return New(KindInputNotFound, "input file not found: "+path, err)
}

func NumericParse(msg string, err error) error {
	return New(KindNumericParse, msg, err)
}

func Format(msg string, err error) error {
	return New(KindFormat, msg, err)
}

func Write(err error) error {
	return New(KindWrite, "", err)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

// IsInputNotFound reports whether err is the recoverable missing-input failure.
func IsInputNotFound(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindInputNotFound
}
