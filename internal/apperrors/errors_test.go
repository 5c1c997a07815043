package apperrors

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestPublicMessage_UsesSafeMessage(t *testing.T) {
	sentinel := errors.New("strconv.ParseFloat: parsing \"x\": invalid syntax")
	err := New(KindNumericParse, "line 3: superficie_m2: invalid number \"x\"", sentinel)
	if got := PublicMessage(err); got != "line 3: superficie_m2: invalid number \"x\"" {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped cause to be retained for internal matching")
	}
}

func TestDefaultSafeMessage(t *testing.T) {
	err := Write(errors.New("disk full"))
	if got := err.Error(); got != "Output file could not be written." {
		t.Fatalf("Error() = %q", got)
	}
}

func TestKindOf_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("convert: %w", InputNotFound("missing.csv", os.ErrNotExist))
	kind, ok := KindOf(err)
	if !ok || kind != KindInputNotFound {
		t.Fatalf("KindOf() = (%q, %v), want (%q, true)", kind, ok, KindInputNotFound)
	}
	if !IsInputNotFound(err) {
		t.Fatalf("expected IsInputNotFound to be true")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist in chain")
	}
}

func TestIsInputNotFound_OtherKinds(t *testing.T) {
	for _, err := range []error{
		Format("bad header", nil),
		NumericParse("", nil),
		errors.New("plain"),
		nil,
	} {
		if IsInputNotFound(err) {
			t.Fatalf("IsInputNotFound(%v) = true, want false", err)
		}
	}
}

func TestPublicMessage_NonAppError(t *testing.T) {
	err := errors.New("plain")
	if got := PublicMessage(err); got != "plain" {
		t.Fatalf("PublicMessage() = %q, want %q", got, "plain")
	}
}

func TestError_NilAndEmpty(t *testing.T) {
	var e *Error
	if e.Error() != "" {
		t.Fatalf("nil Error() should be empty")
	}
	if e.Unwrap() != nil {
		t.Fatalf("nil Unwrap() should be nil")
	}
	empty := &Error{}
	if empty.Error() != "unknown error" {
		t.Fatalf("empty Error() = %q", empty.Error())
	}
}
