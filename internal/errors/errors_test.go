package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewRegisteredCode(t *testing.T) {
	err := New(CodeTempdirCreate)

	if err.Code != CodeTempdirCreate {
		t.Errorf("Code = %q, want %q", err.Code, CodeTempdirCreate)
	}
	if err.Category != CategoryDocument {
		t.Errorf("Category = %q, want %q", err.Category, CategoryDocument)
	}
	if err.Message == "" {
		t.Error("Message is empty for a registered code")
	}
}

func TestNewUnknownCode(t *testing.T) {
	err := New("E999")
	if err.Code != "E999" {
		t.Errorf("Code = %q, want E999", err.Code)
	}
	if err.Message != "unknown error" {
		t.Errorf("Message = %q, want %q", err.Message, "unknown error")
	}
}

func TestErrorString(t *testing.T) {
	err := New(CodeConfigNotFound)
	got := err.Error()
	want := fmt.Sprintf("%s: %s", err.Code, err.Message)
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := New(CodeTempdirCreate).Wrap(cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is does not reach the wrapped cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap() did not return the cause")
	}
}

func TestIsMatchesByCode(t *testing.T) {
	a := New(CodeConfigParse)
	b := New(CodeConfigParse)
	other := New(CodeConfigRead)

	if !errors.Is(a, b) {
		t.Error("two errors with the same code do not match")
	}
	if errors.Is(a, other) {
		t.Error("errors with different codes match")
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryServer, "listen on %s failed", ":8888")
	if err.Category != CategoryServer {
		t.Errorf("Category = %q, want %q", err.Category, CategoryServer)
	}
	if got, want := err.Error(), "listen on :8888 failed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
