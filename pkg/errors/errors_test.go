package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewError(t *testing.T) {
	err := New(ErrCodeInvalidDiameter, "diameter must be positive, got %.2f", -1.0)
	if err.Code != ErrCodeInvalidDiameter {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDiameter)
	}
	want := "INVALID_DIAMETER: diameter must be positive, got -1.00"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(ErrCodeInvalidConfig, cause, "load config")

	if !errors.Is(err, cause) {
		t.Error("wrapped error should match its cause with errors.Is")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestIsCode(t *testing.T) {
	err := New(ErrCodeInvalidStroke, "bad stroke")
	if !Is(err, ErrCodeInvalidStroke) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeInvalidDiameter) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInvalidStroke) {
		t.Error("Is should not match plain errors")
	}
}

func TestIsCodeThroughWrapping(t *testing.T) {
	inner := New(ErrCodePresetNotFound, "no such movement")
	outer := fmt.Errorf("template: %w", inner)
	if !Is(outer, ErrCodePresetNotFound) {
		t.Error("Is should find codes through fmt.Errorf wrapping")
	}
	if GetCode(outer) != ErrCodePresetNotFound {
		t.Errorf("GetCode = %v, want %v", GetCode(outer), ErrCodePresetNotFound)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidColor, "bad color")
	if got := UserMessage(err); got != "bad color" {
		t.Errorf("UserMessage = %q, want %q", got, "bad color")
	}
	plain := fmt.Errorf("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}
