package pkg

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestIdentity(t *testing.T) {
	if Name != "envlayer" {
		t.Errorf("Name = %q", Name)
	}

	if Description == "" {
		t.Error("Description is empty")
	}

	v := Version()
	if v == "" || strings.ContainsAny(v, " \n") {
		t.Errorf("Version() = %q, want trimmed semantic version", v)
	}

	if !strings.Contains(v, ".") {
		t.Errorf("Version() = %q, want dotted version", v)
	}
}

func TestError_MessageForms(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"message only", NewError("invalid"), "invalid"},
		{"message and cause", NewError("invalid").Wrap(cause), "invalid: boom"},
		{"cause only", WrapError(cause), "boom"},
		{"empty", &Error{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_IsMatchesSentinel(t *testing.T) {
	errA := NewError("a")
	errB := NewError("b")
	cause := errors.New("cause")

	derived := errA.With(slog.String("key", "K")).Wrap(cause)

	if !errors.Is(derived, errA) {
		t.Error("derived error should match its sentinel")
	}

	if errors.Is(derived, errB) {
		t.Error("derived error should not match another sentinel")
	}

	if !errors.Is(derived, cause) {
		t.Error("derived error should match its cause")
	}

	wrapped := fmt.Errorf("outer: %w", derived)
	if !errors.Is(wrapped, errA) {
		t.Error("fmt-wrapped error should match sentinel")
	}

	if WrapError(wrapped) != derived {
		t.Error("WrapError should return the existing *Error")
	}
}

func TestError_WithDoesNotModifyReceiver(t *testing.T) {
	base := NewError("base").With(slog.String("a", "1"))
	_ = base.With(slog.String("b", "2"))

	if n := len(base.Attrs()); n != 1 {
		t.Errorf("receiver attrs = %d, want 1", n)
	}
}

func TestError_LogValue(t *testing.T) {
	err := NewError("invalid").
		With(slog.String("key", "PATH")).
		Wrap(errors.New("bad"))

	group := err.LogValue().Group()
	got := map[string]string{}

	for _, a := range group {
		got[a.Key] = a.Value.String()
	}

	if got["error"] != "invalid" || got["cause"] != "bad" || got["key"] != "PATH" {
		t.Errorf("LogValue() = %v", got)
	}
}

func TestDirs_EndWithPrefix(t *testing.T) {
	for name, dir := range map[string]string{
		"config": ConfigDir(),
		"cache":  CacheDir(),
	} {
		if filepath.Base(dir) != Prefix() {
			t.Errorf("%s dir %q does not end with prefix %q", name, dir, Prefix())
		}
	}
}
