package types

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := NewError(KindEntryNotFound, "read archive", "a.zip", errors.New("missing.png"))

	if !errors.Is(err, ErrEntryNotFound) {
		t.Error("errors.Is(err, ErrEntryNotFound) = false, want true")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = true, want false")
	}
}

func TestError_IsThroughWrapping(t *testing.T) {
	inner := NewError(KindIO, "list archive", "a.zip", fs.ErrPermission)
	wrapped := fmt.Errorf("tool call: %w", inner)

	if !errors.Is(wrapped, ErrIO) {
		t.Error("errors.Is(wrapped, ErrIO) = false, want true")
	}
	if !errors.Is(wrapped, fs.ErrPermission) {
		t.Error("underlying cause should be reachable")
	}
	if got := KindOf(wrapped); got != KindIO {
		t.Errorf("KindOf = %v, want %v", got, KindIO)
	}
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"full", NewError(KindNotFound, "list directory", "/x", nil), "list directory: not found: /x"},
		{"with cause", NewError(KindArchiveFormat, "list archive", "b.zip", errors.New("zip: not a valid zip file")), "list archive: invalid archive: b.zip: zip: not a valid zip file"},
		{"bare", &Error{Kind: KindAccessDenied}, "access denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindOf_PlainError(t *testing.T) {
	if got := KindOf(errors.New("boom")); got != 0 {
		t.Errorf("KindOf = %v, want 0", got)
	}
}
