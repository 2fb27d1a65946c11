package security

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	t.Parallel()

	const alphabet = "ABC123"
	value, err := RandomString(32, alphabet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(value) != 32 {
		t.Fatalf("expected 32 characters, got %d", len(value))
	}
	for _, char := range value {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("character %q outside alphabet", char)
		}
	}
}

func TestRandomString_EdgeCases(t *testing.T) {
	t.Parallel()

	if value, err := RandomString(0, "ABC"); err != nil || value != "" {
		t.Fatalf("expected empty string for zero length, got %q (%v)", value, err)
	}
	if _, err := RandomString(-1, "ABC"); err == nil {
		t.Fatalf("expected error for negative length")
	}
	if _, err := RandomString(4, ""); err == nil {
		t.Fatalf("expected error for empty alphabet")
	}
}
