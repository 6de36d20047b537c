package hash

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSHA256Hasher_HashBytes(t *testing.T) {
	hasher := NewSHA256Hasher()

	// Known SHA-256 vector
	got := hasher.HashBytes([]byte("hello world"))
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if got != want {
		t.Errorf("HashBytes() = %s, want %s", got, want)
	}

	if hasher.HashBytes([]byte("a")) == hasher.HashBytes([]byte("b")) {
		t.Error("different inputs produced the same hash")
	}
}

func TestSHA256Hasher_HashFile(t *testing.T) {
	tmpDir := t.TempDir()
	hasher := NewSHA256Hasher()

	t.Run("file hash matches bytes hash", func(t *testing.T) {
		testFile := filepath.Join(tmpDir, "test.txt")
		content := []byte("hello world")
		if err := os.WriteFile(testFile, content, 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		fromFile, err := hasher.HashFile(testFile)
		if err != nil {
			t.Fatalf("HashFile failed: %v", err)
		}
		if fromFile != hasher.HashBytes(content) {
			t.Errorf("HashFile = %s, HashBytes = %s", fromFile, hasher.HashBytes(content))
		}
	})

	t.Run("missing file returns error", func(t *testing.T) {
		if _, err := hasher.HashFile(filepath.Join(tmpDir, "missing.txt")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestFakeHasher(t *testing.T) {
	hasher := NewFakeHasher()
	hasher.SetHash("/some/path", "abc123")

	got, err := hasher.HashFile("/some/path")
	if err != nil {
		t.Fatalf("HashFile failed: %v", err)
	}
	if got != "abc123" {
		t.Errorf("HashFile = %s, want abc123", got)
	}

	if h1, h2 := hasher.HashBytes([]byte("xy")), hasher.HashBytes([]byte("ab")); h1 != h2 {
		t.Errorf("FakeHasher.HashBytes should depend only on length: %s vs %s", h1, h2)
	}
}
