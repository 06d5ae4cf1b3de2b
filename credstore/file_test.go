package credstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newFileStore(t *testing.T) *File {
	t.Helper()

	s, err := NewFile(t.TempDir(), "correct horse battery staple")
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	return s
}

func TestFileStoreContract(t *testing.T) {
	exerciseStore(t, newFileStore(t))
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFile(dir, "pw")
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	if err := s.Set(ctx, KeyToken, []byte("abc")); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	reopened, err := NewFile(dir, "pw")
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	got, err := reopened.Get(ctx, KeyToken)
	if err != nil {
		t.Fatalf("get after reopen failed: %v", err)
	}
	if string(got) != "abc" {
		t.Fatalf("got %q, want abc", got)
	}
}

func TestFileStoreWrongPassphrase(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFile(dir, "right")
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	if err := s.Set(ctx, KeyToken, []byte("abc")); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	wrong, err := NewFile(dir, "wrong")
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	if _, err := wrong.Get(ctx, KeyToken); !errors.Is(err, ErrBadPassphrase) {
		t.Fatalf("expected ErrBadPassphrase, got %v", err)
	}
}

func TestFileStoreCiphertextOnDisk(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewFile(dir, "pw")
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	secret := []byte("very-secret-token")
	if err := s.Set(ctx, KeyToken, secret); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, KeyToken+".enc"))
	if err != nil {
		t.Fatalf("read entry file: %v", err)
	}
	if string(raw) == string(secret) {
		t.Fatal("entry stored in plaintext")
	}
	for i := 0; i+len(secret) <= len(raw); i++ {
		if string(raw[i:i+len(secret)]) == string(secret) {
			t.Fatal("plaintext token found inside on-disk blob")
		}
	}
}
