package credstore

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

// exerciseStore runs the Store contract shared by every backend.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Get(ctx, KeyToken); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}

	if err := s.Set(ctx, KeyToken, []byte("tok-1")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := s.Set(ctx, KeyProfile, []byte(`{"id":1}`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := s.Get(ctx, KeyToken)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !bytes.Equal(got, []byte("tok-1")) {
		t.Fatalf("got %q, want tok-1", got)
	}

	if err := s.Set(ctx, KeyToken, []byte("tok-2")); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	got, err = s.Get(ctx, KeyToken)
	if err != nil {
		t.Fatalf("get after overwrite failed: %v", err)
	}
	if string(got) != "tok-2" {
		t.Fatalf("got %q, want tok-2", got)
	}

	if err := s.Delete(ctx, KeyToken); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.Get(ctx, KeyToken); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting an absent key succeeds.
	if err := s.Delete(ctx, KeyToken); err != nil {
		t.Fatalf("delete of absent key failed: %v", err)
	}
	if err := s.Delete(ctx, KeyProfile); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
}

func TestMemoryStoreContract(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	in := []byte("tok")
	if err := s.Set(ctx, KeyToken, in); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	in[0] = 'X'

	got, err := s.Get(ctx, KeyToken)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(got) != "tok" {
		t.Fatalf("stored value aliased caller slice: %q", got)
	}
	got[0] = 'Y'

	again, err := s.Get(ctx, KeyToken)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if string(again) != "tok" {
		t.Fatalf("returned value aliased internal slice: %q", again)
	}
}
