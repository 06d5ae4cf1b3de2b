package credstore

import (
	"context"
	"errors"
)

// Well-known keys. The names match what the original mobile client wrote to
// platform secure storage, so a Go process can adopt credentials persisted
// by an earlier client generation.
const (
	KeyToken   = "userToken"
	KeyProfile = "userInfo"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("credstore: key not found")

// Store is a persisted key-value store for session credentials.
//
// Implementations must be safe for concurrent use: the HTTP core reads the
// token at every request dispatch and a logout can delete it mid-burst.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
