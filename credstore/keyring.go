package credstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/99designs/keyring"
)

// Keyring stores credentials in the operating system keyring: macOS
// Keychain, Windows Credential Manager, or the Linux Secret Service. This is
// the closest Go analog to the secure storage the original mobile client
// used.
type Keyring struct {
	ring keyring.Keyring
}

// NewKeyring opens the OS keyring under the given service name. fileDir is
// the fallback location for the encrypted-file backend on systems without a
// native keyring (headless Linux, CI).
func NewKeyring(serviceName, fileDir string) (*Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		FileDir:     fileDir,
		FilePasswordFunc: func(prompt string) (string, error) {
			return serviceName, nil
		},
	})
	if err != nil {
		return nil, fmt.Errorf("credstore: open keyring: %w", err)
	}
	return &Keyring{ring: ring}, nil
}

// Get implements Store.
func (k *Keyring) Get(_ context.Context, key string) ([]byte, error) {
	item, err := k.ring.Get(key)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("credstore: keyring get %s: %w", key, err)
	}
	return item.Data, nil
}

// Set implements Store.
func (k *Keyring) Set(_ context.Context, key string, value []byte) error {
	err := k.ring.Set(keyring.Item{Key: key, Data: value})
	if err != nil {
		return fmt.Errorf("credstore: keyring set %s: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (k *Keyring) Delete(_ context.Context, key string) error {
	err := k.ring.Remove(key)
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("credstore: keyring delete %s: %w", key, err)
	}
	return nil
}
