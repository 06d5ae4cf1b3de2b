package credstore

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// Current on-disk envelope version.
const fileFormatVersion = 1

// ErrBadPassphrase is returned when a File entry cannot be opened with the
// given passphrase, or the ciphertext has been modified.
var ErrBadPassphrase = errors.New("credstore: wrong passphrase or corrupted entry")

// envelope is the on-disk JSON structure holding ciphertext and KDF
// parameters for one entry.
type envelope struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

func scryptDefaults() (N, r, p int) { return 1 << 15, 8, 1 }

// File stores each entry as an encrypted file under a directory. Keys are
// derived from a passphrase with scrypt; entries are sealed with
// ChaCha20-Poly1305. A fresh salt per write makes the zero nonce safe.
type File struct {
	dir        string
	passphrase string
	mu         sync.Mutex
}

// NewFile returns a File store rooted at dir, creating it with 0700 if
// needed.
func NewFile(dir, passphrase string) (*File, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("credstore: create dir: %w", err)
	}
	return &File{dir: dir, passphrase: passphrase}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".enc")
}

// Get implements Store.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("credstore: read %s: %w", key, err)
	}
	return f.open(raw)
}

// Set implements Store.
func (f *File) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	blob, err := f.seal(value)
	if err != nil {
		return err
	}
	if err := os.WriteFile(f.path(key), blob, 0o600); err != nil {
		return fmt.Errorf("credstore: write %s: %w", key, err)
	}
	return nil
}

// Delete implements Store.
func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("credstore: delete %s: %w", key, err)
	}
	return nil
}

func (f *File) seal(raw []byte) ([]byte, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	N, r, p := scryptDefaults()
	key, err := scrypt.Key([]byte(f.passphrase), salt[:], N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(envelope{
		V:      fileFormatVersion,
		Salt:   salt[:],
		N:      N,
		R:      r,
		P:      p,
		Cipher: ct,
	})
}

func (f *File) open(blob []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(blob, &env); err != nil {
		return nil, ErrBadPassphrase
	}
	if env.V > fileFormatVersion {
		return nil, fmt.Errorf("credstore: unsupported entry version %d", env.V)
	}
	key, err := scrypt.Key([]byte(f.passphrase), env.Salt, env.N, env.R, env.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], env.Cipher, env.Salt)
	if err != nil {
		return nil, ErrBadPassphrase
	}
	return pt, nil
}
