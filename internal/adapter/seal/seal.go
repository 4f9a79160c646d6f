// Package seal encrypts values held by the durable storage backends.
package seal

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var (
	// ErrNoSecret is returned by New when the secret is empty.
	ErrNoSecret = errors.New("seal: empty secret")
	// ErrCorrupt is returned by Open for values that were not sealed with
	// the same secret.
	ErrCorrupt = errors.New("seal: corrupt or foreign value")
)

// Box seals and opens strings with a key derived from a secret.
type Box struct {
	key [32]byte
}

// New derives a Box from secret.
func New(secret string) (*Box, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Box{key: sha256.Sum256([]byte(secret))}, nil
}

// Seal encrypts plain and returns it base64 encoded.
func (b *Box) Seal(plain string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("seal: nonce: %w", err)
	}
	out := secretbox.Seal(nonce[:], []byte(plain), &nonce, &b.key)
	return base64.RawURLEncoding.EncodeToString(out), nil
}

// Open reverses Seal.
func (b *Box) Open(sealed string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil || len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrCorrupt
	}
	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])
	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &b.key)
	if !ok {
		return "", ErrCorrupt
	}
	return string(plain), nil
}
