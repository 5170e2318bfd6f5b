/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package subtle

import (
	"errors"
	"fmt"

	"github.com/google/tink/go/subtle/random"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/trustbloc/agility-go/primitive"
)

// ChaCha20Poly1305 is an implementation of the AEAD interface.
type ChaCha20Poly1305 struct {
	Key []byte
}

var _ primitive.AEAD = (*ChaCha20Poly1305)(nil)

// NewChaCha20Poly1305 returns a ChaCha20-Poly1305 AEAD instance.
// The key argument must be 32 bytes.
func NewChaCha20Poly1305(key []byte) (*ChaCha20Poly1305, error) {
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("chacha20poly1305: bad key length %d; want %d",
			len(key), chacha20poly1305.KeySize)
	}

	return &ChaCha20Poly1305{Key: key}, nil
}

// Encrypt encrypts plaintext with associatedData. The resulting ciphertext
// consists of a random nonce followed by the sealed payload.
func (c *ChaCha20Poly1305) Encrypt(plaintext, associatedData []byte) ([]byte, error) {
	if len(plaintext) > maxInt-chacha20poly1305.NonceSize-chacha20poly1305.Overhead {
		return nil, errors.New("chacha20poly1305: plaintext too long")
	}

	aead, err := chacha20poly1305.New(c.Key)
	if err != nil {
		return nil, fmt.Errorf("chacha20poly1305: %w", err)
	}

	nonce := random.GetRandomBytes(chacha20poly1305.NonceSize)

	return aead.Seal(nonce, nonce, plaintext, associatedData), nil
}

// Decrypt decrypts ciphertext with associatedData.
func (c *ChaCha20Poly1305) Decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	if len(ciphertext) < chacha20poly1305.NonceSize {
		return nil, errors.New("chacha20poly1305: ciphertext too short")
	}

	aead, err := chacha20poly1305.New(c.Key)
	if err != nil {
		return nil, fmt.Errorf("chacha20poly1305: %w", err)
	}

	nonce := ciphertext[:chacha20poly1305.NonceSize]

	plaintext, err := aead.Open(nil, nonce, ciphertext[chacha20poly1305.NonceSize:], associatedData)
	if err != nil {
		return nil, fmt.Errorf("chacha20poly1305: failed to decrypt: %w", err)
	}

	return plaintext, nil
}
