/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package subtle_test

import (
	"testing"

	"github.com/google/tink/go/subtle/random"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/trustbloc/agility-go/primitive/aead/subtle"
)

func TestNewChaCha20Poly1305(t *testing.T) {
	c, err := subtle.NewChaCha20Poly1305(random.GetRandomBytes(chacha20poly1305.KeySize))
	require.NoError(t, err)
	require.NotNil(t, c)

	for _, badSize := range []uint32{0, 16, 31, 33, 64} {
		_, err := subtle.NewChaCha20Poly1305(random.GetRandomBytes(badSize))
		require.Error(t, err)
		require.Contains(t, err.Error(), "chacha20poly1305: bad key length")
	}
}

func TestChaCha20Poly1305RoundTrip(t *testing.T) {
	c, err := subtle.NewChaCha20Poly1305(random.GetRandomBytes(chacha20poly1305.KeySize))
	require.NoError(t, err)

	for _, ptSize := range []int{0, 1, 16, 100, 4096} {
		plaintext := random.GetRandomBytes(uint32(ptSize))
		associatedData := random.GetRandomBytes(24)

		ciphertext, err := c.Encrypt(plaintext, associatedData)
		require.NoError(t, err)
		require.Len(t, ciphertext, chacha20poly1305.NonceSize+ptSize+chacha20poly1305.Overhead)

		decrypted, err := c.Decrypt(ciphertext, associatedData)
		require.NoError(t, err)

		if ptSize == 0 {
			require.Empty(t, decrypted)
		} else {
			require.Equal(t, plaintext, decrypted)
		}
	}
}

func TestChaCha20Poly1305TamperDetection(t *testing.T) {
	c, err := subtle.NewChaCha20Poly1305(random.GetRandomBytes(chacha20poly1305.KeySize))
	require.NoError(t, err)

	plaintext := []byte("message")
	associatedData := []byte("ctx")

	ciphertext, err := c.Encrypt(plaintext, associatedData)
	require.NoError(t, err)

	t.Run("flipped byte fails", func(t *testing.T) {
		for i := range ciphertext {
			tampered := make([]byte, len(ciphertext))
			copy(tampered, ciphertext)
			tampered[i] ^= 0x01

			_, err := c.Decrypt(tampered, associatedData)
			require.Error(t, err, "flipped byte %d must fail", i)
		}
	})

	t.Run("wrong associated data fails", func(t *testing.T) {
		_, err := c.Decrypt(ciphertext, []byte("other ctx"))
		require.Error(t, err)
	})

	t.Run("short ciphertext fails", func(t *testing.T) {
		_, err := c.Decrypt(ciphertext[:chacha20poly1305.NonceSize-1], associatedData)
		require.EqualError(t, err, "chacha20poly1305: ciphertext too short")
	})
}
