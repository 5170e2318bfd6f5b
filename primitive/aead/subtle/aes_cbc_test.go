/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package subtle_test

import (
	"bytes"
	"crypto/aes"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/google/tink/go/subtle/random"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/agility-go/primitive/aead/subtle"
)

func TestNewAESCBC(t *testing.T) {
	key := make([]byte, 64)

	// Test various key sizes with a fixed IV size.
	for i := 0; i < 64; i++ {
		k := key[:i]

		c, err := subtle.NewAESCBC(k)

		switch len(k) {
		case 16, 24, 32:
			// Valid key sizes.
			require.NoErrorf(t, err, "want: valid cipher (key size=%d), got: error %v", len(k), err)
			require.Equal(t, k, c.Key)
		default:
			// Invalid key sizes.
			require.EqualErrorf(t, err,
				fmt.Sprintf("aes_cbc: NewAESCBC() invalid AES key size; want 16, 24 or 32, got %d", i),
				"wrong error for invalid key size %d", i)
		}
	}
}

// NIST SP 800-38A AES-128-CBC test vector, with the IV prepended the way
// Encrypt lays out its output.
func TestAESCBCNISTVector(t *testing.T) {
	key, err := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	require.NoError(t, err)

	iv, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	plaintextBlock, err := hex.DecodeString("6bc1bee22e409f96e93d7e117393172a")
	require.NoError(t, err)

	ciphertextBlock, err := hex.DecodeString("7649abac8119b246cee98e9b12e9197d")
	require.NoError(t, err)

	c, err := subtle.NewAESCBC(key)
	require.NoError(t, err)

	ciphertext, err := c.Encrypt(plaintextBlock)
	require.NoError(t, err)
	require.Len(t, ciphertext, subtle.AESCBCIVSize+2*aes.BlockSize)

	// Decrypt the vector ciphertext directly. Its trailing byte decodes to a
	// pad amount larger than the payload, so Unpad leaves the block intact.
	reference := append(append([]byte{}, iv...), ciphertextBlock...)

	decrypted, err := c.Decrypt(reference)
	require.NoError(t, err)
	require.Equal(t, plaintextBlock, decrypted)
}

func TestAESCBCRoundTrip(t *testing.T) {
	for _, keySize := range []int{16, 24, 32} {
		keySize := keySize

		t.Run(fmt.Sprintf("key size %d", keySize), func(t *testing.T) {
			c, err := subtle.NewAESCBC(random.GetRandomBytes(uint32(keySize)))
			require.NoError(t, err)

			for _, ptSize := range []int{0, 1, 15, 16, 17, 100, 1000} {
				plaintext := random.GetRandomBytes(uint32(ptSize))

				ciphertext, err := c.Encrypt(plaintext)
				require.NoError(t, err)
				require.Zero(t, len(ciphertext)%aes.BlockSize)
				require.Greater(t, len(ciphertext), len(plaintext))

				decrypted, err := c.Decrypt(ciphertext)
				require.NoError(t, err)
				require.Equal(t, plaintext, decrypted)
			}
		})
	}
}

func TestAESCBCMultipleEncrypt(t *testing.T) {
	c, err := subtle.NewAESCBC(random.GetRandomBytes(32))
	require.NoError(t, err)

	plaintext := []byte("this is a secret message")

	ciphertext1, err := c.Encrypt(plaintext)
	require.NoError(t, err)

	ciphertext2, err := c.Encrypt(plaintext)
	require.NoError(t, err)

	// A fresh random IV must make repeated encryptions differ.
	require.NotEqual(t, ciphertext1, ciphertext2)

	decrypted1, err := c.Decrypt(ciphertext1)
	require.NoError(t, err)

	decrypted2, err := c.Decrypt(ciphertext2)
	require.NoError(t, err)

	require.Equal(t, decrypted1, decrypted2)
}

func TestAESCBCDecryptFailures(t *testing.T) {
	c, err := subtle.NewAESCBC(random.GetRandomBytes(16))
	require.NoError(t, err)

	t.Run("ciphertext shorter than the IV", func(t *testing.T) {
		_, err := c.Decrypt(random.GetRandomBytes(subtle.AESCBCIVSize - 1))
		require.EqualError(t, err, "aes_cbc: ciphertext too short")
	})

	t.Run("payload not block aligned", func(t *testing.T) {
		_, err := c.Decrypt(random.GetRandomBytes(subtle.AESCBCIVSize + aes.BlockSize + 1))
		require.EqualError(t, err, "aes_cbc: invalid ciphertext padding")
	})
}

func TestPadUnpad(t *testing.T) {
	t.Run("partial block", func(t *testing.T) {
		text := []byte{1, 2, 3, 4, 5}

		padded := subtle.Pad(text, len(text), aes.BlockSize)
		require.Len(t, padded, aes.BlockSize)
		require.Equal(t, byte(11), padded[len(padded)-1])
		require.Equal(t, text, subtle.Unpad(padded))
	})

	t.Run("full block gets a full padding block", func(t *testing.T) {
		text := random.GetRandomBytes(aes.BlockSize)

		padded := subtle.Pad(text, len(text), aes.BlockSize)
		require.Len(t, padded, 2*aes.BlockSize)
		require.Equal(t, byte(aes.BlockSize), padded[len(padded)-1])
		require.Equal(t, text, subtle.Unpad(padded))
	})

	t.Run("empty text", func(t *testing.T) {
		padded := subtle.Pad(nil, 0, aes.BlockSize)
		require.Len(t, padded, aes.BlockSize)
		require.True(t, bytes.Equal([]byte{}, subtle.Unpad(padded)))
	})
}

func TestValidateAESKeySize(t *testing.T) {
	for i := uint32(0); i < 65; i++ {
		err := subtle.ValidateAESKeySize(i)

		switch i {
		case 16, 24, 32:
			require.NoError(t, err)
		default:
			require.EqualError(t, err, fmt.Sprintf("invalid AES key size; want 16, 24 or 32, got %d", i))
		}
	}
}

func TestValidateAESKeySizeForGoJose(t *testing.T) {
	for i := uint32(0); i < 65; i++ {
		err := subtle.ValidateAESKeySizeForGoJose(i)

		switch i {
		case 32, 48, 64:
			require.NoError(t, err)
		default:
			require.EqualError(t, err, fmt.Sprintf("invalid AES CBC key size; want 32, 48 or 64, got %d", i))
		}
	}
}
