/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package subtle

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/google/tink/go/subtle/random"
)

// AESCBCIVSize is the IV size in bytes of AES-CBC ciphertexts.
const AESCBCIVSize = 16

// AESCBC is an IND-CPA secure implementation of the IndCPACipher interface.
// It does not authenticate its ciphertexts.
type AESCBC struct {
	Key []byte
}

var _ IndCPACipher = (*AESCBC)(nil)

// NewAESCBC returns an AESCBC instance.
// The key argument should be the AES key, either 16, 24 or 32 bytes to select
// AES-128, AES-192 or AES-256.
func NewAESCBC(key []byte) (*AESCBC, error) {
	keySize := uint32(len(key))
	if err := ValidateAESKeySize(keySize); err != nil {
		return nil, fmt.Errorf("aes_cbc: NewAESCBC() %w", err)
	}

	return &AESCBC{Key: key}, nil
}

// Encrypt encrypts plaintext using AES in CBC mode.
// The resulting ciphertext consists of two parts:
// (1) a random IV used for encryption and (2) the actual ciphertext.
func (a *AESCBC) Encrypt(plaintext []byte) ([]byte, error) {
	if len(plaintext) > maxInt-AESCBCIVSize-aes.BlockSize {
		return nil, errors.New("aes_cbc: plaintext too long")
	}

	block, err := a.newCipher()
	if err != nil {
		return nil, fmt.Errorf("aes_cbc: Encrypt() %w", err)
	}

	paddedPlaintext := Pad(plaintext, len(plaintext), aes.BlockSize)

	ciphertext := make([]byte, AESCBCIVSize+len(paddedPlaintext))
	iv := ciphertext[:AESCBCIVSize]
	copy(iv, random.GetRandomBytes(AESCBCIVSize))

	cbc := cipher.NewCBCEncrypter(block, iv)
	cbc.CryptBlocks(ciphertext[AESCBCIVSize:], paddedPlaintext)

	return ciphertext, nil
}

// Decrypt decrypts ciphertext. The input must start with the IV generated
// during encryption.
func (a *AESCBC) Decrypt(ciphertext []byte) ([]byte, error) {
	block, err := a.newCipher()
	if err != nil {
		return nil, fmt.Errorf("aes_cbc: Decrypt() %w", err)
	}

	if len(ciphertext) < AESCBCIVSize {
		return nil, errors.New("aes_cbc: ciphertext too short")
	}

	iv := ciphertext[:AESCBCIVSize]
	payload := ciphertext[AESCBCIVSize:]

	if len(payload)%aes.BlockSize != 0 {
		return nil, errors.New("aes_cbc: invalid ciphertext padding")
	}

	paddedPlaintext := make([]byte, len(payload))

	cbc := cipher.NewCBCDecrypter(block, iv)
	cbc.CryptBlocks(paddedPlaintext, payload)

	return Unpad(paddedPlaintext), nil
}

func (a *AESCBC) newCipher() (cipher.Block, error) {
	block, err := aes.NewCipher(a.Key)
	if err != nil {
		return nil, fmt.Errorf("aes_cbc: failed to create block cipher, error: %w", err)
	}

	return block, nil
}

// Pad text to a multiple of blockSize using PKCS#7. textSize is the length of
// text; a full padding block is appended when textSize is already a multiple
// of blockSize.
func Pad(text []byte, textSize, blockSize int) []byte {
	padAmount := blockSize - (textSize % blockSize)

	padded := make([]byte, textSize+padAmount)
	copy(padded, text)

	for i := textSize; i < len(padded); i++ {
		padded[i] = byte(padAmount)
	}

	return padded
}

// Unpad removes PKCS#7 padding appended by Pad.
func Unpad(text []byte) []byte {
	if len(text) == 0 {
		return text
	}

	padAmount := int(text[len(text)-1])
	if padAmount > len(text) {
		return text
	}

	return text[:len(text)-padAmount]
}
