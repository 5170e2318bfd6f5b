/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package subtle

import (
	"crypto/aes"
	"errors"
	"fmt"

	josecipher "github.com/go-jose/go-jose/v3/cipher"
	"github.com/google/tink/go/subtle/random"

	"github.com/trustbloc/agility-go/primitive"
)

// AESCBCHMAC is an implementation of the AEAD interface backed by the JOSE
// AES-CBC+HMAC composition of go-jose. It remains for decrypting data
// produced by JOSE tooling; new keys should use EncryptThenAuthenticate or
// ChaCha20Poly1305 instead.
type AESCBCHMAC struct {
	Key []byte
}

var _ primitive.AEAD = (*AESCBCHMAC)(nil)

// NewAESCBCHMAC returns an AES CBC HMAC instance.
// The key argument holds the HMAC and AES keys concatenated, so must be 32,
// 48 or 64 bytes to select AES-128, AES-192 or AES-256.
func NewAESCBCHMAC(key []byte) (*AESCBCHMAC, error) {
	keySize := uint32(len(key))

	if err := ValidateAESKeySizeForGoJose(keySize); err != nil {
		return nil, fmt.Errorf("aes_cbc_hmac: %w", err)
	}

	return &AESCBCHMAC{Key: key}, nil
}

// Encrypt encrypts plaintext using AES in CBC mode with an HMAC tag.
// The resulting ciphertext consists of two parts:
// (1) a random IV used for encryption and (2) the actual ciphertext.
func (a *AESCBCHMAC) Encrypt(plaintext, associatedData []byte) ([]byte, error) {
	if len(plaintext) > maxInt-AESCBCIVSize {
		return nil, errors.New("aes_cbc_hmac: plaintext too long")
	}

	cbcHMAC, err := josecipher.NewCBCHMAC(a.Key, aes.NewCipher)
	if err != nil {
		return nil, fmt.Errorf("aes_cbc_hmac: %w", err)
	}

	iv := random.GetRandomBytes(uint32(AESCBCIVSize))

	ciphertext := cbcHMAC.Seal(nil, iv, plaintext, associatedData)

	ciphertextAndIV := make([]byte, AESCBCIVSize+len(ciphertext))
	if n := copy(ciphertextAndIV, iv); n != AESCBCIVSize {
		return nil, fmt.Errorf("aes_cbc_hmac: failed to copy IV (copied %d/%d bytes)", n, AESCBCIVSize)
	}

	copy(ciphertextAndIV[AESCBCIVSize:], ciphertext)

	return ciphertextAndIV, nil
}

// Decrypt decrypts ciphertext.
func (a *AESCBCHMAC) Decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	cbcHMAC, err := josecipher.NewCBCHMAC(a.Key, aes.NewCipher)
	if err != nil {
		return nil, fmt.Errorf("aes_cbc_hmac: %w", err)
	}

	ivSize := cbcHMAC.NonceSize()
	if len(ciphertext) < ivSize {
		return nil, errors.New("aes_cbc_hmac: ciphertext too short")
	}

	iv := ciphertext[:ivSize]

	plaintext, err := cbcHMAC.Open(nil, iv, ciphertext[ivSize:], associatedData)
	if err != nil {
		return nil, fmt.Errorf("aes_cbc_hmac: failed to decrypt: %w", err)
	}

	return plaintext, nil
}
