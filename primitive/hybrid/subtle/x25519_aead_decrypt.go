/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package subtle

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/curve25519"

	"github.com/trustbloc/agility-go/primitive"
)

// X25519AEADDecrypt is an implementation of the HybridDecrypt interface for
// ciphertexts produced by X25519AEADEncrypt.
type X25519AEADDecrypt struct {
	privateKey []byte
	helper     AEADHelper
}

var _ primitive.HybridDecrypt = (*X25519AEADDecrypt)(nil)

// NewX25519AEADDecrypt returns a HybridDecrypt instance for the given X25519
// private key.
func NewX25519AEADDecrypt(privateKey []byte, helper AEADHelper) (*X25519AEADDecrypt, error) {
	if len(privateKey) != X25519KeySize {
		return nil, fmt.Errorf("x25519_aead: bad private key length %d; want %d",
			len(privateKey), X25519KeySize)
	}

	if helper == nil {
		return nil, fmt.Errorf("x25519_aead: AEAD helper is nil")
	}

	return &X25519AEADDecrypt{
		privateKey: privateKey,
		helper:     helper,
	}, nil
}

// Decrypt decrypts ciphertext, verifying the contextInfo binding.
func (d *X25519AEADDecrypt) Decrypt(ciphertext, contextInfo []byte) ([]byte, error) {
	if len(ciphertext) < X25519KeySize {
		return nil, errors.New("x25519_aead: ciphertext too short")
	}

	ephemeralPub := ciphertext[:X25519KeySize]
	demCiphertext := ciphertext[X25519KeySize:]

	sharedSecret, err := curve25519.X25519(d.privateKey, ephemeralPub)
	if err != nil {
		return nil, fmt.Errorf("x25519_aead: %w", err)
	}

	demKey, err := deriveDEMKey(ephemeralPub, sharedSecret, contextInfo, d.helper.DEMKeySize())
	if err != nil {
		return nil, err
	}

	aead, err := d.helper.GetAEAD(demKey)
	if err != nil {
		return nil, fmt.Errorf("x25519_aead: %w", err)
	}

	plaintext, err := aead.Decrypt(demCiphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("x25519_aead: failed to decrypt: %w", err)
	}

	return plaintext, nil
}
