/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package subtle

import (
	"fmt"

	"github.com/google/tink/go/subtle/random"
	"golang.org/x/crypto/curve25519"

	"github.com/trustbloc/agility-go/primitive"
)

// X25519AEADEncrypt is an implementation of the HybridEncrypt interface.
// The ciphertext format is ephemeralPublicKey(32) || demCiphertext.
type X25519AEADEncrypt struct {
	recipientPublicKey []byte
	helper             AEADHelper
}

var _ primitive.HybridEncrypt = (*X25519AEADEncrypt)(nil)

// NewX25519AEADEncrypt returns a HybridEncrypt instance for the given
// recipient public key.
func NewX25519AEADEncrypt(recipientPublicKey []byte, helper AEADHelper) (*X25519AEADEncrypt, error) {
	if len(recipientPublicKey) != X25519KeySize {
		return nil, fmt.Errorf("x25519_aead: bad public key length %d; want %d",
			len(recipientPublicKey), X25519KeySize)
	}

	if helper == nil {
		return nil, fmt.Errorf("x25519_aead: AEAD helper is nil")
	}

	return &X25519AEADEncrypt{
		recipientPublicKey: recipientPublicKey,
		helper:             helper,
	}, nil
}

// Encrypt encrypts plaintext, binding contextInfo to the ciphertext through
// the key derivation.
func (e *X25519AEADEncrypt) Encrypt(plaintext, contextInfo []byte) ([]byte, error) {
	ephemeralPriv := random.GetRandomBytes(X25519KeySize)

	ephemeralPub, err := curve25519.X25519(ephemeralPriv, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("x25519_aead: %w", err)
	}

	sharedSecret, err := curve25519.X25519(ephemeralPriv, e.recipientPublicKey)
	if err != nil {
		return nil, fmt.Errorf("x25519_aead: %w", err)
	}

	demKey, err := deriveDEMKey(ephemeralPub, sharedSecret, contextInfo, e.helper.DEMKeySize())
	if err != nil {
		return nil, err
	}

	aead, err := e.helper.GetAEAD(demKey)
	if err != nil {
		return nil, fmt.Errorf("x25519_aead: %w", err)
	}

	demCiphertext, err := aead.Encrypt(plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("x25519_aead: %w", err)
	}

	ciphertext := make([]byte, 0, X25519KeySize+len(demCiphertext))
	ciphertext = append(ciphertext, ephemeralPub...)
	ciphertext = append(ciphertext, demCiphertext...)

	return ciphertext, nil
}
