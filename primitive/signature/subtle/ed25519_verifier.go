/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package subtle

import (
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/trustbloc/agility-go/primitive"
)

// ErrInvalidSignature is returned by Verify when the signature does not
// match.
var ErrInvalidSignature = errors.New("ed25519: invalid signature")

// ED25519Verifier is an implementation of the Verifier interface.
type ED25519Verifier struct {
	publicKey ed25519.PublicKey
}

var _ primitive.Verifier = (*ED25519Verifier)(nil)

// NewED25519Verifier returns an Ed25519 verifier for the given 32-byte public
// key.
func NewED25519Verifier(publicKey []byte) (*ED25519Verifier, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("ed25519: bad public key length %d; want %d",
			len(publicKey), ed25519.PublicKeySize)
	}

	keyCopy := make([]byte, ed25519.PublicKeySize)
	copy(keyCopy, publicKey)

	return &ED25519Verifier{publicKey: keyCopy}, nil
}

// Verify returns nil if signature is a valid Ed25519 signature for data.
func (v *ED25519Verifier) Verify(signature, data []byte) error {
	if len(signature) != ed25519.SignatureSize {
		return fmt.Errorf("ed25519: bad signature length %d; want %d",
			len(signature), ed25519.SignatureSize)
	}

	if !ed25519.Verify(v.publicKey, data, signature) {
		return ErrInvalidSignature
	}

	return nil
}
