/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package subtle provides the Ed25519 implementation of the signature
// primitives.
package subtle

import (
	"crypto/ed25519"
	"fmt"

	"github.com/trustbloc/agility-go/primitive"
)

// ED25519Signer is an implementation of the Signer interface.
type ED25519Signer struct {
	privateKey ed25519.PrivateKey
}

var _ primitive.Signer = (*ED25519Signer)(nil)

// NewED25519SignerFromSeed returns an Ed25519 signer for the given 32-byte
// seed.
func NewED25519SignerFromSeed(seed []byte) (*ED25519Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("ed25519: bad seed length %d; want %d", len(seed), ed25519.SeedSize)
	}

	return &ED25519Signer{privateKey: ed25519.NewKeyFromSeed(seed)}, nil
}

// Sign computes an Ed25519 signature for data.
func (s *ED25519Signer) Sign(data []byte) ([]byte, error) {
	return ed25519.Sign(s.privateKey, data), nil
}

// PublicKey returns the public key matching the signer's private key.
func (s *ED25519Signer) PublicKey() []byte {
	return s.privateKey.Public().(ed25519.PublicKey)
}
