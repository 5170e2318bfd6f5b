/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package subtle provides subtle implementations of the hybrid encryption
// primitive based on X25519 key agreement and an AEAD data-encapsulation
// mechanism.
package subtle

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"

	"github.com/trustbloc/agility-go/primitive"
)

// X25519KeySize is the size in bytes of X25519 public and private keys.
const X25519KeySize = curve25519.ScalarSize

// AEADHelper builds the data-encapsulation AEAD from a per-message derived
// key. Implementations select the concrete AEAD algorithm; see the hybrid
// package for the registry-backed helper.
type AEADHelper interface {
	// DEMKeySize returns the size in bytes of the key material GetAEAD
	// expects.
	DEMKeySize() int

	// GetAEAD returns the AEAD primitive for the given key material.
	GetAEAD(demKey []byte) (primitive.AEAD, error)
}

// deriveDEMKey derives keySize bytes of DEM key material from the ephemeral
// public key and the X25519 shared secret, binding contextInfo through the
// HKDF info parameter.
func deriveDEMKey(ephemeralPub, sharedSecret, contextInfo []byte, keySize int) ([]byte, error) {
	ikm := make([]byte, 0, len(ephemeralPub)+len(sharedSecret))
	ikm = append(ikm, ephemeralPub...)
	ikm = append(ikm, sharedSecret...)

	demKey := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, nil, contextInfo), demKey); err != nil {
		return nil, fmt.Errorf("x25519_aead: failed to derive DEM key: %w", err)
	}

	return demKey, nil
}
