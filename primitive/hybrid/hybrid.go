/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package hybrid provides the standard hybrid encryption key types and their
// key managers.
package hybrid

import (
	"fmt"

	"github.com/trustbloc/agility-go/core/registry"
	"github.com/trustbloc/agility-go/primitive/aead"
)

const (
	// X25519AEADPrivateTypeURL is the key type URL of X25519 hybrid private
	// keys.
	X25519AEADPrivateTypeURL = "type.trustbloc.dev/trustbloc.agility.X25519AeadPrivateKey"

	// X25519AEADPublicTypeURL is the key type URL of X25519 hybrid public
	// keys.
	X25519AEADPublicTypeURL = "type.trustbloc.dev/trustbloc.agility.X25519AeadPublicKey"
)

// Register registers the standard hybrid encryption key types with the
// default registry. Hybrid primitives resolve their DEM AEAD through the
// registry at primitive-construction time, so the AEAD key types (and,
// transitively, the MAC key types) are registered first. Re-invocation is a
// no-op.
func Register() error {
	if err := aead.Register(); err != nil {
		return fmt.Errorf("hybrid: %w", err)
	}

	if err := registry.RegisterKeyManager(newX25519AEADPrivateKeyManager()); err != nil {
		return fmt.Errorf("hybrid: %w", err)
	}

	if err := registry.RegisterKeyManager(newX25519AEADPublicKeyManager()); err != nil {
		return fmt.Errorf("hybrid: %w", err)
	}

	return nil
}
