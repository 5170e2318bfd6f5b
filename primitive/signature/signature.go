/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package signature provides the standard digital signature key types and
// their key managers.
package signature

import (
	"fmt"

	"github.com/trustbloc/agility-go/core/registry"
)

const (
	// ED25519SignerTypeURL is the key type URL of Ed25519 private keys.
	ED25519SignerTypeURL = "type.trustbloc.dev/trustbloc.agility.Ed25519PrivateKey"

	// ED25519VerifierTypeURL is the key type URL of Ed25519 public keys.
	ED25519VerifierTypeURL = "type.trustbloc.dev/trustbloc.agility.Ed25519PublicKey"
)

// Register registers the standard signature key types with the default
// registry. Re-invocation is a no-op.
func Register() error {
	if err := registry.RegisterKeyManager(newED25519SignerKeyManager()); err != nil {
		return fmt.Errorf("signature: %w", err)
	}

	if err := registry.RegisterKeyManager(newED25519VerifierKeyManager()); err != nil {
		return fmt.Errorf("signature: %w", err)
	}

	return nil
}
