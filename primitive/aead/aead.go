/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package aead provides the standard AEAD key types and their key managers.
package aead

import (
	"fmt"

	"github.com/trustbloc/agility-go/core/registry"
	"github.com/trustbloc/agility-go/primitive/mac"
)

const (
	// AESCBCHMACAEADTypeURL is the key type URL of AES-CBC+HMAC AEAD keys.
	AESCBCHMACAEADTypeURL = "type.trustbloc.dev/trustbloc.agility.AesCbcHmacAeadKey"

	// ChaCha20Poly1305TypeURL is the key type URL of ChaCha20-Poly1305 keys.
	ChaCha20Poly1305TypeURL = "type.trustbloc.dev/trustbloc.agility.ChaCha20Poly1305Key"

	// JoseAESCBCHMACTypeURL is the key type URL of the legacy JOSE
	// AES-CBC+HMAC keys, registered for use with existing keys only.
	JoseAESCBCHMACTypeURL = "type.trustbloc.dev/trustbloc.agility.JoseAesCbcHmacKey"
)

// Register registers the standard AEAD key types with the default registry.
// The AES-CBC+HMAC key manager resolves its MAC through the registry at
// primitive-construction time, so the MAC key types are registered first.
// Re-invocation is a no-op.
func Register() error {
	if err := mac.Register(); err != nil {
		return fmt.Errorf("aead: %w", err)
	}

	if err := registry.RegisterKeyManager(newAESCBCHMACAEADKeyManager()); err != nil {
		return fmt.Errorf("aead: %w", err)
	}

	if err := registry.RegisterKeyManager(newChaCha20Poly1305KeyManager()); err != nil {
		return fmt.Errorf("aead: %w", err)
	}

	if err := registry.RegisterKeyManager(newJoseAESCBCHMACKeyManager(),
		registry.WithNewKeyDisallowed()); err != nil {
		return fmt.Errorf("aead: %w", err)
	}

	return nil
}
