/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package mac provides the standard MAC key types and their key managers.
package mac

import (
	"fmt"

	"github.com/trustbloc/agility-go/core/registry"
)

// HMACTypeURL is the key type URL of HMAC keys.
const HMACTypeURL = "type.trustbloc.dev/trustbloc.agility.HmacKey"

// Register registers the standard MAC key types with the default registry.
// Re-invocation is a no-op.
func Register() error {
	if err := registry.RegisterKeyManager(newHMACKeyManager()); err != nil {
		return fmt.Errorf("mac: %w", err)
	}

	return nil
}
