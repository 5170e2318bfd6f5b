/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signature

import (
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trustbloc/agility-go/core/registry"
	"github.com/trustbloc/agility-go/primitive/signature/subtle"
)

const ed25519VerifierKeyVersion = 0

var errInvalidED25519VerifierKey = fmt.Errorf("ed25519_verifier_key_manager: %w", registry.ErrInvalidKey)

// ed25519VerifierKeyManager is an implementation of the KeyManager interface.
// It produces new instances of the ED25519Verifier subtle.
type ed25519VerifierKeyManager struct{}

func newED25519VerifierKeyManager() *ed25519VerifierKeyManager {
	return new(ed25519VerifierKeyManager)
}

// Primitive creates an ED25519Verifier subtle for the given serialized
// ED25519PublicKey.
func (km *ed25519VerifierKeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	if len(serializedKey) == 0 {
		return nil, errInvalidED25519VerifierKey
	}

	key := new(ED25519PublicKey)
	if err := json.Unmarshal(serializedKey, key); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidED25519VerifierKey, err)
	}

	if err := km.validateKey(key); err != nil {
		return nil, err
	}

	verifier, err := subtle.NewED25519Verifier(key.KeyValue)
	if err != nil {
		return nil, fmt.Errorf("ed25519_verifier_key_manager: %w", err)
	}

	return verifier, nil
}

// NewKey is not supported for public key material.
func (km *ed25519VerifierKeyManager) NewKey() ([]byte, error) {
	return nil, errors.New("ed25519_verifier_key_manager: NewKey not supported")
}

// DoesSupport indicates if this key manager supports the given key type.
func (km *ed25519VerifierKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == ED25519VerifierTypeURL
}

// TypeURL returns the key type of keys managed by this key manager.
func (km *ed25519VerifierKeyManager) TypeURL() string {
	return ED25519VerifierTypeURL
}

func (km *ed25519VerifierKeyManager) validateKey(key *ED25519PublicKey) error {
	if key.Version > ed25519VerifierKeyVersion {
		return fmt.Errorf("%w: key version %d is newer than %d",
			errInvalidED25519VerifierKey, key.Version, ed25519VerifierKeyVersion)
	}

	if len(key.KeyValue) != ed25519.PublicKeySize {
		return fmt.Errorf("%w: bad public key length %d; want %d",
			errInvalidED25519VerifierKey, len(key.KeyValue), ed25519.PublicKeySize)
	}

	return nil
}
