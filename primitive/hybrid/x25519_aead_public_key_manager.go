/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hybrid

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trustbloc/agility-go/core/registry"
	"github.com/trustbloc/agility-go/primitive/hybrid/subtle"
)

const x25519AEADPublicKeyVersion = 0

var errInvalidX25519AEADPublicKey = fmt.Errorf("x25519_aead_public_key_manager: %w", registry.ErrInvalidKey)

// x25519AEADPublicKeyManager is an implementation of the KeyManager
// interface. It produces new instances of the X25519AEADEncrypt subtle.
type x25519AEADPublicKeyManager struct{}

func newX25519AEADPublicKeyManager() *x25519AEADPublicKeyManager {
	return new(x25519AEADPublicKeyManager)
}

// Primitive creates an X25519AEADEncrypt subtle for the given serialized
// X25519AEADPublicKey.
func (km *x25519AEADPublicKeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	if len(serializedKey) == 0 {
		return nil, errInvalidX25519AEADPublicKey
	}

	key := new(X25519AEADPublicKey)
	if err := json.Unmarshal(serializedKey, key); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidX25519AEADPublicKey, err)
	}

	if err := km.validateKey(key); err != nil {
		return nil, err
	}

	helper, err := newRegistryAEADHelper(key.DEMTypeURL)
	if err != nil {
		return nil, fmt.Errorf("x25519_aead_public_key_manager: %w", err)
	}

	encrypt, err := subtle.NewX25519AEADEncrypt(key.KeyValue, helper)
	if err != nil {
		return nil, fmt.Errorf("x25519_aead_public_key_manager: %w", err)
	}

	return encrypt, nil
}

// NewKey is not supported for public key material.
func (km *x25519AEADPublicKeyManager) NewKey() ([]byte, error) {
	return nil, errors.New("x25519_aead_public_key_manager: NewKey not supported")
}

// DoesSupport indicates if this key manager supports the given key type.
func (km *x25519AEADPublicKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == X25519AEADPublicTypeURL
}

// TypeURL returns the key type of keys managed by this key manager.
func (km *x25519AEADPublicKeyManager) TypeURL() string {
	return X25519AEADPublicTypeURL
}

func (km *x25519AEADPublicKeyManager) validateKey(key *X25519AEADPublicKey) error {
	if key.Version > x25519AEADPublicKeyVersion {
		return fmt.Errorf("%w: key version %d is newer than %d",
			errInvalidX25519AEADPublicKey, key.Version, x25519AEADPublicKeyVersion)
	}

	if len(key.KeyValue) != subtle.X25519KeySize {
		return fmt.Errorf("%w: bad public key length %d; want %d",
			errInvalidX25519AEADPublicKey, len(key.KeyValue), subtle.X25519KeySize)
	}

	return nil
}
