/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mac

import (
	"encoding/json"
	"fmt"

	"github.com/google/tink/go/subtle/random"

	"github.com/trustbloc/agility-go/core/registry"
	"github.com/trustbloc/agility-go/primitive/mac/subtle"
)

const (
	hmacKeyVersion = 0

	// standard parameters for newly generated HMAC keys.
	hmacDefaultHash    = "SHA256"
	hmacDefaultKeySize = 32
	hmacDefaultTagSize = 32
)

var errInvalidHMACKey = fmt.Errorf("hmac_key_manager: %w", registry.ErrInvalidKey)

// hmacKeyManager is an implementation of the KeyManager interface. It
// produces new instances of the HMAC subtle.
type hmacKeyManager struct{}

func newHMACKeyManager() *hmacKeyManager {
	return new(hmacKeyManager)
}

// Primitive creates an HMAC subtle for the given serialized HMACKey.
func (km *hmacKeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	if len(serializedKey) == 0 {
		return nil, errInvalidHMACKey
	}

	key := new(HMACKey)
	if err := json.Unmarshal(serializedKey, key); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidHMACKey, err)
	}

	if err := km.validateKey(key); err != nil {
		return nil, err
	}

	h, err := subtle.NewHMAC(key.Hash, key.KeyValue, key.TagSize)
	if err != nil {
		return nil, fmt.Errorf("hmac_key_manager: %w", err)
	}

	return h, nil
}

// NewKey generates a serialized HMACKey with the standard parameters
// (SHA256, 32-byte key, full-length tag).
func (km *hmacKeyManager) NewKey() ([]byte, error) {
	key := &HMACKey{
		Version:  hmacKeyVersion,
		Hash:     hmacDefaultHash,
		TagSize:  hmacDefaultTagSize,
		KeyValue: random.GetRandomBytes(hmacDefaultKeySize),
	}

	serializedKey, err := json.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("hmac_key_manager: failed to serialize key: %w", err)
	}

	return serializedKey, nil
}

// DoesSupport indicates if this key manager supports the given key type.
func (km *hmacKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == HMACTypeURL
}

// TypeURL returns the key type of keys managed by this key manager.
func (km *hmacKeyManager) TypeURL() string {
	return HMACTypeURL
}

func (km *hmacKeyManager) validateKey(key *HMACKey) error {
	if key.Version > hmacKeyVersion {
		return fmt.Errorf("%w: key version %d is newer than %d", errInvalidHMACKey, key.Version, hmacKeyVersion)
	}

	if err := subtle.ValidateHMACParams(key.Hash, len(key.KeyValue), key.TagSize); err != nil {
		return fmt.Errorf("%w: %v", errInvalidHMACKey, err)
	}

	return nil
}
