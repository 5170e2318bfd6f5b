/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package aead

import (
	"encoding/json"
	"fmt"

	"github.com/google/tink/go/subtle/random"

	"github.com/trustbloc/agility-go/core/registry"
	"github.com/trustbloc/agility-go/primitive"
	"github.com/trustbloc/agility-go/primitive/aead/subtle"
	"github.com/trustbloc/agility-go/primitive/mac"
)

const (
	aesCBCHMACAEADKeyVersion = 0

	// standard parameters for newly generated AES-CBC+HMAC AEAD keys.
	aesCBCHMACDefaultAESKeySize  = subtle.AES256Size
	aesCBCHMACDefaultHMACKeySize = 32
	aesCBCHMACDefaultHash        = "SHA256"
	aesCBCHMACDefaultTagSize     = 16
)

var errInvalidAESCBCHMACAEADKey = fmt.Errorf("aes_cbc_hmac_aead_key_manager: %w", registry.ErrInvalidKey)

// aesCBCHMACAEADKeyManager is an implementation of the KeyManager interface.
// It produces EncryptThenAuthenticate instances combining an AES-CBC cipher
// with an HMAC resolved through the registry, so the HMAC key type must be
// registered before primitives of this key type are constructed.
type aesCBCHMACAEADKeyManager struct{}

func newAESCBCHMACAEADKeyManager() *aesCBCHMACAEADKeyManager {
	return new(aesCBCHMACAEADKeyManager)
}

// Primitive creates an EncryptThenAuthenticate subtle for the given
// serialized AESCBCHMACAEADKey.
func (km *aesCBCHMACAEADKeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	if len(serializedKey) == 0 {
		return nil, errInvalidAESCBCHMACAEADKey
	}

	key := new(AESCBCHMACAEADKey)
	if err := json.Unmarshal(serializedKey, key); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidAESCBCHMACAEADKey, err)
	}

	if err := km.validateKey(key); err != nil {
		return nil, err
	}

	cipher, err := subtle.NewAESCBC(key.AESCBCKey.KeyValue)
	if err != nil {
		return nil, fmt.Errorf("aes_cbc_hmac_aead_key_manager: %w", err)
	}

	serializedHMACKey, err := json.Marshal(key.HMACKey)
	if err != nil {
		return nil, fmt.Errorf("aes_cbc_hmac_aead_key_manager: failed to serialize HMAC key: %w", err)
	}

	macPrimitive, err := registry.Primitive(mac.HMACTypeURL, serializedHMACKey)
	if err != nil {
		return nil, fmt.Errorf("aes_cbc_hmac_aead_key_manager: failed to resolve MAC: %w", err)
	}

	macInstance, ok := macPrimitive.(primitive.MAC)
	if !ok {
		return nil, fmt.Errorf("aes_cbc_hmac_aead_key_manager: resolved primitive is not a MAC")
	}

	aead, err := subtle.NewEncryptThenAuthenticate(cipher, macInstance, key.HMACKey.TagSize)
	if err != nil {
		return nil, fmt.Errorf("aes_cbc_hmac_aead_key_manager: %w", err)
	}

	return aead, nil
}

// NewKey generates a serialized AESCBCHMACAEADKey with the standard
// parameters (AES-256, HMAC-SHA256 truncated to a 16-byte tag).
func (km *aesCBCHMACAEADKeyManager) NewKey() ([]byte, error) {
	key := &AESCBCHMACAEADKey{
		Version: aesCBCHMACAEADKeyVersion,
		AESCBCKey: &AESCBCKey{
			Version:  aesCBCHMACAEADKeyVersion,
			KeyValue: random.GetRandomBytes(aesCBCHMACDefaultAESKeySize),
		},
		HMACKey: &mac.HMACKey{
			Version:  aesCBCHMACAEADKeyVersion,
			Hash:     aesCBCHMACDefaultHash,
			TagSize:  aesCBCHMACDefaultTagSize,
			KeyValue: random.GetRandomBytes(aesCBCHMACDefaultHMACKeySize),
		},
	}

	serializedKey, err := json.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("aes_cbc_hmac_aead_key_manager: failed to serialize key: %w", err)
	}

	return serializedKey, nil
}

// DoesSupport indicates if this key manager supports the given key type.
func (km *aesCBCHMACAEADKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == AESCBCHMACAEADTypeURL
}

// TypeURL returns the key type of keys managed by this key manager.
func (km *aesCBCHMACAEADKeyManager) TypeURL() string {
	return AESCBCHMACAEADTypeURL
}

func (km *aesCBCHMACAEADKeyManager) validateKey(key *AESCBCHMACAEADKey) error {
	if key.Version > aesCBCHMACAEADKeyVersion {
		return fmt.Errorf("%w: key version %d is newer than %d",
			errInvalidAESCBCHMACAEADKey, key.Version, aesCBCHMACAEADKeyVersion)
	}

	if key.AESCBCKey == nil || key.HMACKey == nil {
		return fmt.Errorf("%w: missing AES-CBC or HMAC key", errInvalidAESCBCHMACAEADKey)
	}

	if err := subtle.ValidateAESKeySize(uint32(len(key.AESCBCKey.KeyValue))); err != nil {
		return fmt.Errorf("%w: %v", errInvalidAESCBCHMACAEADKey, err)
	}

	return nil
}
