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
	"github.com/trustbloc/agility-go/primitive/aead/subtle"
)

const joseAESCBCHMACKeyVersion = 0

var errInvalidJoseAESCBCHMACKey = fmt.Errorf("jose_aes_cbc_hmac_key_manager: %w", registry.ErrInvalidKey)

// joseAESCBCHMACKeyManager is an implementation of the KeyManager interface
// for the legacy JOSE AES-CBC+HMAC AEAD. Register installs it with new-key
// generation disallowed: existing ciphertexts remain decryptable while new
// encryptions move to the other AEAD key types.
type joseAESCBCHMACKeyManager struct{}

func newJoseAESCBCHMACKeyManager() *joseAESCBCHMACKeyManager {
	return new(joseAESCBCHMACKeyManager)
}

// Primitive creates an AESCBCHMAC subtle for the given serialized
// JoseAESCBCHMACKey.
func (km *joseAESCBCHMACKeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	if len(serializedKey) == 0 {
		return nil, errInvalidJoseAESCBCHMACKey
	}

	key := new(JoseAESCBCHMACKey)
	if err := json.Unmarshal(serializedKey, key); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidJoseAESCBCHMACKey, err)
	}

	if err := km.validateKey(key); err != nil {
		return nil, err
	}

	aead, err := subtle.NewAESCBCHMAC(key.KeyValue)
	if err != nil {
		return nil, fmt.Errorf("jose_aes_cbc_hmac_key_manager: %w", err)
	}

	return aead, nil
}

// NewKey generates a serialized JoseAESCBCHMACKey with a combined AES-256 and
// HMAC-SHA512 key. The registry blocks this call for the standard
// registration of this key type.
func (km *joseAESCBCHMACKeyManager) NewKey() ([]byte, error) {
	key := &JoseAESCBCHMACKey{
		Version:  joseAESCBCHMACKeyVersion,
		KeyValue: random.GetRandomBytes(2 * subtle.AES256Size),
	}

	serializedKey, err := json.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("jose_aes_cbc_hmac_key_manager: failed to serialize key: %w", err)
	}

	return serializedKey, nil
}

// DoesSupport indicates if this key manager supports the given key type.
func (km *joseAESCBCHMACKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == JoseAESCBCHMACTypeURL
}

// TypeURL returns the key type of keys managed by this key manager.
func (km *joseAESCBCHMACKeyManager) TypeURL() string {
	return JoseAESCBCHMACTypeURL
}

func (km *joseAESCBCHMACKeyManager) validateKey(key *JoseAESCBCHMACKey) error {
	if key.Version > joseAESCBCHMACKeyVersion {
		return fmt.Errorf("%w: key version %d is newer than %d",
			errInvalidJoseAESCBCHMACKey, key.Version, joseAESCBCHMACKeyVersion)
	}

	if err := subtle.ValidateAESKeySizeForGoJose(uint32(len(key.KeyValue))); err != nil {
		return fmt.Errorf("%w: %v", errInvalidJoseAESCBCHMACKey, err)
	}

	return nil
}
