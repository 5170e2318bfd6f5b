/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package aead

import (
	"encoding/json"
	"fmt"

	"github.com/google/tink/go/subtle/random"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/trustbloc/agility-go/core/registry"
	"github.com/trustbloc/agility-go/primitive/aead/subtle"
)

const chaCha20Poly1305KeyVersion = 0

var errInvalidChaCha20Poly1305Key = fmt.Errorf("chacha20poly1305_key_manager: %w", registry.ErrInvalidKey)

// chaCha20Poly1305KeyManager is an implementation of the KeyManager
// interface. It produces new instances of the ChaCha20Poly1305 subtle.
type chaCha20Poly1305KeyManager struct{}

func newChaCha20Poly1305KeyManager() *chaCha20Poly1305KeyManager {
	return new(chaCha20Poly1305KeyManager)
}

// Primitive creates a ChaCha20Poly1305 subtle for the given serialized
// ChaCha20Poly1305Key.
func (km *chaCha20Poly1305KeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	if len(serializedKey) == 0 {
		return nil, errInvalidChaCha20Poly1305Key
	}

	key := new(ChaCha20Poly1305Key)
	if err := json.Unmarshal(serializedKey, key); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidChaCha20Poly1305Key, err)
	}

	if err := km.validateKey(key); err != nil {
		return nil, err
	}

	aead, err := subtle.NewChaCha20Poly1305(key.KeyValue)
	if err != nil {
		return nil, fmt.Errorf("chacha20poly1305_key_manager: %w", err)
	}

	return aead, nil
}

// NewKey generates a serialized ChaCha20Poly1305Key.
func (km *chaCha20Poly1305KeyManager) NewKey() ([]byte, error) {
	key := &ChaCha20Poly1305Key{
		Version:  chaCha20Poly1305KeyVersion,
		KeyValue: random.GetRandomBytes(chacha20poly1305.KeySize),
	}

	serializedKey, err := json.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("chacha20poly1305_key_manager: failed to serialize key: %w", err)
	}

	return serializedKey, nil
}

// DoesSupport indicates if this key manager supports the given key type.
func (km *chaCha20Poly1305KeyManager) DoesSupport(typeURL string) bool {
	return typeURL == ChaCha20Poly1305TypeURL
}

// TypeURL returns the key type of keys managed by this key manager.
func (km *chaCha20Poly1305KeyManager) TypeURL() string {
	return ChaCha20Poly1305TypeURL
}

func (km *chaCha20Poly1305KeyManager) validateKey(key *ChaCha20Poly1305Key) error {
	if key.Version > chaCha20Poly1305KeyVersion {
		return fmt.Errorf("%w: key version %d is newer than %d",
			errInvalidChaCha20Poly1305Key, key.Version, chaCha20Poly1305KeyVersion)
	}

	if len(key.KeyValue) != chacha20poly1305.KeySize {
		return fmt.Errorf("%w: bad key length %d; want %d",
			errInvalidChaCha20Poly1305Key, len(key.KeyValue), chacha20poly1305.KeySize)
	}

	return nil
}
