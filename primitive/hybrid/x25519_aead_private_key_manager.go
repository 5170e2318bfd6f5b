/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hybrid

import (
	"encoding/json"
	"fmt"

	"github.com/google/tink/go/subtle/random"
	"golang.org/x/crypto/curve25519"

	"github.com/trustbloc/agility-go/core/registry"
	"github.com/trustbloc/agility-go/primitive/aead"
	"github.com/trustbloc/agility-go/primitive/hybrid/subtle"
)

const x25519AEADPrivateKeyVersion = 0

var errInvalidX25519AEADPrivateKey = fmt.Errorf("x25519_aead_private_key_manager: %w", registry.ErrInvalidKey)

// x25519AEADPrivateKeyManager is an implementation of the KeyManager
// interface. It produces new instances of the X25519AEADDecrypt subtle.
type x25519AEADPrivateKeyManager struct{}

func newX25519AEADPrivateKeyManager() *x25519AEADPrivateKeyManager {
	return new(x25519AEADPrivateKeyManager)
}

// Primitive creates an X25519AEADDecrypt subtle for the given serialized
// X25519AEADPrivateKey.
func (km *x25519AEADPrivateKeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	if len(serializedKey) == 0 {
		return nil, errInvalidX25519AEADPrivateKey
	}

	key := new(X25519AEADPrivateKey)
	if err := json.Unmarshal(serializedKey, key); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidX25519AEADPrivateKey, err)
	}

	if err := km.validateKey(key); err != nil {
		return nil, err
	}

	helper, err := newRegistryAEADHelper(key.PublicKey.DEMTypeURL)
	if err != nil {
		return nil, fmt.Errorf("x25519_aead_private_key_manager: %w", err)
	}

	decrypt, err := subtle.NewX25519AEADDecrypt(key.KeyValue, helper)
	if err != nil {
		return nil, fmt.Errorf("x25519_aead_private_key_manager: %w", err)
	}

	return decrypt, nil
}

// NewKey generates a serialized X25519AEADPrivateKey with ChaCha20-Poly1305
// as the DEM key type. The embedded public key half is the serialized form
// accepted by the X25519 public key manager.
func (km *x25519AEADPrivateKeyManager) NewKey() ([]byte, error) {
	privateKeyValue := random.GetRandomBytes(subtle.X25519KeySize)

	publicKeyValue, err := curve25519.X25519(privateKeyValue, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("x25519_aead_private_key_manager: %w", err)
	}

	key := &X25519AEADPrivateKey{
		Version: x25519AEADPrivateKeyVersion,
		PublicKey: &X25519AEADPublicKey{
			Version:    x25519AEADPrivateKeyVersion,
			DEMTypeURL: aead.ChaCha20Poly1305TypeURL,
			KeyValue:   publicKeyValue,
		},
		KeyValue: privateKeyValue,
	}

	serializedKey, err := json.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("x25519_aead_private_key_manager: failed to serialize key: %w", err)
	}

	return serializedKey, nil
}

// DoesSupport indicates if this key manager supports the given key type.
func (km *x25519AEADPrivateKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == X25519AEADPrivateTypeURL
}

// TypeURL returns the key type of keys managed by this key manager.
func (km *x25519AEADPrivateKeyManager) TypeURL() string {
	return X25519AEADPrivateTypeURL
}

func (km *x25519AEADPrivateKeyManager) validateKey(key *X25519AEADPrivateKey) error {
	if key.Version > x25519AEADPrivateKeyVersion {
		return fmt.Errorf("%w: key version %d is newer than %d",
			errInvalidX25519AEADPrivateKey, key.Version, x25519AEADPrivateKeyVersion)
	}

	if key.PublicKey == nil {
		return fmt.Errorf("%w: missing public key", errInvalidX25519AEADPrivateKey)
	}

	if len(key.KeyValue) != subtle.X25519KeySize {
		return fmt.Errorf("%w: bad private key length %d; want %d",
			errInvalidX25519AEADPrivateKey, len(key.KeyValue), subtle.X25519KeySize)
	}

	return nil
}
