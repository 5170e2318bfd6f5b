/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signature

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"

	"github.com/trustbloc/agility-go/core/registry"
	"github.com/trustbloc/agility-go/primitive/signature/subtle"
)

const ed25519SignerKeyVersion = 0

var errInvalidED25519SignKey = fmt.Errorf("ed25519_signer_key_manager: %w", registry.ErrInvalidKey)

// ed25519SignerKeyManager is an implementation of the KeyManager interface.
// It generates new ED25519PrivateKeys and produces new instances of the
// ED25519Signer subtle.
type ed25519SignerKeyManager struct{}

func newED25519SignerKeyManager() *ed25519SignerKeyManager {
	return new(ed25519SignerKeyManager)
}

// Primitive creates an ED25519Signer subtle for the given serialized
// ED25519PrivateKey.
func (km *ed25519SignerKeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	if len(serializedKey) == 0 {
		return nil, errInvalidED25519SignKey
	}

	key := new(ED25519PrivateKey)
	if err := json.Unmarshal(serializedKey, key); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidED25519SignKey, err)
	}

	if err := km.validateKey(key); err != nil {
		return nil, err
	}

	signer, err := subtle.NewED25519SignerFromSeed(key.KeyValue)
	if err != nil {
		return nil, fmt.Errorf("ed25519_signer_key_manager: %w", err)
	}

	return signer, nil
}

// NewKey generates a serialized ED25519PrivateKey. The embedded public key
// half is the serialized form accepted by the Ed25519 verifier key manager.
func (km *ed25519SignerKeyManager) NewKey() ([]byte, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("ed25519_signer_key_manager: cannot generate ED25519 key: %w", err)
	}

	key := &ED25519PrivateKey{
		Version: ed25519SignerKeyVersion,
		PublicKey: &ED25519PublicKey{
			Version:  ed25519SignerKeyVersion,
			KeyValue: publicKey,
		},
		KeyValue: privateKey.Seed(),
	}

	serializedKey, err := json.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("ed25519_signer_key_manager: failed to serialize key: %w", err)
	}

	return serializedKey, nil
}

// DoesSupport indicates if this key manager supports the given key type.
func (km *ed25519SignerKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == ED25519SignerTypeURL
}

// TypeURL returns the key type of keys managed by this key manager.
func (km *ed25519SignerKeyManager) TypeURL() string {
	return ED25519SignerTypeURL
}

func (km *ed25519SignerKeyManager) validateKey(key *ED25519PrivateKey) error {
	if key.Version > ed25519SignerKeyVersion {
		return fmt.Errorf("%w: key version %d is newer than %d",
			errInvalidED25519SignKey, key.Version, ed25519SignerKeyVersion)
	}

	if len(key.KeyValue) != ed25519.SeedSize {
		return fmt.Errorf("%w: bad seed length %d; want %d",
			errInvalidED25519SignKey, len(key.KeyValue), ed25519.SeedSize)
	}

	return nil
}
