/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signature_test

import (
	"encoding/json"
	"testing"

	"github.com/google/tink/go/subtle/random"
	"github.com/stretchr/testify/require"

	"github.com/trustbloc/agility-go/core/registry"
	"github.com/trustbloc/agility-go/primitive"
	"github.com/trustbloc/agility-go/primitive/signature"
)

func TestRegister(t *testing.T) {
	require.NoError(t, signature.Register())

	// Registering the standard key types twice must be a no-op.
	require.NoError(t, signature.Register())

	for _, typeURL := range []string{
		signature.ED25519SignerTypeURL,
		signature.ED25519VerifierTypeURL,
	} {
		km, err := registry.GetKeyManager(typeURL)
		require.NoError(t, err)
		require.Equal(t, typeURL, km.TypeURL())
	}
}

func TestED25519KeyManagersRoundTrip(t *testing.T) {
	require.NoError(t, signature.Register())

	serializedKey, err := registry.NewKey(signature.ED25519SignerTypeURL)
	require.NoError(t, err)

	key := new(signature.ED25519PrivateKey)
	require.NoError(t, json.Unmarshal(serializedKey, key))
	require.Len(t, key.KeyValue, 32)
	require.Len(t, key.PublicKey.KeyValue, 32)

	p, err := registry.Primitive(signature.ED25519SignerTypeURL, serializedKey)
	require.NoError(t, err)

	signer, ok := p.(primitive.Signer)
	require.True(t, ok)

	// The embedded public key half feeds the verifier key manager directly.
	serializedPublicKey, err := json.Marshal(key.PublicKey)
	require.NoError(t, err)

	p, err = registry.Primitive(signature.ED25519VerifierTypeURL, serializedPublicKey)
	require.NoError(t, err)

	verifier, ok := p.(primitive.Verifier)
	require.True(t, ok)

	data := []byte("signed payload")

	sig, err := signer.Sign(data)
	require.NoError(t, err)
	require.NoError(t, verifier.Verify(sig, data))
	require.Error(t, verifier.Verify(sig, []byte("other payload")))
}

func TestED25519VerifierKeyManagerNewKeyUnsupported(t *testing.T) {
	require.NoError(t, signature.Register())

	_, err := registry.NewKey(signature.ED25519VerifierTypeURL)
	require.EqualError(t, err, "ed25519_verifier_key_manager: NewKey not supported")
}

func TestED25519KeyManagersInvalidKeys(t *testing.T) {
	require.NoError(t, signature.Register())

	t.Run("signer", func(t *testing.T) {
		for _, serializedKey := range [][]byte{
			nil,
			[]byte("not a key"),
			mustMarshalPrivateKey(t, &signature.ED25519PrivateKey{KeyValue: random.GetRandomBytes(16)}),
			mustMarshalPrivateKey(t, &signature.ED25519PrivateKey{Version: 1, KeyValue: random.GetRandomBytes(32)}),
		} {
			_, err := registry.Primitive(signature.ED25519SignerTypeURL, serializedKey)
			require.ErrorIs(t, err, registry.ErrInvalidKey)
		}
	})

	t.Run("verifier", func(t *testing.T) {
		serializedKey, err := json.Marshal(&signature.ED25519PublicKey{KeyValue: random.GetRandomBytes(16)})
		require.NoError(t, err)

		_, err = registry.Primitive(signature.ED25519VerifierTypeURL, serializedKey)
		require.ErrorIs(t, err, registry.ErrInvalidKey)
	})
}

func mustMarshalPrivateKey(t *testing.T, key *signature.ED25519PrivateKey) []byte {
	t.Helper()

	serializedKey, err := json.Marshal(key)
	require.NoError(t, err)

	return serializedKey
}
