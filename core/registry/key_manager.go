/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry

// KeyManager generates new keys and constructs primitive instances from
// serialized key material for one key type. Implementations are stateless
// beyond their type URL and must be safe for concurrent use.
type KeyManager interface {
	// Primitive validates serializedKey and, only on success, constructs a
	// primitive instance from it. The returned primitive is bound to the key
	// and holds no reference to the registry or the key manager.
	Primitive(serializedKey []byte) (interface{}, error)

	// NewKey generates fresh serialized key material with the manager's
	// standard parameters. Managers that cannot generate key material
	// (e.g. public-key managers) return an error.
	NewKey() ([]byte, error)

	// DoesSupport indicates if this key manager supports the given key type.
	DoesSupport(typeURL string) bool

	// TypeURL returns the key type of keys managed by this key manager.
	TypeURL() string
}
