/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry

import "errors"

var (
	// ErrKeyTypeNotRegistered is returned on lookup of a type URL no key
	// manager was registered for.
	ErrKeyTypeNotRegistered = errors.New("registry: key type not registered")

	// ErrKeyManagerConflict is returned when a type URL is re-registered
	// with a different key manager, or with new-key generation re-enabled
	// after it was registered as disallowed.
	ErrKeyManagerConflict = errors.New("registry: key manager conflict")

	// ErrNewKeyDisallowed is returned by NewKey for key types registered
	// with new-key generation disallowed. Such key types remain usable with
	// existing key material.
	ErrNewKeyDisallowed = errors.New("registry: new key generation disallowed")

	// ErrInvalidKey is wrapped by key managers rejecting serialized key
	// material (malformed, wrong length, wrong parameters).
	ErrInvalidKey = errors.New("registry: invalid key")
)
