/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package registry maps key type URLs to key managers. A process typically
// uses the package-level default registry, populated by the Register
// functions of the primitive packages before any primitive is requested.
//
// Key types registered with new-key generation disallowed stay usable for
// existing key material but can no longer produce new keys, which retires
// weak algorithms without breaking decryption of legacy data.
package registry

import (
	"fmt"
	"reflect"
	"sync"
)

type entry struct {
	km            KeyManager
	newKeyAllowed bool
}

// Registry holds at most one key manager per key type URL. All methods are
// safe for concurrent use; registration is atomic with respect to lookups.
type Registry struct {
	mu       sync.RWMutex
	managers map[string]*entry
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{managers: map[string]*entry{}}
}

// RegistrationOption configures a key manager registration.
type RegistrationOption func(*entry)

// WithNewKeyDisallowed registers a key type for use with existing keys only.
// NewKey requests for the key type fail with ErrNewKeyDisallowed.
func WithNewKeyDisallowed() RegistrationOption {
	return func(e *entry) {
		e.newKeyAllowed = false
	}
}

// RegisterKeyManager registers km under its type URL. New-key generation is
// allowed unless WithNewKeyDisallowed is given.
//
// Re-registering a type URL succeeds silently only if the incoming manager is
// of the same concrete type and the registration is not more permissive than
// the existing one; any other re-registration fails with
// ErrKeyManagerConflict. Register functions of the primitive packages rely on
// this to stay idempotent.
func (r *Registry) RegisterKeyManager(km KeyManager, opts ...RegistrationOption) error {
	if km == nil {
		return fmt.Errorf("registry: key manager is nil")
	}

	typeURL := km.TypeURL()
	if typeURL == "" {
		return fmt.Errorf("registry: key manager has empty type URL")
	}

	e := &entry{km: km, newKeyAllowed: true}
	for _, opt := range opts {
		opt(e)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, found := r.managers[typeURL]
	if !found {
		r.managers[typeURL] = e
		return nil
	}

	if reflect.TypeOf(existing.km) != reflect.TypeOf(km) {
		return fmt.Errorf("%w: type URL %s already registered with a different key manager",
			ErrKeyManagerConflict, typeURL)
	}

	if !existing.newKeyAllowed && e.newKeyAllowed {
		return fmt.Errorf("%w: type URL %s is registered with new key generation disallowed",
			ErrKeyManagerConflict, typeURL)
	}

	return nil
}

// GetKeyManager returns the key manager registered for typeURL.
func (r *Registry) GetKeyManager(typeURL string) (KeyManager, error) {
	e, err := r.entryFor(typeURL)
	if err != nil {
		return nil, err
	}

	return e.km, nil
}

// Primitive constructs a primitive instance from serializedKey using the key
// manager registered for typeURL. Key validation failures of the manager are
// propagated unchanged.
func (r *Registry) Primitive(typeURL string, serializedKey []byte) (interface{}, error) {
	e, err := r.entryFor(typeURL)
	if err != nil {
		return nil, err
	}

	return e.km.Primitive(serializedKey)
}

// NewKey generates fresh serialized key material for typeURL. It fails with
// ErrNewKeyDisallowed for key types registered as decrypt-only.
func (r *Registry) NewKey(typeURL string) ([]byte, error) {
	e, err := r.entryFor(typeURL)
	if err != nil {
		return nil, err
	}

	if !e.newKeyAllowed {
		return nil, fmt.Errorf("%w: %s", ErrNewKeyDisallowed, typeURL)
	}

	return e.km.NewKey()
}

func (r *Registry) entryFor(typeURL string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, found := r.managers[typeURL]
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrKeyTypeNotRegistered, typeURL)
	}

	return e, nil
}

// defaultRegistry backs the package-level functions below. It is shared by
// the whole process and lives until process exit.
var defaultRegistry = New() //nolint:gochecknoglobals

// Default returns the process-wide registry used by the package-level
// functions.
func Default() *Registry {
	return defaultRegistry
}

// RegisterKeyManager registers km in the default registry.
func RegisterKeyManager(km KeyManager, opts ...RegistrationOption) error {
	return defaultRegistry.RegisterKeyManager(km, opts...)
}

// GetKeyManager returns the key manager registered for typeURL in the default
// registry.
func GetKeyManager(typeURL string) (KeyManager, error) {
	return defaultRegistry.GetKeyManager(typeURL)
}

// Primitive constructs a primitive from serializedKey using the default
// registry.
func Primitive(typeURL string, serializedKey []byte) (interface{}, error) {
	return defaultRegistry.Primitive(typeURL, serializedKey)
}

// NewKey generates fresh serialized key material for typeURL using the
// default registry.
func NewKey(typeURL string) ([]byte, error) {
	return defaultRegistry.NewKey(typeURL)
}
