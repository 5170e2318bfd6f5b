/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package registry_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trustbloc/agility-go/core/registry"
)

const testTypeURL = "type.trustbloc.dev/trustbloc.agility.test.FakeKey"

// fakeKeyManager is a KeyManager over string "primitives" for registry tests.
type fakeKeyManager struct {
	typeURL string
}

func (km *fakeKeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	if len(serializedKey) == 0 {
		return nil, fmt.Errorf("fake_key_manager: %w", registry.ErrInvalidKey)
	}

	return "primitive for " + string(serializedKey), nil
}

func (km *fakeKeyManager) NewKey() ([]byte, error) {
	return []byte("fresh key"), nil
}

func (km *fakeKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == km.typeURL
}

func (km *fakeKeyManager) TypeURL() string {
	return km.typeURL
}

// otherKeyManager is a distinct concrete type for conflict tests.
type otherKeyManager struct {
	fakeKeyManager
}

func TestRegisterAndResolve(t *testing.T) {
	r := registry.New()

	err := r.RegisterKeyManager(&fakeKeyManager{typeURL: testTypeURL})
	require.NoError(t, err)

	km, err := r.GetKeyManager(testTypeURL)
	require.NoError(t, err)
	require.Equal(t, testTypeURL, km.TypeURL())
	require.True(t, km.DoesSupport(testTypeURL))
	require.False(t, km.DoesSupport("type.trustbloc.dev/other"))

	p, err := r.Primitive(testTypeURL, []byte("key bytes"))
	require.NoError(t, err)
	require.Equal(t, "primitive for key bytes", p)

	serializedKey, err := r.NewKey(testTypeURL)
	require.NoError(t, err)
	require.Equal(t, []byte("fresh key"), serializedKey)
}

func TestUnknownKeyType(t *testing.T) {
	r := registry.New()

	_, err := r.GetKeyManager(testTypeURL)
	require.ErrorIs(t, err, registry.ErrKeyTypeNotRegistered)
	require.Contains(t, err.Error(), testTypeURL)

	_, err = r.Primitive(testTypeURL, []byte("key bytes"))
	require.ErrorIs(t, err, registry.ErrKeyTypeNotRegistered)

	_, err = r.NewKey(testTypeURL)
	require.ErrorIs(t, err, registry.ErrKeyTypeNotRegistered)
}

func TestRegisterValidation(t *testing.T) {
	r := registry.New()

	err := r.RegisterKeyManager(nil)
	require.EqualError(t, err, "registry: key manager is nil")

	err = r.RegisterKeyManager(&fakeKeyManager{})
	require.EqualError(t, err, "registry: key manager has empty type URL")
}

func TestDuplicateRegistration(t *testing.T) {
	r := registry.New()

	err := r.RegisterKeyManager(&fakeKeyManager{typeURL: testTypeURL})
	require.NoError(t, err)

	t.Run("same manager type and permissiveness is idempotent", func(t *testing.T) {
		err := r.RegisterKeyManager(&fakeKeyManager{typeURL: testTypeURL})
		require.NoError(t, err)
	})

	t.Run("tightening new key policy is accepted silently", func(t *testing.T) {
		err := r.RegisterKeyManager(&fakeKeyManager{typeURL: testTypeURL}, registry.WithNewKeyDisallowed())
		require.NoError(t, err)

		// The original, more permissive registration stays in effect.
		_, err = r.NewKey(testTypeURL)
		require.NoError(t, err)
	})

	t.Run("different manager type is rejected", func(t *testing.T) {
		err := r.RegisterKeyManager(&otherKeyManager{fakeKeyManager{typeURL: testTypeURL}})
		require.ErrorIs(t, err, registry.ErrKeyManagerConflict)
		require.Contains(t, err.Error(), testTypeURL)
	})
}

func TestNewKeyDisallowed(t *testing.T) {
	r := registry.New()

	err := r.RegisterKeyManager(&fakeKeyManager{typeURL: testTypeURL}, registry.WithNewKeyDisallowed())
	require.NoError(t, err)

	_, err = r.NewKey(testTypeURL)
	require.ErrorIs(t, err, registry.ErrNewKeyDisallowed)
	require.Contains(t, err.Error(), testTypeURL)

	// Existing key material stays usable.
	p, err := r.Primitive(testTypeURL, []byte("legacy key"))
	require.NoError(t, err)
	require.Equal(t, "primitive for legacy key", p)

	t.Run("re-enabling new key generation is rejected", func(t *testing.T) {
		err := r.RegisterKeyManager(&fakeKeyManager{typeURL: testTypeURL})
		require.ErrorIs(t, err, registry.ErrKeyManagerConflict)
	})

	t.Run("re-registration with same restriction is idempotent", func(t *testing.T) {
		err := r.RegisterKeyManager(&fakeKeyManager{typeURL: testTypeURL}, registry.WithNewKeyDisallowed())
		require.NoError(t, err)
	})
}

func TestConcurrentRegistrationAndLookup(t *testing.T) {
	r := registry.New()

	const workers = 32

	errs := make(chan error, workers*2)

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		i := i

		wg.Add(2)

		go func() {
			defer wg.Done()

			typeURL := fmt.Sprintf("%s.%d", testTypeURL, i%4)
			errs <- r.RegisterKeyManager(&fakeKeyManager{typeURL: typeURL})
		}()

		go func() {
			defer wg.Done()

			typeURL := fmt.Sprintf("%s.%d", testTypeURL, i%4)

			km, err := r.GetKeyManager(typeURL)

			switch {
			case err == nil && km.TypeURL() != typeURL:
				// A reader must see either no entry or a fully installed one.
				errs <- fmt.Errorf("lookup of %s returned manager for %s", typeURL, km.TypeURL())
			case err != nil && !errors.Is(err, registry.ErrKeyTypeNotRegistered):
				errs <- err
			default:
				errs <- nil
			}
		}()
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestDefaultRegistry(t *testing.T) {
	typeURL := testTypeURL + ".default"

	err := registry.RegisterKeyManager(&fakeKeyManager{typeURL: typeURL})
	require.NoError(t, err)

	km, err := registry.GetKeyManager(typeURL)
	require.NoError(t, err)
	require.Equal(t, typeURL, km.TypeURL())

	p, err := registry.Primitive(typeURL, []byte("key bytes"))
	require.NoError(t, err)
	require.Equal(t, "primitive for key bytes", p)

	serializedKey, err := registry.NewKey(typeURL)
	require.NoError(t, err)
	require.Equal(t, []byte("fresh key"), serializedKey)

	require.Same(t, registry.Default(), registry.Default())
}
