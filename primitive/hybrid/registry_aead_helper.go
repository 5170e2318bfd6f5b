/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hybrid

import (
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/trustbloc/agility-go/core/registry"
	"github.com/trustbloc/agility-go/primitive"
	"github.com/trustbloc/agility-go/primitive/aead"
	aeadsubtle "github.com/trustbloc/agility-go/primitive/aead/subtle"
	"github.com/trustbloc/agility-go/primitive/hybrid/subtle"
	"github.com/trustbloc/agility-go/primitive/mac"
)

const (
	demCBCHMACTagSize = 16
	demCBCHMACHash    = "SHA256"
)

// registryAEADHelper builds the DEM AEAD of a hybrid primitive by resolving
// the configured AEAD key type through the registry, so hybrid key types
// require their DEM key types to be registered first.
type registryAEADHelper struct {
	demTypeURL string
}

var _ subtle.AEADHelper = (*registryAEADHelper)(nil)

func newRegistryAEADHelper(demTypeURL string) (*registryAEADHelper, error) {
	switch demTypeURL {
	case aead.ChaCha20Poly1305TypeURL, aead.AESCBCHMACAEADTypeURL:
	default:
		return nil, fmt.Errorf("registryAEADHelper: unsupported DEM key type: %s", demTypeURL)
	}

	return &registryAEADHelper{demTypeURL: demTypeURL}, nil
}

// DEMKeySize returns the size in bytes of the per-message key material the
// DEM consumes.
func (h *registryAEADHelper) DEMKeySize() int {
	switch h.demTypeURL {
	case aead.AESCBCHMACAEADTypeURL:
		// HMAC-SHA256 key followed by an AES-256 key.
		return aeadsubtle.AES256Size * 2
	default:
		return chacha20poly1305.KeySize
	}
}

// GetAEAD returns the AEAD primitive built from demKey.
func (h *registryAEADHelper) GetAEAD(demKey []byte) (primitive.AEAD, error) {
	serializedKey, err := h.serializedDEMKey(demKey)
	if err != nil {
		return nil, err
	}

	p, err := registry.Primitive(h.demTypeURL, serializedKey)
	if err != nil {
		return nil, fmt.Errorf("registryAEADHelper: %w", err)
	}

	a, ok := p.(primitive.AEAD)
	if !ok {
		return nil, fmt.Errorf("registryAEADHelper: resolved primitive is not an AEAD")
	}

	return a, nil
}

func (h *registryAEADHelper) serializedDEMKey(demKey []byte) ([]byte, error) {
	if len(demKey) != h.DEMKeySize() {
		return nil, fmt.Errorf("registryAEADHelper: bad DEM key length %d; want %d",
			len(demKey), h.DEMKeySize())
	}

	switch h.demTypeURL {
	case aead.AESCBCHMACAEADTypeURL:
		half := len(demKey) / 2

		return json.Marshal(&aead.AESCBCHMACAEADKey{
			AESCBCKey: &aead.AESCBCKey{KeyValue: demKey[half:]},
			HMACKey: &mac.HMACKey{
				Hash:     demCBCHMACHash,
				TagSize:  demCBCHMACTagSize,
				KeyValue: demKey[:half],
			},
		})
	default:
		return json.Marshal(&aead.ChaCha20Poly1305Key{KeyValue: demKey})
	}
}
