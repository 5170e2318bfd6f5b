/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package subtle provides the HMAC implementation of the MAC primitive.
package subtle

import (
	"crypto/hmac"
	"errors"
	"fmt"
	"hash"

	tinksubtle "github.com/google/tink/go/subtle"
)

const (
	// MinTagSize is the smallest accepted HMAC tag size in bytes.
	MinTagSize = 10

	// MinKeySize is the smallest accepted HMAC key size in bytes.
	MinKeySize = 16
)

// ErrInvalidMAC is returned by VerifyMAC when the tag does not match.
var ErrInvalidMAC = errors.New("hmac: invalid MAC")

// maxTagSize maps a hash name to the size of its digest, the largest valid
// HMAC tag for that hash.
var maxTagSize = map[string]int{ //nolint:gochecknoglobals
	"SHA1":   20,
	"SHA256": 32,
	"SHA384": 48,
	"SHA512": 64,
}

// HMAC is an implementation of the MAC interface.
type HMAC struct {
	hashFunc func() hash.Hash
	key      []byte
	tagSize  int
}

// NewHMAC returns an HMAC instance truncating tags to tagSize bytes.
// hashAlg names the hash function, e.g. "SHA256".
func NewHMAC(hashAlg string, key []byte, tagSize int) (*HMAC, error) {
	if err := ValidateHMACParams(hashAlg, len(key), tagSize); err != nil {
		return nil, err
	}

	keyCopy := make([]byte, len(key))
	copy(keyCopy, key)

	return &HMAC{
		hashFunc: tinksubtle.GetHashFunc(hashAlg),
		key:      keyCopy,
		tagSize:  tagSize,
	}, nil
}

// ValidateHMACParams checks that the hash name, key size and tag size form a
// valid HMAC parameter set.
func ValidateHMACParams(hashAlg string, keySize, tagSize int) error {
	digestSize, supported := maxTagSize[hashAlg]
	if !supported || tinksubtle.GetHashFunc(hashAlg) == nil {
		return fmt.Errorf("hmac: unsupported hash %q", hashAlg)
	}

	if keySize < MinKeySize {
		return fmt.Errorf("hmac: key size %d is too small; want at least %d", keySize, MinKeySize)
	}

	if tagSize < MinTagSize {
		return fmt.Errorf("hmac: tag size %d is too small; want at least %d", tagSize, MinTagSize)
	}

	if tagSize > digestSize {
		return fmt.Errorf("hmac: tag size %d is too big for %s; want at most %d", tagSize, hashAlg, digestSize)
	}

	return nil
}

// TagSize returns the size in bytes of tags computed by this instance.
func (h *HMAC) TagSize() int {
	return h.tagSize
}

// ComputeMAC computes a message authentication code for data.
func (h *HMAC) ComputeMAC(data []byte) ([]byte, error) {
	mac := hmac.New(h.hashFunc, h.key)

	if _, err := mac.Write(data); err != nil {
		return nil, fmt.Errorf("hmac: %w", err)
	}

	return mac.Sum(nil)[:h.tagSize], nil
}

// VerifyMAC verifies mac against data. The comparison runs in constant time
// with respect to the tag content.
func (h *HMAC) VerifyMAC(mac, data []byte) error {
	expected, err := h.ComputeMAC(data)
	if err != nil {
		return err
	}

	if !hmac.Equal(expected, mac) {
		return ErrInvalidMAC
	}

	return nil
}
