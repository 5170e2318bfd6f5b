/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package subtle

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/trustbloc/agility-go/primitive"
)

// aadSizeTagLength is the length in bytes of the big-endian encoding of the
// associated data bit-length appended to the MAC input.
const aadSizeTagLength = 8

// minEtATagSize is the smallest accepted MAC tag size for the composite.
const minEtATagSize = 10

var (
	// ErrCiphertextTooShort is returned by Decrypt when the ciphertext is
	// shorter than the MAC tag.
	ErrCiphertextTooShort = errors.New("encrypt_then_authenticate: ciphertext too short")

	// ErrAuthenticationFailed is returned by Decrypt on MAC verification
	// failure. Tampering and accidental corruption are deliberately not
	// distinguished.
	ErrAuthenticationFailed = errors.New("encrypt_then_authenticate: authentication failed")
)

// EncryptThenAuthenticate is an implementation of the AEAD interface
// combining an IND-CPA cipher with a MAC. The MAC is computed over
// (aad || ciphertext || aad length in bits), so shifting bytes between the
// associated data and the ciphertext of a valid message cannot produce a
// second valid message (Horton Principle). The construction follows
// https://tools.ietf.org/html/draft-mcgrew-aead-aes-cbc-hmac-sha2-05.
type EncryptThenAuthenticate struct {
	indCPACipher IndCPACipher
	mac          primitive.MAC
	tagSize      int
}

var _ primitive.AEAD = (*EncryptThenAuthenticate)(nil)

// NewEncryptThenAuthenticate returns an AEAD combining cipher and mac.
// tagSize is the fixed size in bytes of tags produced by mac.
func NewEncryptThenAuthenticate(cipher IndCPACipher, mac primitive.MAC, tagSize int) (*EncryptThenAuthenticate, error) {
	if cipher == nil {
		return nil, errors.New("encrypt_then_authenticate: IND-CPA cipher is nil")
	}

	if mac == nil {
		return nil, errors.New("encrypt_then_authenticate: MAC is nil")
	}

	if tagSize < minEtATagSize {
		return nil, fmt.Errorf("encrypt_then_authenticate: tag size %d is too small; want at least %d",
			tagSize, minEtATagSize)
	}

	return &EncryptThenAuthenticate{
		indCPACipher: cipher,
		mac:          mac,
		tagSize:      tagSize,
	}, nil
}

// Encrypt encrypts plaintext with associatedData as associated authenticated
// data. The IND-CPA cipher generates and embeds its own IV; the MAC is
// computed over (associatedData || ciphertext || associatedData length in
// bits as a 64-bit big-endian integer). The output is ciphertext || tag.
func (e *EncryptThenAuthenticate) Encrypt(plaintext, associatedData []byte) ([]byte, error) {
	ciphertext, err := e.indCPACipher.Encrypt(plaintext)
	if err != nil {
		return nil, fmt.Errorf("encrypt_then_authenticate: %w", err)
	}

	if len(ciphertext) > maxInt-e.tagSize {
		return nil, errors.New("encrypt_then_authenticate: ciphertext too long")
	}

	tag, err := e.mac.ComputeMAC(macInput(associatedData, ciphertext))
	if err != nil {
		return nil, fmt.Errorf("encrypt_then_authenticate: %w", err)
	}

	if len(tag) != e.tagSize {
		return nil, errors.New("encrypt_then_authenticate: tag size mismatch")
	}

	out := make([]byte, 0, len(ciphertext)+e.tagSize)
	out = append(out, ciphertext...)
	out = append(out, tag...)

	return out, nil
}

// Decrypt decrypts ciphertext with associatedData as associated authenticated
// data. The MAC is verified before any decryption is attempted; on
// verification failure no plaintext bytes are returned.
func (e *EncryptThenAuthenticate) Decrypt(ciphertext, associatedData []byte) ([]byte, error) {
	if len(ciphertext) < e.tagSize {
		return nil, ErrCiphertextTooShort
	}

	payload := ciphertext[:len(ciphertext)-e.tagSize]
	tag := ciphertext[len(ciphertext)-e.tagSize:]

	if err := e.mac.VerifyMAC(tag, macInput(associatedData, payload)); err != nil {
		return nil, ErrAuthenticationFailed
	}

	plaintext, err := e.indCPACipher.Decrypt(payload)
	if err != nil {
		return nil, fmt.Errorf("encrypt_then_authenticate: %w", err)
	}

	return plaintext, nil
}

// macInput builds aad || ciphertext || aad length in bits (64-bit
// big-endian). This exact byte layout is a compatibility contract.
func macInput(associatedData, ciphertext []byte) []byte {
	toAuth := make([]byte, 0, len(associatedData)+len(ciphertext)+aadSizeTagLength)
	toAuth = append(toAuth, associatedData...)
	toAuth = append(toAuth, ciphertext...)

	var aadSizeInBits [aadSizeTagLength]byte

	binary.BigEndian.PutUint64(aadSizeInBits[:], uint64(len(associatedData))*8)

	return append(toAuth, aadSizeInBits[:]...)
}
