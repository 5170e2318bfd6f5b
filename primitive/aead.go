/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package primitive defines the capability interfaces implemented by all
// concrete algorithms in this module. A primitive instance is bound to one
// key at construction time, holds no mutable state between calls and is safe
// for concurrent use.
package primitive

// AEAD is the interface for authenticated encryption with associated data.
// Implementations of this interface are secure against adaptive chosen
// ciphertext attacks. Encryption with associated data ensures authenticity
// and integrity of that data, but not its secrecy.
type AEAD interface {
	// Encrypt encrypts plaintext with associatedData as associated
	// authenticated data. The resulting ciphertext allows for checking
	// authenticity and integrity of associatedData, but does not guarantee
	// its secrecy.
	Encrypt(plaintext, associatedData []byte) ([]byte, error)

	// Decrypt decrypts ciphertext with associatedData as associated
	// authenticated data. The decryption verifies the authenticity and
	// integrity of the associated data, but there are no guarantees with
	// respect to its secrecy.
	Decrypt(ciphertext, associatedData []byte) ([]byte, error)
}
