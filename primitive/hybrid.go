/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package primitive

// HybridEncrypt encrypts to a recipient's public key. contextInfo is bound
// to the ciphertext: decryption succeeds only with the same value.
type HybridEncrypt interface {
	// Encrypt encrypts plaintext, binding contextInfo to the resulting
	// ciphertext.
	Encrypt(plaintext, contextInfo []byte) ([]byte, error)
}

// HybridDecrypt decrypts ciphertexts produced by the matching HybridEncrypt.
type HybridDecrypt interface {
	// Decrypt decrypts ciphertext, verifying the integrity of contextInfo.
	Decrypt(ciphertext, contextInfo []byte) ([]byte, error)
}
