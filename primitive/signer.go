/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package primitive

// Signer computes digital signatures over data using a private key.
type Signer interface {
	// Sign computes a signature for data.
	Sign(data []byte) ([]byte, error)
}

// Verifier verifies digital signatures using a public key.
type Verifier interface {
	// Verify returns nil if signature is a valid signature for data.
	Verify(signature, data []byte) error
}
