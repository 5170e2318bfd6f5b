/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package signature

// ED25519PublicKey is the serialized key material format of Ed25519 public
// keys.
type ED25519PublicKey struct {
	Version  int    `json:"version"`
	KeyValue []byte `json:"keyValue"`
}

// ED25519PrivateKey is the serialized key material format of Ed25519 private
// keys. KeyValue holds the 32-byte seed.
type ED25519PrivateKey struct {
	Version   int               `json:"version"`
	PublicKey *ED25519PublicKey `json:"publicKey"`
	KeyValue  []byte            `json:"keyValue"`
}
