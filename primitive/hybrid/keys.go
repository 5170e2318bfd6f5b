/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package hybrid

// X25519AEADPublicKey is the serialized key material format of X25519 hybrid
// public keys. DEMTypeURL selects the AEAD key type used as the
// data-encapsulation mechanism.
type X25519AEADPublicKey struct {
	Version    int    `json:"version"`
	DEMTypeURL string `json:"demTypeUrl"`
	KeyValue   []byte `json:"keyValue"`
}

// X25519AEADPrivateKey is the serialized key material format of X25519 hybrid
// private keys.
type X25519AEADPrivateKey struct {
	Version   int                  `json:"version"`
	PublicKey *X25519AEADPublicKey `json:"publicKey"`
	KeyValue  []byte               `json:"keyValue"`
}
