/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package aead

import (
	"github.com/trustbloc/agility-go/primitive/mac"
)

// AESCBCKey is the serialized key material format of the AES-CBC half of an
// AES-CBC+HMAC AEAD key.
type AESCBCKey struct {
	Version  int    `json:"version"`
	KeyValue []byte `json:"keyValue"`
}

// AESCBCHMACAEADKey is the serialized key material format of AES-CBC+HMAC
// AEAD keys. The HMAC half reuses the MAC key format; its tag size fixes the
// tag length of the composite ciphertext.
type AESCBCHMACAEADKey struct {
	Version   int          `json:"version"`
	AESCBCKey *AESCBCKey   `json:"aesCbcKey"`
	HMACKey   *mac.HMACKey `json:"hmacKey"`
}

// ChaCha20Poly1305Key is the serialized key material format of
// ChaCha20-Poly1305 keys.
type ChaCha20Poly1305Key struct {
	Version  int    `json:"version"`
	KeyValue []byte `json:"keyValue"`
}

// JoseAESCBCHMACKey is the serialized key material format of legacy JOSE
// AES-CBC+HMAC keys. KeyValue holds the HMAC and AES keys concatenated.
type JoseAESCBCHMACKey struct {
	Version  int    `json:"version"`
	KeyValue []byte `json:"keyValue"`
}
