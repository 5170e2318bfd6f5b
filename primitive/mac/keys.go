/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package mac

// HMACKey is the serialized key material format of HMAC keys. Byte fields are
// base64-encoded by encoding/json.
type HMACKey struct {
	Version  int    `json:"version"`
	Hash     string `json:"hash"`
	TagSize  int    `json:"tagSize"`
	KeyValue []byte `json:"keyValue"`
}
