/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package primitive

// MAC computes and verifies message authentication codes, providing symmetric
// message authentication.
type MAC interface {
	// ComputeMAC computes a message authentication code (MAC) for data.
	// The returned tag has a fixed, algorithm-determined length.
	ComputeMAC(data []byte) ([]byte, error)

	// VerifyMAC verifies whether mac is a correct authentication code for
	// data. Implementations must compare in constant time with respect to
	// the tag content.
	VerifyMAC(mac, data []byte) error
}
