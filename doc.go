/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package agility is a cryptographic-agility layer: applications obtain a
// named capability (AEAD, MAC, hybrid encryption, digital signature) through
// a key-type registry instead of hard-coding a concrete algorithm.
//
// Packages for end developer usage
//
// core/registry: The key-type registry. Maps a key type URL to the key
// manager that validates serialized key material and constructs primitive
// instances from it, with downgrade control for deprecated algorithms.
//
// primitive: Capability interfaces (AEAD, MAC, Signer, Verifier,
// HybridEncrypt, HybridDecrypt) implemented by all concrete algorithms.
//
// primitive/aead, primitive/mac, primitive/hybrid, primitive/signature:
// Standard algorithm implementations and their key managers. Each package
// exposes a Register function that installs its standard key types; Register
// functions invoke the Register of capabilities they build on, so calling
// hybrid.Register() is enough to use hybrid encryption.
//
// Basic workflow
//
//	1) Call the Register function of the capability you need.
//	2) Generate or load serialized key material for a key type URL.
//	3) Call registry.Primitive(typeURL, serializedKey) and assert the
//	   returned primitive to the capability interface.
//	4) Use the primitive; instances are safe for concurrent use.
package agility
