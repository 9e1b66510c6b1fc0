// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package sealed provides age encryption for flag artifacts. A sealed
// flag is shipped to the exercise host as ciphertext and can only be
// revealed by a binary that holds the matching identity.
//
// Unlike the credential-bundle use of age elsewhere, flags are
// streamed: [Seal] encrypts a reader into a writer and [Open] returns
// a plaintext reader over a ciphertext reader, so a flag never has to
// be materialized in full on the heap.
//
// Key exports:
//
//   - [GenerateKeypair] -- new x25519 keypair, private half in a secret.Buffer
//   - [WriteIdentity] -- writes an age-keygen compatible identity file
//   - [Seal] / [Open] -- streaming encrypt / decrypt
//   - [ParsePublicKey] -- recipient validation
//
// Depends on lib/secret for identity storage.
package sealed
