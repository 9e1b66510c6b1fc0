// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bureau-foundation/flagkit/lib/sealed"
	"github.com/bureau-foundation/flagkit/lib/secret"
)

// WriteFile writes data to directory/name with mode 0600, the mode
// exercise setups give the flag, and returns the full path.
func WriteFile(t *testing.T, directory, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(directory, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// Pattern returns length bytes cycling through all 256 byte values,
// starting at zero.
func Pattern(length int) []byte {
	data := make([]byte, length)
	for index := range data {
		data[index] = byte(index)
	}
	return data
}

// SealFlag seals plaintext to a fresh keypair, writes the ciphertext
// to directory/name and the identity file to directory/name.key. It
// returns the ciphertext path, the identity file path and the identity
// loaded into a secret.Buffer (closed at test cleanup).
func SealFlag(t *testing.T, directory, name string, plaintext []byte) (flagPath, identityPath string, identity *secret.Buffer) {
	t.Helper()

	keypair, err := sealed.GenerateKeypair()
	if err != nil {
		t.Fatalf("generating keypair: %v", err)
	}
	defer keypair.Close()

	var ciphertext bytes.Buffer
	if err := sealed.Seal(&ciphertext, bytes.NewReader(plaintext), []string{keypair.PublicKey}); err != nil {
		t.Fatalf("sealing flag: %v", err)
	}
	flagPath = WriteFile(t, directory, name, ciphertext.Bytes())

	var identityFile bytes.Buffer
	if err := sealed.WriteIdentity(&identityFile, keypair, time.Now()); err != nil {
		t.Fatalf("writing identity: %v", err)
	}
	identityPath = WriteFile(t, directory, name+".key", identityFile.Bytes())

	identity, err = secret.ReadFromPath(identityPath, nil)
	if err != nil {
		t.Fatalf("loading identity: %v", err)
	}
	t.Cleanup(func() { identity.Close() })

	return flagPath, identityPath, identity
}
