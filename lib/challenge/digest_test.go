// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package challenge

import (
	"encoding/hex"
	"path/filepath"
	"testing"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/flagkit/lib/testutil"
)

func TestDigest(t *testing.T) {
	content := testutil.Pattern(3*ChunkSize + 100)
	path := testutil.WriteFile(t, t.TempDir(), "flag.txt", content)

	got, err := Digest(RevealOptions{Path: path})
	if err != nil {
		t.Fatalf("Digest() error: %v", err)
	}

	sum := blake3.Sum256(content)
	if want := hex.EncodeToString(sum[:]); got != want {
		t.Errorf("Digest() = %s, want %s", got, want)
	}
}

func TestDigest_SealedMatchesPlaintext(t *testing.T) {
	directory := t.TempDir()
	content := []byte("CTF{same bytes}\n")
	plainPath := testutil.WriteFile(t, directory, "flag.txt", content)
	sealedPath, _, identity := testutil.SealFlag(t, directory, "flag.txt.age", content)

	plain, err := Digest(RevealOptions{Path: plainPath})
	if err != nil {
		t.Fatalf("Digest(plain) error: %v", err)
	}
	sealed, err := Digest(RevealOptions{Path: sealedPath, Identity: identity})
	if err != nil {
		t.Fatalf("Digest(sealed) error: %v", err)
	}
	if plain != sealed {
		t.Errorf("digest of sealed flag %s differs from plaintext %s", sealed, plain)
	}
}

func TestDigest_Missing(t *testing.T) {
	if _, err := Digest(RevealOptions{Path: filepath.Join(t.TempDir(), "flag.txt")}); err == nil {
		t.Fatal("Digest() of a missing flag should fail")
	}
}
