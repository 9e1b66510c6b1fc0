// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package challenge

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Digest returns the hex BLAKE3-256 digest of the decoded flag, the
// same bytes [Reveal] would print. Unlike Reveal, failures are
// returned: a grader checking a deployment needs to know why.
func Digest(options RevealOptions) (string, error) {
	artifact, err := openArtifact(options)
	if err != nil {
		return "", fmt.Errorf("opening flag: %w", err)
	}
	defer artifact.Close()

	hasher := blake3.New()
	for chunk, err := range Chunks(artifact, ChunkSize) {
		if err != nil {
			return "", fmt.Errorf("reading flag %s: %w", options.path(), err)
		}
		hasher.Write(chunk)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
