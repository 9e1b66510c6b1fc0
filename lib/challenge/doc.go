// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package challenge implements the two outcomes of a memory-corruption
// exercise: the reward and the failure signal. The vulnerable program
// decides which one to trigger; this package only carries it out.
//
// [Reveal] streams the flag artifact to an output writer, chunk by
// chunk, byte for byte. If the artifact cannot be opened it writes a
// single diagnostic line and returns; that is a normal outcome, not an
// error. [Abort] writes "Try again!" and returns a
// *process.ExitError with status 1. It never ends the process itself:
// only a binary's main function does that, via process.Exit.
//
// A flag may be deployed as plaintext, compressed (zstd or lz4), age
// sealed, or sealed and compressed. [RevealOptions] selects the
// decoding; the default is plaintext at "flag.txt" in the working
// directory, which is what exercise binaries built before sealing
// existed expect.
//
// [Chunks] is the underlying lazy sequence of fixed-size chunks.
// [Digest] hashes the decoded flag with BLAKE3 so graders can check a
// deployment without printing the flag.
package challenge
