// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret provides locked, off-heap memory for the two kinds of
// sensitive bytes flagkit handles: flag content while it is streamed,
// and age identities used to unseal encrypted flags.
//
// [Buffer] allocates memory via mmap(MAP_ANONYMOUS), locks it into RAM
// with mlock so it is never swapped, and marks it MADV_DONTDUMP (where
// the kernel supports it) so a crashing exercise binary does not leave
// the flag in a core file. On
// Close the memory is zeroed, unlocked and unmapped. The garbage
// collector never sees the region, so it cannot leave stray copies.
//
// Constructors:
//
//   - [New] -- a zero-filled buffer of a given size
//   - [NewFromBytes] -- copies into protected memory, zeros the source
//   - [ReadFromPath] -- loads a file (or stdin for "-")
//
// After Close, any access panics. Close is idempotent.
//
// Depends on golang.org/x/sys/unix only.
package secret
