// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package challenge

import (
	"errors"
	"io"
	"iter"

	"github.com/bureau-foundation/flagkit/lib/secret"
)

// Chunks returns the contents of reader as a sequence of chunks of
// size bytes; only the last chunk may be shorter. Empty chunks are
// never yielded. The sequence ends at EOF, or after yielding a single
// non-nil error. It consumes reader, so it can be ranged over once.
//
// The yielded slice is reused: it is valid only until the loop body
// returns, and it is zeroed when the sequence ends. The backing memory
// is a locked secret.Buffer when one can be allocated.
//
// A size <= 0 means ChunkSize.
func Chunks(reader io.Reader, size int) iter.Seq2[[]byte, error] {
	if size <= 0 {
		size = ChunkSize
	}
	return func(yield func([]byte, error) bool) {
		buffer, release := chunkBuffer(size)
		defer release()

		for {
			n, err := io.ReadFull(reader, buffer)
			if n > 0 && !yield(buffer[:n], nil) {
				return
			}
			switch {
			case err == nil:
				continue
			case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
				return
			default:
				yield(nil, err)
				return
			}
		}
	}
}

// chunkBuffer allocates the read buffer. RLIMIT_MEMLOCK can be tiny
// inside exercise containers, so a failed mlock falls back to heap
// memory rather than refusing to reveal.
func chunkBuffer(size int) ([]byte, func()) {
	locked, err := secret.New(size)
	if err != nil {
		heap := make([]byte, size)
		return heap, func() { secret.Zero(heap) }
	}
	return locked.Bytes(), func() { locked.Close() }
}
