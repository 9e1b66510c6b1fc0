// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package challenge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/bureau-foundation/flagkit/lib/sealed"
)

// Encoding identifies the compression applied to a flag artifact.
type Encoding string

const (
	// EncodingAuto picks by file extension after stripping a trailing
	// ".age": ".zst" is zstd, ".lz4" is lz4, anything else is none.
	EncodingAuto Encoding = "auto"

	// EncodingNone streams the bytes as stored.
	EncodingNone Encoding = "none"

	// EncodingZstd is a zstd frame stream (zstd CLI compatible).
	EncodingZstd Encoding = "zstd"

	// EncodingLZ4 is an LZ4 frame stream (lz4 CLI compatible).
	EncodingLZ4 Encoding = "lz4"
)

// ParseEncoding parses an encoding name. The empty string is
// EncodingNone.
func ParseEncoding(name string) (Encoding, error) {
	switch Encoding(name) {
	case "", EncodingNone:
		return EncodingNone, nil
	case EncodingAuto, EncodingZstd, EncodingLZ4:
		return Encoding(name), nil
	default:
		return "", fmt.Errorf("unknown flag encoding %q (want auto, none, zstd or lz4)", name)
	}
}

// resolve replaces EncodingAuto with the encoding implied by path and
// the empty encoding with EncodingNone.
func (e Encoding) resolve(path string) Encoding {
	switch e {
	case "":
		return EncodingNone
	case EncodingAuto:
		return encodingForPath(path)
	default:
		return e
	}
}

// encodingForPath maps ".zst" to zstd and ".lz4" to lz4, ignoring a
// trailing ".age".
func encodingForPath(path string) Encoding {
	switch filepath.Ext(strings.TrimSuffix(path, ".age")) {
	case ".zst":
		return EncodingZstd
	case ".lz4":
		return EncodingLZ4
	default:
		return EncodingNone
	}
}

// artifact is an opened flag: the decoded byte stream plus everything
// that has to be released when the caller is done with it.
type artifact struct {
	io.Reader
	closers []func() error
}

// Close releases the decoding layers, innermost first.
func (a *artifact) Close() error {
	var errs []error
	for index := len(a.closers) - 1; index >= 0; index-- {
		if err := a.closers[index](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// openArtifact opens the flag and stacks the decoding layers:
// file, then age (if an identity is set), then decompression. Any
// failure releases what was already opened.
func openArtifact(options RevealOptions) (*artifact, error) {
	path := options.path()

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	opened := &artifact{Reader: file, closers: []func() error{file.Close}}

	if options.Identity != nil {
		plaintext, err := sealed.Open(file, options.Identity)
		if err != nil {
			opened.Close()
			return nil, fmt.Errorf("unsealing %s: %w", path, err)
		}
		opened.Reader = plaintext
	}

	switch options.Encoding.resolve(path) {
	case EncodingNone:
	case EncodingZstd:
		decoder, err := zstd.NewReader(opened.Reader, zstd.WithDecoderConcurrency(1))
		if err != nil {
			opened.Close()
			return nil, fmt.Errorf("opening zstd stream %s: %w", path, err)
		}
		opened.Reader = decoder
		opened.closers = append(opened.closers, func() error {
			decoder.Close()
			return nil
		})
	case EncodingLZ4:
		opened.Reader = lz4.NewReader(opened.Reader)
	default:
		opened.Close()
		return nil, fmt.Errorf("unknown flag encoding %q", options.Encoding)
	}

	return opened, nil
}
