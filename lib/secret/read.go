// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// ReadFromPath reads a secret file, or stdin when path is "-", into a
// Buffer the caller must Close. Leading and trailing whitespace is
// trimmed; interior lines (such as the comment header of an age
// identity file) are kept. An empty source is an error.
func ReadFromPath(path string, stdin io.Reader) (*Buffer, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(stdin)
		if err != nil {
			Zero(data)
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("secret is empty")
	}

	buffer, err := NewFromBytes(trimmed)
	// NewFromBytes zeroed trimmed; the surrounding whitespace is left.
	Zero(data)
	if err != nil {
		return nil, err
	}
	return buffer, nil
}
