// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFromPath_File(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			name:     "plain value",
			content:  "AGE-SECRET-KEY-1ABC",
			expected: "AGE-SECRET-KEY-1ABC",
		},
		{
			name:     "trailing newline",
			content:  "AGE-SECRET-KEY-1ABC\n",
			expected: "AGE-SECRET-KEY-1ABC",
		},
		{
			name:     "identity file with comments",
			content:  "# created: 2026-01-01T00:00:00Z\n# public key: age1xyz\nAGE-SECRET-KEY-1ABC\n",
			expected: "# created: 2026-01-01T00:00:00Z\n# public key: age1xyz\nAGE-SECRET-KEY-1ABC",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(tempDir, test.name)
			if err := os.WriteFile(path, []byte(test.content), 0600); err != nil {
				t.Fatalf("writing test file: %v", err)
			}

			result, err := ReadFromPath(path, nil)
			if err != nil {
				t.Fatalf("ReadFromPath() error: %v", err)
			}
			defer result.Close()
			if string(result.Bytes()) != test.expected {
				t.Errorf("ReadFromPath() = %q, want %q", string(result.Bytes()), test.expected)
			}
		})
	}
}

func TestReadFromPath_Stdin(t *testing.T) {
	stdin := strings.NewReader("# comment\nAGE-SECRET-KEY-1ABC\n")
	result, err := ReadFromPath("-", stdin)
	if err != nil {
		t.Fatalf("ReadFromPath(-) error: %v", err)
	}
	defer result.Close()
	if want := "# comment\nAGE-SECRET-KEY-1ABC"; string(result.Bytes()) != want {
		t.Errorf("ReadFromPath(-) = %q, want %q", string(result.Bytes()), want)
	}
}

func TestReadFromPath_Errors(t *testing.T) {
	tempDir := t.TempDir()
	whitespace := filepath.Join(tempDir, "whitespace")
	if err := os.WriteFile(whitespace, []byte("  \n\t\n"), 0600); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	empty := filepath.Join(tempDir, "empty")
	if err := os.WriteFile(empty, nil, 0600); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	for _, path := range []string{"/nonexistent/identity", whitespace, empty} {
		if _, err := ReadFromPath(path, nil); err == nil {
			t.Errorf("ReadFromPath(%q) should return error", path)
		}
	}

	if _, err := ReadFromPath("-", strings.NewReader("")); err == nil {
		t.Error("ReadFromPath(-) with empty stdin should return error")
	}
}
