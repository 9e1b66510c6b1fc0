// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"testing"

	"golang.org/x/sys/unix"
)

func TestNew(t *testing.T) {
	buffer, err := New(1024)
	if err != nil {
		t.Fatalf("New(1024) failed: %v", err)
	}
	defer buffer.Close()

	if buffer.Len() != 1024 {
		t.Errorf("Len() = %d, want 1024", buffer.Len())
	}

	// mmap hands out zeroed pages.
	for index, value := range buffer.Bytes() {
		if value != 0 {
			t.Fatalf("expected zero at index %d, got %d", index, value)
		}
	}
}

func TestNew_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := New(size); err == nil {
			t.Errorf("New(%d) should fail", size)
		}
	}
}

func TestNew_DontDumpUnsupported(t *testing.T) {
	original := madvise
	t.Cleanup(func() { madvise = original })
	madvise = func([]byte, int) error { return unix.EINVAL }

	buffer, err := New(16)
	if err != nil {
		t.Fatalf("New() with MADV_DONTDUMP unsupported: %v", err)
	}
	defer buffer.Close()

	if buffer.Len() != 16 {
		t.Errorf("Len() = %d, want 16", buffer.Len())
	}
}

func TestNewFromBytes(t *testing.T) {
	source := []byte("AGE-SECRET-KEY-1EXAMPLE")
	original := string(source)

	buffer, err := NewFromBytes(source)
	if err != nil {
		t.Fatalf("NewFromBytes failed: %v", err)
	}
	defer buffer.Close()

	if got := string(buffer.Bytes()); got != original {
		t.Errorf("Bytes() = %q, want %q", got, original)
	}
	for index, value := range source {
		if value != 0 {
			t.Fatalf("source byte %d was not zeroed: got %d", index, value)
		}
	}
}

func TestNewFromBytes_Empty(t *testing.T) {
	if _, err := NewFromBytes(nil); err == nil {
		t.Fatal("expected error for empty source")
	}
}

func TestBuffer_HoldsBinary(t *testing.T) {
	buffer, err := New(8)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer buffer.Close()

	copy(buffer.Bytes(), []byte("a\x00b\x00"))
	if got := string(buffer.Bytes()); got != "a\x00b\x00\x00\x00\x00\x00" {
		t.Errorf("Bytes() = %q", got)
	}
}

func TestBuffer_Close(t *testing.T) {
	buffer, err := New(32)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	copy(buffer.Bytes(), []byte("CTF{should be zeroed}"))

	if err := buffer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if buffer.data != nil {
		t.Error("expected data to be nil after Close")
	}
	if buffer.Len() != 0 {
		t.Errorf("Len() after Close = %d, want 0", buffer.Len())
	}
	if err := buffer.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestBuffer_PanicsAfterClose(t *testing.T) {
	buffer, err := New(16)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	buffer.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on Bytes() after Close")
		}
	}()
	buffer.Bytes()
}

func TestZero(t *testing.T) {
	data := []byte("flag")
	Zero(data)
	for index, value := range data {
		if value != 0 {
			t.Fatalf("byte %d not zeroed: %d", index, value)
		}
	}
}
