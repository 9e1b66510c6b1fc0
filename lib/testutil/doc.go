// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for flagkit packages.
//
// [WriteFile] places a flag (or identity, or config) file in a test
// directory. [Pattern] produces deterministic binary content that
// covers every byte value, NUL included, for byte-exactness checks.
// [SealFlag] writes an age-sealed flag and returns the identity that
// opens it.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
package testutil
