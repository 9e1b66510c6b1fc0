// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"bytes"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	originalCommit, originalDirty, originalTime := GitCommit, GitDirty, BuildTime
	t.Cleanup(func() {
		GitCommit, GitDirty, BuildTime = originalCommit, originalDirty, originalTime
	})

	GitCommit, GitDirty, BuildTime = "abc1234", "false", "2026-02-10T00:00:00Z"
	if got, want := Info(), Version+" (abc1234, 2026-02-10T00:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}

	GitDirty = "true"
	if got := Info(); !strings.Contains(got, "abc1234-dirty") {
		t.Errorf("Info() = %q, want dirty marker", got)
	}
}

func TestPrint(t *testing.T) {
	var output bytes.Buffer
	Print(&output, "flagkit")

	if got, want := output.String(), "flagkit "+Info()+"\n"; got != want {
		t.Errorf("Print() = %q, want %q", got, want)
	}
}
