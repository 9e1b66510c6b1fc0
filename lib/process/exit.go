// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Exit statuses used by flagkit binaries.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError signals a non-zero exit status without an extra error
// message. The code that returns it has already written everything
// the user should see.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit status.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// UsageError reports invalid command-line input. It exits with
// [ExitUsage] and its message is printed.
type UsageError struct {
	Err error
}

// Usagef formats a UsageError. The %w verb is supported.
func Usagef(format string, args ...any) *UsageError {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode returns [ExitUsage].
func (e *UsageError) ExitCode() int { return ExitUsage }

// exitCoder is implemented by errors that choose their own exit status.
type exitCoder interface {
	ExitCode() int
}

// Code returns the exit status err should produce: ExitSuccess for
// nil, the error's own ExitCode when it has one anywhere in its
// chain, and ExitFailure otherwise.
func Code(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coder exitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitFailure
}

// Report writes "error: err" to output unless err is nil or an
// [ExitError], whose output was already produced. It returns the
// status the process should exit with.
func Report(output io.Writer, err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(output, "error: %v\n", err)
	}
	return Code(err)
}

// Exit ends the process with the outcome of a binary's run function.
// Call it from main() and nowhere else.
func Exit(err error) {
	os.Exit(Report(os.Stderr, err))
}
