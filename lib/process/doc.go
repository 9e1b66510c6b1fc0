// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides the process-boundary helpers for flagkit
// binaries. Library code never calls os.Exit: it returns an error,
// optionally carrying an exit status via an ExitCode() int method,
// and the binary's main function hands that error to [Exit].
//
//   - [ExitError] -- a status-only outcome whose output has already
//     been written (the abort path uses this)
//   - [UsageError] -- a command-line mistake, reported with status 2
//   - [Code] -- maps an error to the status it should produce
//   - [Report] -- prints an error the way [Exit] does, without exiting
//   - [Exit] -- the only place that ends the process
//
// This package and lib/version are the only non-command packages
// allowed to write to stdout/stderr directly.
package process
