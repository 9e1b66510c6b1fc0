// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads flagkit configuration.
//
// Configuration comes from a single file named by the --config flag
// (via [LoadFile]) or the FLAGKIT_CONFIG environment variable (via
// [Load]). YAML is the default format; files ending in .json or .jsonc
// are read as JSON with comments and trailing commas allowed. There is
// no discovery: when neither source names a file, [Default] applies, so
// an exercise binary works with nothing but a flag.txt beside it.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${FLAGKIT_ROOT} (the directory holding the config file) and
// ${VAR:-default} patterns are expanded. Environment variables never
// override config values directly.
//
// Key exports:
//
//   - [Config] -- Flag and Log sections
//   - [Default] -- plaintext flag.txt, warn-level logging
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- reports every problem at once
//
// This package depends on no other flagkit packages.
package config
