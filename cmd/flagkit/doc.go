// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Flagkit is the reward and failure helper for memory-corruption
// exercises. A vulnerable program that cannot link lib/challenge
// directly runs it at the two points it controls:
//
//	flagkit reveal   print the flag (or "Couldn't open flag file!")
//	flagkit abort    print "Try again!" and exit 1
//
// Deployment tooling uses the remaining commands:
//
//	flagkit digest   BLAKE3 of the decoded flag, for graders
//	flagkit seal     encrypt a flag to age recipients
//	flagkit keygen   create an age identity for sealed flags
//
// Exit codes:
//
//	0  success (reveal always succeeds, even without a flag)
//	1  abort, or an operational error (printed to stderr)
//	2  usage error
//
// The flag goes to stdout byte for byte. Logs go to stderr only.
package main
