// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package challenge

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bureau-foundation/flagkit/lib/process"
	"github.com/bureau-foundation/flagkit/lib/secret"
)

// These strings are matched by exercise graders. Do not reword them.
const (
	// OpenFailureMessage is printed when the flag cannot be opened.
	OpenFailureMessage = "Couldn't open flag file!"

	// AbortMessage is printed when the exercise was not solved.
	AbortMessage = "Try again!"
)

const (
	// DefaultFlagPath is where exercise setups place the flag,
	// relative to the working directory of the vulnerable program.
	DefaultFlagPath = "flag.txt"

	// ChunkSize is the read size used when streaming the flag.
	ChunkSize = 1024

	// AbortExitCode is the process status after [Abort].
	AbortExitCode = process.ExitFailure
)

// RevealOptions locates and decodes the flag artifact. The zero value
// reveals a plaintext DefaultFlagPath.
type RevealOptions struct {
	// Path is the artifact location. Empty means DefaultFlagPath.
	Path string

	// Encoding is the compression applied to the (unsealed) flag.
	// The zero value is EncodingNone: the bytes are streamed as
	// stored whatever the file is called.
	Encoding Encoding

	// Identity, when set, holds an age identity and the artifact is
	// treated as sealed. Borrowed: Reveal does not close it.
	Identity *secret.Buffer

	// Logger receives operational details (why an open failed, write
	// errors). Nil discards them. It must not write to the same
	// stream as the flag output.
	Logger *slog.Logger
}

func (o RevealOptions) path() string {
	if o.Path == "" {
		return DefaultFlagPath
	}
	return o.Path
}

func (o RevealOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// Reveal writes the flag to output exactly as stored (after any
// configured unsealing and decompression). If the artifact cannot be
// opened for any reason, it writes OpenFailureMessage and a newline
// instead. Reveal has no result: a read or write failure part way
// through ends the stream and is only logged.
func Reveal(output io.Writer, options RevealOptions) {
	logger := options.logger().With("path", options.path())

	artifact, err := openArtifact(options)
	if err != nil {
		logger.Debug("flag unavailable", "error", err)
		fmt.Fprintln(output, OpenFailureMessage)
		return
	}
	defer func() {
		if err := artifact.Close(); err != nil {
			logger.Warn("closing flag", "error", err)
		}
	}()

	var written int64
	for chunk, err := range Chunks(artifact, ChunkSize) {
		if err != nil {
			logger.Warn("reading flag", "error", err, "written", written)
			return
		}
		// Write, not a string print: the chunk may hold NUL bytes.
		n, err := output.Write(chunk)
		written += int64(n)
		if err != nil {
			logger.Warn("writing flag", "error", err, "written", written)
			return
		}
	}
	logger.Debug("flag revealed", "bytes", written)
}

// Abort writes AbortMessage and a newline to output and returns a
// *process.ExitError carrying AbortExitCode. The caller must return
// that error up to main, which exits with it.
func Abort(output io.Writer) error {
	fmt.Fprintln(output, AbortMessage)
	return &process.ExitError{Code: AbortExitCode}
}
