// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/flagkit/lib/challenge"
	"github.com/bureau-foundation/flagkit/lib/process"
	"github.com/bureau-foundation/flagkit/lib/sealed"
	"github.com/bureau-foundation/flagkit/lib/version"
)

func main() {
	process.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run dispatches one command. It never exits: the returned error
// carries the exit status (see process.Code).
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return &process.ExitError{Code: process.ExitUsage}
	}

	command, rest := args[0], args[1:]
	switch command {
	case "--version", "version":
		version.Print(stdout, "flagkit")
		return nil
	case "-h", "--help", "help":
		printUsage(stdout)
		return nil
	case "reveal":
		return runReveal(rest, stdin, stdout, stderr)
	case "abort":
		return runAbort(rest, stdout)
	case "digest":
		return runDigest(rest, stdin, stdout, stderr)
	case "seal":
		return runSeal(rest, stdin, stdout, stderr)
	case "keygen":
		return runKeygen(rest, stdout, stderr)
	default:
		return process.Usagef("unknown command %q (run 'flagkit help')", command)
	}
}

// parseFlags parses args into flagSet. It reports whether help was
// requested (and printed), and rejects positional arguments.
func parseFlags(flagSet *pflag.FlagSet, args []string, stdout io.Writer) (bool, error) {
	flagSet.SetOutput(io.Discard)
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(stdout, "Usage of %s:\n", flagSet.Name())
			flagSet.SetOutput(stdout)
			flagSet.PrintDefaults()
			return true, nil
		}
		return false, process.Usagef("%s: %w", flagSet.Name(), err)
	}
	if remaining := flagSet.Args(); len(remaining) > 0 {
		return false, process.Usagef("%s: unexpected argument %q", flagSet.Name(), remaining[0])
	}
	return false, nil
}

func runReveal(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var options flagOptions
	flagSet := pflag.NewFlagSet("flagkit reveal", pflag.ContinueOnError)
	options.AddFlags(flagSet)
	if help, err := parseFlags(flagSet, args, stdout); help || err != nil {
		return err
	}

	revealOptions, release, err := options.revealOptions(stdin, stderr)
	if err != nil {
		return err
	}
	defer release()

	challenge.Reveal(stdout, revealOptions)
	return nil
}

func runAbort(args []string, stdout io.Writer) error {
	flagSet := pflag.NewFlagSet("flagkit abort", pflag.ContinueOnError)
	if help, err := parseFlags(flagSet, args, stdout); help || err != nil {
		return err
	}
	return challenge.Abort(stdout)
}

func runDigest(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var options flagOptions
	flagSet := pflag.NewFlagSet("flagkit digest", pflag.ContinueOnError)
	options.AddFlags(flagSet)
	if help, err := parseFlags(flagSet, args, stdout); help || err != nil {
		return err
	}

	revealOptions, release, err := options.revealOptions(stdin, stderr)
	if err != nil {
		return err
	}
	defer release()

	digest, err := challenge.Digest(revealOptions)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "%s  %s\n", digest, revealOptions.Path)
	return nil
}

func runSeal(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var recipients []string
	var inputPath, outputPath string
	flagSet := pflag.NewFlagSet("flagkit seal", pflag.ContinueOnError)
	flagSet.StringArrayVarP(&recipients, "recipient", "r", nil, "age public key (age1...) to seal to; repeatable")
	flagSet.StringVar(&inputPath, "in", "-", "plaintext flag, or - for stdin")
	flagSet.StringVar(&outputPath, "out", "-", "sealed output, or - for stdout (refuses to overwrite)")
	if help, err := parseFlags(flagSet, args, stdout); help || err != nil {
		return err
	}

	if len(recipients) == 0 {
		return process.Usagef("flagkit seal: at least one --recipient is required")
	}
	for _, recipient := range recipients {
		if err := sealed.ParsePublicKey(recipient); err != nil {
			return process.Usagef("flagkit seal: --recipient %q: %w", recipient, err)
		}
	}

	input := stdin
	if inputPath != "-" {
		file, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		input = file
	}

	if outputPath == "-" {
		return sealed.Seal(stdout, input, recipients)
	}

	output, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if err := sealed.Seal(output, input, recipients); err != nil {
		output.Close()
		os.Remove(outputPath)
		return err
	}
	if err := output.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outputPath, err)
	}
	fmt.Fprintf(stderr, "sealed %s to %d recipient(s)\n", outputPath, len(recipients))
	return nil
}

func runKeygen(args []string, stdout, stderr io.Writer) error {
	var outputPath string
	flagSet := pflag.NewFlagSet("flagkit keygen", pflag.ContinueOnError)
	flagSet.StringVarP(&outputPath, "out", "o", "-", "identity file to create (mode 0600), or - for stdout")
	if help, err := parseFlags(flagSet, args, stdout); help || err != nil {
		return err
	}

	keypair, err := sealed.GenerateKeypair()
	if err != nil {
		return err
	}
	defer keypair.Close()

	if outputPath == "-" {
		if err := sealed.WriteIdentity(stdout, keypair, time.Now()); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Public key: %s\n", keypair.PublicKey)
		return nil
	}

	output, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	if err := sealed.WriteIdentity(output, keypair, time.Now()); err != nil {
		output.Close()
		os.Remove(outputPath)
		return err
	}
	if err := output.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", outputPath, err)
	}
	fmt.Fprintf(stdout, "Public key: %s\n", keypair.PublicKey)
	return nil
}

func printUsage(output io.Writer) {
	fmt.Fprint(output, `flagkit: reward and failure helper for memory-corruption exercises.

Usage:
  flagkit reveal [--flag PATH] [--identity FILE] [--encoding E] [--config FILE]
  flagkit abort
  flagkit digest [--flag PATH] [--identity FILE] [--encoding E] [--config FILE]
  flagkit seal --recipient age1... [--in PATH] [--out PATH]
  flagkit keygen [--out PATH]
  flagkit version

reveal prints the flag exactly as stored, or "Couldn't open flag file!"
when it cannot be opened. abort prints "Try again!" and exits 1.

Examples:
  # Reveal ./flag.txt
  flagkit reveal

  # Ship a sealed, compressed flag
  flagkit keygen --out identity.txt
  zstd flag.txt && flagkit seal -r age1... --in flag.txt.zst --out flag.txt.zst.age
  flagkit reveal --flag flag.txt.zst.age --identity identity.txt --encoding auto

  # Check a deployment without printing the flag
  flagkit digest --flag /challenge/flag.txt
`)
}
