// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/flagkit/lib/challenge"
	"github.com/bureau-foundation/flagkit/lib/config"
	"github.com/bureau-foundation/flagkit/lib/secret"
)

// flagOptions are the command-line settings shared by the commands
// that read the flag. Non-empty values override the config file.
type flagOptions struct {
	configPath   string
	flagPath     string
	identityPath string
	encoding     string
}

// AddFlags registers the shared flags on flagSet.
func (o *flagOptions) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&o.configPath, "config", "", "config file (default: $"+config.EnvironmentVariable+", else built-in defaults)")
	flagSet.StringVar(&o.flagPath, "flag", "", "flag file (default: flag.txt)")
	flagSet.StringVar(&o.identityPath, "identity", "", "age identity file for a sealed flag, or - for stdin")
	flagSet.StringVar(&o.encoding, "encoding", "", "flag compression: none, auto (by extension), zstd, lz4 (default: none)")
}

// loadConfig loads the config file and applies the command-line
// overrides.
func (o *flagOptions) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.flagPath != "" {
		cfg.Flag.Path = o.flagPath
	}
	if o.identityPath != "" {
		cfg.Flag.IdentityFile = o.identityPath
	}
	if o.encoding != "" {
		cfg.Flag.Encoding = o.encoding
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// revealOptions resolves everything lib/challenge needs. The returned
// release function closes the identity buffer and must be called.
func (o *flagOptions) revealOptions(stdin io.Reader, stderr io.Writer) (challenge.RevealOptions, func(), error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return challenge.RevealOptions{}, nil, err
	}

	level, _ := cfg.LogLevel()
	logger := newLogger(stderr, level)

	encoding, err := challenge.ParseEncoding(cfg.Flag.Encoding)
	if err != nil {
		return challenge.RevealOptions{}, nil, err
	}

	options := challenge.RevealOptions{
		Path:     cfg.Flag.Path,
		Encoding: encoding,
		Logger:   logger,
	}
	release := func() {}

	if cfg.Flag.IdentityFile != "" {
		identity, err := secret.ReadFromPath(cfg.Flag.IdentityFile, stdin)
		if err != nil {
			return challenge.RevealOptions{}, nil, fmt.Errorf("reading identity %s: %w", cfg.Flag.IdentityFile, err)
		}
		options.Identity = identity
		release = func() {
			if err := identity.Close(); err != nil {
				logger.Warn("releasing identity", "error", err)
			}
		}
	}

	logger.Debug("flag options resolved",
		slog.String("path", options.Path),
		slog.String("encoding", string(options.Encoding)),
		slog.Bool("sealed", options.Identity != nil),
	)
	return options, release, nil
}
