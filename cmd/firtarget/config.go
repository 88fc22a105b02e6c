// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"

	"github.com/frc-go/firtarget/chaincfg"
)

const (
	defaultDataDirname = "data"
	defaultCacheName   = "retarget-cache.db"
	defaultCacheSize   = 2500
)

// config defines the configuration options for firtarget.
//
// See loadConfig for details on the configuration load process.
type config struct {
	DataDir     string `short:"b" long:"datadir" description:"Directory to store headers and the memoization cache"`
	Network     string `long:"net" description:"Network to use {mainnet, testnet, regtest}"`
	Height      int32  `long:"height" description:"Height of the tip block to retarget from (-1 for genesis)"`
	Time        int64  `long:"tiptime" description:"Unix timestamp of the tip block"`
	Bits        string `long:"tipbits" description:"Compact nBits of the tip block, as hex (e.g. 1d00ffff)"`
	CandidateAt int64  `long:"candidate" description:"Unix timestamp of the candidate block being evaluated"`
	CacheSize   int    `long:"cachesize" description:"Number of decoded header entries to keep cached"`
	NoMemoCache bool   `long:"no-memo-cache" description:"Disable the bbolt-backed result memoization cache"`
	Debug       bool   `long:"debug" description:"Enable debug-level logging"`
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it. Adapted from the
// teacher's config.go helper of the same name.
func cleanAndExpandPath(path string) string {
	if path == "" {
		return path
	}
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfig reads flags from the command line, applying the same
// defaults the teacher's btcd-family config.go establishes before
// parsing.
func loadConfig() (*config, error) {
	cfg := config{
		DataDir:   defaultDataDirname,
		Network:   "mainnet",
		Height:    -1,
		CacheSize: defaultCacheSize,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if ok := asFlagsError(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, err
	}

	cfg.DataDir = cleanAndExpandPath(cfg.DataDir)

	if _, ok := chaincfg.ByName(cfg.Network); !ok {
		return nil, fmt.Errorf("unknown network %q", cfg.Network)
	}
	if cfg.CacheSize <= 0 {
		return nil, fmt.Errorf("cachesize must be positive")
	}

	return &cfg, nil
}

// asFlagsError is a small indirection around errors.As so loadConfig
// doesn't need to import "errors" solely for this one call site.
func asFlagsError(err error, target **flags.Error) bool {
	fe, ok := err.(*flags.Error)
	if !ok {
		return false
	}
	*target = fe
	return true
}

func cacheDBPath(cfg *config) string {
	return filepath.Join(cfg.DataDir, defaultCacheName)
}

func headerStorePath(cfg *config) string {
	return filepath.Join(cfg.DataDir, "headers")
}
