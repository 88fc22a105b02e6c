// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/frc-go/firtarget/blockchain"
)

// logWriter implements io.Writer and writes to both standard output and
// the rotating log file.
type logWriter struct {
	rotator *rotator.Rotator
}

func (w logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	return w.rotator.Write(p)
}

var (
	backendLog = btclog.NewBackend(os.Stdout)
	log        = backendLog.Logger("MAIN")
)

// initLogRotator initializes the logging rotator to write logs to
// logFile and create roll files in the same directory. It must be
// called before the package-level log rotator variables are used.
func initLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return err
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return err
	}

	backendLog = btclog.NewBackend(logWriter{rotator: r})
	log = backendLog.Logger("MAIN")
	blockchain.UseLogger(backendLog.Logger("RTGT"))
	return nil
}

func setLogLevel(debug bool) {
	level := btclog.LevelInfo
	if debug {
		level = btclog.LevelDebug
	}
	log.SetLevel(level)
}
