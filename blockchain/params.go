// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/frc-go/firtarget/compact"

// ChainParams carries every consensus knob the retargeter needs. Unlike
// the teacher's chaincfg.Params, this struct holds nothing about wire
// encoding, checkpoints, or network magic — those belong to external
// collaborators (see spec.md §1) — only the handful of values the
// retargeting decision tree actually branches on.
type ChainParams struct {
	// TargetSpacing is the desired number of seconds between blocks.
	TargetSpacing int64

	// LegacyInterval is the number of blocks between legacy-mode
	// retargets (e.g. 2016 for Bitcoin's two-week window).
	LegacyInterval int64

	// LegacyTargetTimespan is the number of seconds the legacy-mode
	// window is expected to span (normally LegacyInterval *
	// TargetSpacing).
	LegacyTargetTimespan int64

	// PowLimit is the easiest allowed target; no retarget may ever
	// produce a target above it.
	PowLimit compact.Target

	// AllowMinDifficulty enables the testnet minimum-difficulty rule:
	// past a timestamp gap, blocks may be mined at PowLimit regardless
	// of the interval's actual schedule.
	AllowMinDifficulty bool

	// FIRFilterThresholdHeight is the height at which the FIR-filtered
	// retarget mode takes over from the legacy mode. The one-time
	// override (see GetNextWorkRequired) fires at
	// FIRFilterThresholdHeight - 1.
	FIRFilterThresholdHeight int32

	// FIRRetargetOverrideNBits is the hard-coded nBits value returned
	// verbatim at FIRFilterThresholdHeight - 1 on networks that don't
	// allow minimum-difficulty blocks.
	FIRRetargetOverrideNBits uint32

	// SkipPoWCheck, when set, makes CheckProofOfWork always return true
	// (used by regression-test networks where blocks aren't mined).
	SkipPoWCheck bool
}

// firInterval and firWindow are the constants the FIR mode always uses
// once active: a fixed 9-block retarget interval, regardless of the legacy
// interval the network was configured with, and a 144-delta filter window.
const (
	firInterval = 9
	firWindow   = 144
)
