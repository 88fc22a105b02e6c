// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg provides named difficulty-retargeting parameter
// presets. It knows nothing about wire encoding, checkpoints, or peer
// addresses — those belong to the node's network layer, an external
// collaborator of this core (see spec.md §1) — only the handful of
// consensus knobs blockchain.ChainParams needs plus a genesis nBits/time
// pair for bootstrap and display purposes.
package chaincfg

import (
	"github.com/frc-go/firtarget/blockchain"
	"github.com/frc-go/firtarget/compact"
)

// Params bundles a network's retargeting rules with its genesis block's
// difficulty and timestamp.
type Params struct {
	// Name is the human-readable network name.
	Name string

	// Retarget carries the values blockchain.GetNextWorkRequired
	// branches on.
	Retarget blockchain.ChainParams

	// GenesisBits is the compact difficulty of the network's genesis
	// block.
	GenesisBits uint32

	// GenesisTime is the genesis block's header timestamp, as a Unix
	// second count.
	GenesisTime int64
}

func powLimitFromBits(bits uint32) compact.Target {
	target, _, _ := compact.SetCompact(bits)
	return target
}

// MainNetParams are the production network's retargeting parameters. The
// genesis nBits (0x1f1fffff) and timestamp are adapted from the
// teacher's chaincfg/genesis.go mainnet genesis header.
var MainNetParams = Params{
	Name: "mainnet",
	Retarget: blockchain.ChainParams{
		TargetSpacing:            600,
		LegacyInterval:           2016,
		LegacyTargetTimespan:     2016 * 600,
		PowLimit:                 powLimitFromBits(0x1f1fffff),
		AllowMinDifficulty:       false,
		FIRFilterThresholdHeight: 86400,
		FIRRetargetOverrideNBits: 0x1b01c13a,
		SkipPoWCheck:             false,
	},
	GenesisBits: 0x1f1fffff,
	GenesisTime: 1619971700,
}

// TestNetParams are the public test network's retargeting parameters.
// Adapted from the teacher's testNet3 genesis header (0x1e3fffff); the
// testnet minimum-difficulty rule is enabled, as it is upstream.
var TestNetParams = Params{
	Name: "testnet",
	Retarget: blockchain.ChainParams{
		TargetSpacing:            600,
		LegacyInterval:           2016,
		LegacyTargetTimespan:     2016 * 600,
		PowLimit:                 powLimitFromBits(0x1e3fffff),
		AllowMinDifficulty:       true,
		FIRFilterThresholdHeight: 86400,
		FIRRetargetOverrideNBits: 0x1b01c13a,
		SkipPoWCheck:             false,
	},
	GenesisBits: 0x1e3fffff,
	GenesisTime: 1619971765,
}

// RegTestParams are the regression-test network's retargeting
// parameters: the easiest possible pow limit (0x207fffff, adapted from
// the teacher's regtest genesis header), proof-of-work checks disabled,
// and a short legacy interval so tests can exercise a retarget without
// mining thousands of blocks.
var RegTestParams = Params{
	Name: "regtest",
	Retarget: blockchain.ChainParams{
		TargetSpacing:            600,
		LegacyInterval:           150,
		LegacyTargetTimespan:     150 * 600,
		PowLimit:                 powLimitFromBits(0x207fffff),
		AllowMinDifficulty:       true,
		FIRFilterThresholdHeight: 1<<31 - 1,
		FIRRetargetOverrideNBits: 0x207fffff,
		SkipPoWCheck:             true,
	},
	GenesisBits: 0x207fffff,
	GenesisTime: 1619971818,
}

// ByName returns the named preset ("mainnet", "testnet", or "regtest")
// and whether it was found.
func ByName(name string) (Params, bool) {
	switch name {
	case "mainnet":
		return MainNetParams, true
	case "testnet":
		return TestNetParams, true
	case "regtest":
		return RegTestParams, true
	default:
		return Params{}, false
	}
}
