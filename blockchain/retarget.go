// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/frc-go/firtarget/bigmath"
	"github.com/frc-go/firtarget/compact"
)

var (
	kOne        = bigmath.QFromInt64(1)
	kGain       = mustQ(41, 400)
	kLimiterUp  = mustQ(211, 200)
	kLimiterDn  = mustQ(200, 211)
	kTwoPow31   = bigmath.NewZ(1 << 31)
)

func mustQ(num, den int64) bigmath.Q {
	q, err := bigmath.NewQ(bigmath.NewZ(num), bigmath.NewZ(den))
	if err != nil {
		panic(err)
	}
	return q
}

// GetNextWorkRequired computes the compact difficulty target (nBits) the
// block following tip must satisfy, given its candidate timestamp and the
// network's chain parameters. tip == nil is the genesis case. The
// function is a pure, total function of its inputs: it allocates its own
// working storage and never mutates the supplied ChainView entries.
//
// See spec.md §4.D for the decision tree this function implements
// verbatim; the ordering of the checks below is load-bearing, not
// cosmetic.
func GetNextWorkRequired(tip BlockIndex, candidateTime int64, params ChainParams) (uint32, error) {
	powLimitBits := params.PowLimit.Compact()

	// Genesis block.
	if tip == nil {
		return powLimitBits, nil
	}

	// Special, one-time adjustment due to the "hash crash" that rushed
	// the introduction of the FIR-filtered difficulty mode: adjust back
	// to the difficulty prior to the last adjustment.
	if !params.AllowMinDifficulty && tip.Height() == params.FIRFilterThresholdHeight-1 {
		return params.FIRRetargetOverrideNBits, nil
	}

	useFIR := tip.Height() >= params.FIRFilterThresholdHeight-1

	var interval, targetTimespan int64
	if useFIR {
		interval = firInterval
		targetTimespan = firInterval * params.TargetSpacing
	} else {
		interval = params.LegacyInterval
		targetTimespan = params.LegacyTargetTimespan
	}

	// Only change once per interval.
	if (int64(tip.Height())+1)%interval != 0 {
		if params.AllowMinDifficulty {
			if candidateTime > tip.Time()+2*params.TargetSpacing {
				return powLimitBits, nil
			}
			// Return the last non-special-minimum-difficulty block.
			node := tip
			for node.Prev() != nil && int64(node.Height())%interval != 0 && node.Bits() == powLimitBits {
				node = node.Prev()
			}
			return node.Bits(), nil
		}
		return tip.Bits(), nil
	}

	var factor bigmath.Q
	var err error
	if useFIR {
		factor, err = firAdjustmentFactor(tip, params)
	} else {
		factor, err = legacyAdjustmentFactor(tip, interval, targetTimespan)
	}
	if err != nil {
		return 0, err
	}

	return rescale(tip.Bits(), factor, params.PowLimit), nil
}

// firAdjustmentFactor computes the FIR-filtered adjustment factor from
// the 144-block window of inter-block timestamp deltas ending at tip.
func firAdjustmentFactor(tip BlockIndex, params ChainParams) (bigmath.Q, error) {
	var deltas [firWindow]int64

	idx := 0
	node := tip
	for idx < firWindow && node != nil && node.Prev() != nil {
		deltas[idx] = node.Time() - node.Prev().Time()
		node = node.Prev()
		idx++
	}
	for ; idx < firWindow; idx++ {
		deltas[idx] = params.TargetSpacing
	}

	var filtered int64
	for i := 0; i < firWindow; i++ {
		filtered += int64(filterKernel[i]) * deltas[i]
	}

	filteredInterval, err := bigmath.NewQ(bigmath.NewZ(filtered), kTwoPow31)
	if err != nil {
		return bigmath.Q{}, err
	}

	targetSpacing := bigmath.QFromInt64(params.TargetSpacing)
	ratio, err := filteredInterval.Sub(targetSpacing).Quo(targetSpacing)
	if err != nil {
		return bigmath.Q{}, err
	}

	factor := kOne.Sub(kGain.Mul(ratio))
	if factor.Cmp(kLimiterUp) > 0 {
		factor = kLimiterUp
	} else if factor.Cmp(kLimiterDn) < 0 {
		factor = kLimiterDn
	}
	return factor, nil
}

// legacyAdjustmentFactor computes the Bitcoin-style adjustment factor
// from the actual elapsed time over the last retarget interval, clamped
// to a [1/4, 4] adjustment step.
func legacyAdjustmentFactor(tip BlockIndex, interval, targetTimespan int64) (bigmath.Q, error) {
	// This fixes an issue where a 51% attack can change difficulty at
	// will: go back the full period unless it's the first retarget
	// after genesis.
	blocksToGoBack := interval - 1
	if int64(tip.Height())+1 != interval {
		blocksToGoBack = interval
	}

	first := tip
	for i := int64(0); i < blocksToGoBack; i++ {
		if first == nil {
			return bigmath.Q{}, AssertError("unable to obtain previous retarget block")
		}
		first = first.Prev()
	}
	if first == nil {
		return bigmath.Q{}, AssertError("unable to obtain previous retarget block")
	}

	actual := tip.Time() - first.Time()
	if actual < targetTimespan/4 {
		actual = targetTimespan / 4
	} else if actual > targetTimespan*4 {
		actual = targetTimespan * 4
	}

	return bigmath.NewQ(bigmath.NewZ(targetTimespan), bigmath.NewZ(actual))
}

// rescale applies the adjustment factor to the previous target,
// saturating at powLimit. The target is scaled by den(factor)/num(factor)
// — not num/den — because a larger factor means harder (higher)
// difficulty, i.e. a *lower* target, and target and difficulty are
// inverses of one another.
func rescale(prevBits uint32, factor bigmath.Q, powLimit compact.Target) uint32 {
	old, _, _ := compact.SetCompact(prevBits)

	num, err := factor.Num().Int64()
	if err != nil {
		panic(err)
	}
	den, err := factor.Den().Int64()
	if err != nil {
		panic(err)
	}

	next := old.MulUint64(uint64(den)).DivUint64(uint64(num))
	if next.Cmp(powLimit) > 0 {
		next = powLimit
	}
	return next.Compact()
}
