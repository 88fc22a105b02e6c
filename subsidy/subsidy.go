// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package subsidy implements the block-reward schedule as an exact
// rational, exercising bigmath.Q arithmetic end to end the way spec.md
// §8 scenario (b) describes: summing a long schedule of rationals and
// checking the total stays exact, with no floating point anywhere.
package subsidy

import (
	"math/big"

	"github.com/frc-go/firtarget/bigmath"
)

// HalvingInterval is the number of blocks between subsidy halvings.
const HalvingInterval = 210000

// BaseSubsidy is the block reward at height 0, in satoshis.
const BaseSubsidy = 50 * 1e8

// maxHalvings is the point past which the subsidy is exactly zero: after
// 64 halvings the reward has been right-shifted out of existence.
const maxHalvings = 64

// BlockValue returns the exact block subsidy at height, in satoshis, as
// a rational. The schedule halves every HalvingInterval blocks; past
// maxHalvings halvings the reward is exactly zero.
func BlockValue(height int32) bigmath.Q {
	halvings := int64(height) / HalvingInterval
	if halvings >= maxHalvings {
		return bigmath.QFromInt64(0)
	}

	num := bigmath.NewZ(BaseSubsidy)
	// halvings can reach 63, and 1<<63 overflows int64, so build the
	// power of two directly as a big.Int rather than shifting in int64.
	den := bigmath.NewZFromBig(new(big.Int).Lsh(big.NewInt(1), uint(halvings)))
	q, err := bigmath.NewQ(num, den)
	if err != nil {
		// den is 1<<halvings with halvings < 64, never zero.
		panic(err)
	}
	return q
}

// SumBlockValues returns the exact sum of BlockValue(h) for h in
// [start, end), stepping by step. It is used to validate that the
// schedule's rational accumulation stays exact over a long summation
// (spec.md §8 scenario (b)), without ever narrowing to a float.
func SumBlockValues(start, end int32, step int32) bigmath.Q {
	total := bigmath.QFromInt64(0)
	for h := start; h < end; h += step {
		total = total.Add(BlockValue(h))
	}
	return total
}
