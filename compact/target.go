// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package compact implements the 256-bit unsigned target type used to
// express proof-of-work difficulty, together with its "compact" (nBits)
// encoding — the difficulty-target analogue of an IEEE754 float, with an
// 8-bit base-256 exponent, a sign bit, and a 23-bit mantissa.
package compact

import "math/big"

var (
	bigOne    = big.NewInt(1)
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)
	maxUint256 = new(big.Int).Sub(oneLsh256, bigOne)
)

// Target is a 256-bit unsigned integer. The zero value is the target
// zero and is ready to use.
type Target struct {
	v big.Int
}

// FromBig returns the Target representation of n. n is assumed
// non-negative; callers that decode an untrusted compact value should use
// SetCompact instead so the negative/overflow flags are surfaced.
func FromBig(n *big.Int) Target {
	var t Target
	t.v.Set(n)
	return t
}

// Big returns a copy of the underlying 256-bit magnitude.
func (t Target) Big() *big.Int { return new(big.Int).Set(&t.v) }

// Cmp compares t and other, returning -1, 0, or +1 as t <, ==, > other.
func (t Target) Cmp(other Target) int { return t.v.Cmp(&other.v) }

// Sign returns -1, 0, or +1 depending on the sign of t. A correctly
// decoded Target is never negative, but SetCompact can return one when
// the encoded sign bit is set.
func (t Target) Sign() int { return t.v.Sign() }

// SetCompact decodes the 32-bit compact representation of a whole number
// N, returning the decoded Target along with two flags:
//
//   - negative reports whether the sign bit is set on a nonzero mantissa.
//   - overflow reports whether the decoded value would need more than
//     256 bits to represent.
//
// The formula is N = (-1^sign) * mantissa * 256^(exponent-3), with the
// compact word laid out as (exponent:8 | sign:1 | mantissa:23).
func SetCompact(compact uint32) (target Target, negative, overflow bool) {
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := compact >> 24

	var bn big.Int
	if exponent <= 3 {
		bn.SetInt64(int64(mantissa >> (8 * (3 - exponent))))
	} else {
		bn.SetInt64(int64(mantissa))
		bn.Lsh(&bn, uint(8*(exponent-3)))
	}

	negative = mantissa != 0 && isNegative
	overflow = mantissa != 0 &&
		(exponent > 34 ||
			(exponent > 33 && mantissa > 0xff) ||
			(exponent > 32 && mantissa > 0xffff))

	if isNegative {
		bn.Neg(&bn)
	}

	return Target{v: bn}, negative, overflow
}

// Compact encodes t as a 32-bit compact word: the smallest exponent that
// holds t, with the mantissa keeping t's most significant bytes. Bits below
// the mantissa are truncated, so the decode reproduces t exactly only when
// t has no more significant bits than the mantissa holds. It never sets the
// sign bit; negative targets are not expressible and CompactSigned
// should be used if the sign must round-trip.
func (t Target) Compact() uint32 {
	return compactFrom(&t.v, false)
}

// CompactSigned encodes t the same way Compact does, but additionally
// sets the sign bit when t is negative — matching the reference
// implementation's BigToCompact, which (unlike SetCompact's consumers in
// this package) is occasionally asked to round-trip a signed value for
// diagnostic purposes.
func (t Target) CompactSigned() uint32 {
	word := compactFrom(&t.v, true)
	if t.v.Sign() < 0 {
		word |= 0x00800000
	}
	return word
}

func compactFrom(n *big.Int, _ bool) uint32 {
	if n.Sign() == 0 {
		return 0
	}

	abs := new(big.Int).Abs(n)
	exponent := uint((abs.BitLen() + 7) / 8)

	var mantissa uint32
	if exponent <= 3 {
		mantissa = uint32(abs.Uint64()) << (8 * (3 - exponent))
	} else {
		shifted := new(big.Int).Rsh(abs, 8*(exponent-3))
		mantissa = uint32(shifted.Uint64())
	}

	// The mantissa's high bit doubles as the compact word's sign bit; if
	// it's already set the value needs one more byte of exponent to stay
	// unambiguous.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	return uint32(exponent<<24) | mantissa
}

// MulUint64 returns t * n, saturating at 2^256-1 on overflow.
func (t Target) MulUint64(n uint64) Target {
	var r big.Int
	r.Mul(&t.v, new(big.Int).SetUint64(n))
	if r.Cmp(maxUint256) > 0 {
		r.Set(maxUint256)
	}
	return Target{v: r}
}

// DivUint64 returns t / n, truncated toward zero. It panics if n is zero,
// matching the reference implementation's behavior of treating
// division-by-zero in the rescale path as a programming error: the
// retargeter only ever divides by an adjustment-factor numerator that is
// guaranteed nonzero by the surrounding clamp.
func (t Target) DivUint64(n uint64) Target {
	if n == 0 {
		panic("compact: division by zero")
	}
	var r big.Int
	r.Div(&t.v, new(big.Int).SetUint64(n))
	return Target{v: r}
}

// Not returns the bitwise complement of t within 256 bits (~t).
func (t Target) Not() Target {
	var r big.Int
	r.Xor(&t.v, maxUint256)
	return Target{v: r}
}

// AddUint64 returns t + n.
func (t Target) AddUint64(n uint64) Target {
	var r big.Int
	r.Add(&t.v, new(big.Int).SetUint64(n))
	return Target{v: r}
}

// QuoTarget returns t / other, truncated toward zero. It panics if other
// is zero.
func (t Target) QuoTarget(other Target) Target {
	if other.v.Sign() == 0 {
		panic("compact: division by zero")
	}
	var r big.Int
	r.Div(&t.v, &other.v)
	return Target{v: r}
}

// Max256 is 2^256 - 1, the largest representable Target.
func Max256() Target { return Target{v: *maxUint256} }
