// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package compact

import (
	"math/big"
	"testing"
)

// expectedFromCompact reproduces the set_compact formula directly from
// spec.md §4.B, independent of the package under test, so the test
// doesn't just check SetCompact against itself.
func expectedFromCompact(nBits uint32) *big.Int {
	mantissa := int64(nBits & 0x007fffff)
	size := nBits >> 24

	n := new(big.Int)
	if size <= 3 {
		n.SetInt64(mantissa >> (8 * (3 - size)))
	} else {
		n.SetInt64(mantissa)
		n.Lsh(n, uint(8*(size-3)))
	}
	if nBits&0x00800000 != 0 {
		n.Neg(n)
	}
	return n
}

func TestSetCompact(t *testing.T) {
	tests := []uint32{
		0, 0x01003456, 0x01123456, 0x02008000, 0x05009234,
		0x1d00ffff, 0x1b0404cb, 0x207fffff, 0x00923456,
	}
	for _, nBits := range tests {
		target, negative, overflow := SetCompact(nBits)
		want := expectedFromCompact(nBits)
		if overflow {
			continue
		}
		wantAbs := new(big.Int).Abs(want)
		if target.Big().CmpAbs(wantAbs) != 0 {
			t.Errorf("SetCompact(%#08x) = %v, want magnitude %v", nBits, target.Big(), wantAbs)
		}
		// The negative flag is defined on the 23-bit mantissa before any
		// shift, so it can be set even when the decoded magnitude is zero.
		wantNeg := nBits&0x007fffff != 0 && nBits&0x00800000 != 0
		if negative != wantNeg {
			t.Errorf("SetCompact(%#08x) negative=%v, want %v", nBits, negative, wantNeg)
		}
	}
}

func TestSetCompactOverflow(t *testing.T) {
	// exponent 35 with nonzero mantissa needs 35 bytes, more than 256
	// bits can hold.
	_, _, overflow := SetCompact(35<<24 | 0x123456)
	if !overflow {
		t.Errorf("SetCompact with exponent 35 did not report overflow")
	}
}

func TestSetCompactNegative(t *testing.T) {
	_, negative, _ := SetCompact(0x01928456)
	if !negative {
		t.Errorf("sign bit set on nonzero mantissa should report negative")
	}

	// Zero mantissa with the sign bit set is not "negative": the value
	// is still zero.
	_, negative, _ = SetCompact(0x01800000)
	if negative {
		t.Errorf("zero mantissa with sign bit should not report negative")
	}
}

// TestCompactRoundTrip is invariant 1 from spec.md §8: for every nBits
// with size <= 34, mantissa high bit clear, and no trailing-zero bytes
// to renormalize away, decode-then-encode reproduces the original word.
func TestCompactRoundTrip(t *testing.T) {
	for exponent := uint32(3); exponent <= 34; exponent++ {
		for _, mantissa := range []uint32{0x010203, 0x7f0102, 0x654321} {
			nBits := exponent<<24 | mantissa
			target, negative, overflow := SetCompact(nBits)
			if negative || overflow {
				continue
			}
			if got := target.Compact(); got != nBits {
				t.Errorf("round trip %#08x: got %#08x", nBits, got)
			}
		}
	}
}

func TestCompactEncodeDecodeRoundTrip(t *testing.T) {
	values := []int64{0, 1, 0xff, 0xffff, 0x7fffff, 1 << 30}
	for _, n := range values {
		target := FromBig(big.NewInt(n))
		word := target.Compact()
		decoded, negative, overflow := SetCompact(word)
		if negative || overflow {
			t.Fatalf("Compact(%d) decoded with negative=%v overflow=%v", n, negative, overflow)
		}
		if decoded.Cmp(target) != 0 {
			t.Errorf("round trip %d: got %v", n, decoded.Big())
		}
	}
}

func TestMulUint64Saturates(t *testing.T) {
	got := Max256().MulUint64(2)
	if got.Cmp(Max256()) != 0 {
		t.Errorf("MulUint64 overflow should saturate at 2^256-1, got %v", got.Big())
	}
}

func TestDivUint64Truncates(t *testing.T) {
	target := FromBig(big.NewInt(7))
	got := target.DivUint64(2)
	if got.Cmp(FromBig(big.NewInt(3))) != 0 {
		t.Errorf("DivUint64(7, 2) = %v, want 3", got.Big())
	}
}

func TestDivUint64PanicsOnZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("DivUint64(n, 0) did not panic")
		}
	}()
	FromBig(big.NewInt(1)).DivUint64(0)
}

func TestNotAndAddUint64(t *testing.T) {
	// ~0 within 256 bits is 2^256-1, and adding 1 back overflows to 0
	// modulo 2^256 -- but AddUint64 doesn't wrap, so it should equal
	// 2^256.
	zero := FromBig(new(big.Int))
	allOnes := zero.Not()
	if allOnes.Cmp(Max256()) != 0 {
		t.Errorf("Not(0) = %v, want 2^256-1", allOnes.Big())
	}

	want := new(big.Int).Lsh(big.NewInt(1), 256)
	if got := allOnes.AddUint64(1); got.Big().Cmp(want) != 0 {
		t.Errorf("(2^256-1)+1 = %v, want 2^256", got.Big())
	}
}
