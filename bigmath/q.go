// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigmath

import "io"

// Q is an exact rational number num/den, always kept in canonical form:
// den > 0 and gcd(|num|, den) == 1. The zero value is not canonical (den
// is the Z zero); use NewQ or QFromInt64 to construct a Q.
type Q struct {
	num Z
	den Z
}

// NewQ returns the canonical form of num/den. It returns ErrDivisionByZero
// if den is zero.
func NewQ(num, den Z) (Q, error) {
	if den.Sign() == 0 {
		return Q{}, ErrDivisionByZero
	}
	return canonicalize(num, den), nil
}

// QFromInt64 returns the exact Q representation of n.
func QFromInt64(n int64) Q {
	return Q{num: NewZ(n), den: NewZ(1)}
}

// canonicalize reduces num/den to lowest terms with a positive
// denominator: if den < 0 both signs are flipped, then both are divided
// by gcd(|num|, |den|).
func canonicalize(num, den Z) Q {
	if den.Sign() < 0 {
		num = num.Neg()
		den = den.Neg()
	}
	if num.Sign() == 0 {
		return Q{num: NewZ(0), den: NewZ(1)}
	}
	g := GCD(num, den)
	if g.Sign() == 0 {
		return Q{num: num, den: den}
	}
	n, _, _ := num.QuoRem(g)
	d, _, _ := den.QuoRem(g)
	return Q{num: n, den: d}
}

// Num returns the canonical numerator.
func (q Q) Num() Z { return q.num }

// Den returns the canonical denominator (always positive).
func (q Q) Den() Z { return q.den }

// Add returns q + other.
func (q Q) Add(other Q) Q {
	num := q.num.Mul(other.den).Add(other.num.Mul(q.den))
	den := q.den.Mul(other.den)
	return canonicalize(num, den)
}

// Sub returns q - other.
func (q Q) Sub(other Q) Q {
	return q.Add(Q{num: other.num.Neg(), den: other.den})
}

// Mul returns q * other.
func (q Q) Mul(other Q) Q {
	return canonicalize(q.num.Mul(other.num), q.den.Mul(other.den))
}

// Quo returns q / other. It returns ErrDivisionByZero if other is zero.
func (q Q) Quo(other Q) (Q, error) {
	if other.num.Sign() == 0 {
		return Q{}, ErrDivisionByZero
	}
	return canonicalize(q.num.Mul(other.den), q.den.Mul(other.num)), nil
}

// Cmp compares q and other, returning -1, 0, or +1 as q <, ==, > other.
// Both operands are assumed canonical (den > 0), which Cmp relies on to
// cross-multiply without sign correction.
func (q Q) Cmp(other Q) int {
	lhs := q.num.Mul(other.den)
	rhs := other.num.Mul(q.den)
	return lhs.Cmp(rhs)
}

// IsZero reports whether q is exactly zero.
func (q Q) IsZero() bool { return q.num.Sign() == 0 }

// Serialize writes the canonical form of q as Serialize(num) followed by
// Serialize(den).
func (q Q) Serialize(w io.Writer) error {
	c := canonicalize(q.num, q.den)
	if err := c.num.Serialize(w); err != nil {
		return err
	}
	return c.den.Serialize(w)
}

// DeserializeQ reads a Q written by Serialize and canonicalizes it.
func DeserializeQ(r io.Reader) (Q, error) {
	num, err := DeserializeZ(r)
	if err != nil {
		return Q{}, err
	}
	den, err := DeserializeZ(r)
	if err != nil {
		return Q{}, err
	}
	if den.Sign() == 0 {
		return Q{}, ErrDivisionByZero
	}
	return canonicalize(num, den), nil
}
