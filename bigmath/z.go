// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bigmath implements the arbitrary-precision integer (Z) and
// rational (Q) number model used on the difficulty-retargeting consensus
// path. Both types are exact: no floating point is used anywhere, and
// every operation returns a canonical result so that two nodes computing
// the same expression always agree bit for bit.
package bigmath

import (
	"io"
	"math/big"
)

// Z is an arbitrary-precision signed integer. The zero value is the
// integer zero and is ready to use.
type Z struct {
	v big.Int
}

// NewZ returns the Z representation of n.
func NewZ(n int64) Z {
	var z Z
	z.v.SetInt64(n)
	return z
}

// NewZFromBig returns the Z representation of n. The supplied big.Int is
// copied, not aliased.
func NewZFromBig(n *big.Int) Z {
	var z Z
	z.v.Set(n)
	return z
}

// Big returns a copy of the underlying big.Int magnitude-and-sign value.
func (z Z) Big() *big.Int {
	return new(big.Int).Set(&z.v)
}

// Sign returns -1, 0, or +1 depending on the sign of z.
func (z Z) Sign() int { return z.v.Sign() }

// BitLen returns the length of the absolute value of z in bits. BitLen(0)
// is 0.
func (z Z) BitLen() int { return z.v.BitLen() }

// Cmp compares z and other, returning -1, 0, or +1 as z <, ==, > other.
func (z Z) Cmp(other Z) int { return z.v.Cmp(&other.v) }

// Neg returns -z.
func (z Z) Neg() Z {
	var r Z
	r.v.Neg(&z.v)
	return r
}

// Add returns z + other.
func (z Z) Add(other Z) Z {
	var r Z
	r.v.Add(&z.v, &other.v)
	return r
}

// Sub returns z - other.
func (z Z) Sub(other Z) Z {
	var r Z
	r.v.Sub(&z.v, &other.v)
	return r
}

// Mul returns z * other.
func (z Z) Mul(other Z) Z {
	var r Z
	r.v.Mul(&z.v, &other.v)
	return r
}

// QuoRem returns the quotient and remainder of z / other, truncated
// toward zero (i.e. q*other + r == z, and r has the same sign as z or is
// zero), matching the consensus division rule. It returns
// ErrDivisionByZero if other is zero.
func (z Z) QuoRem(other Z) (q, r Z, err error) {
	if other.Sign() == 0 {
		return Z{}, Z{}, ErrDivisionByZero
	}
	var qv, rv big.Int
	qv.QuoRem(&z.v, &other.v, &rv)
	return Z{v: qv}, Z{v: rv}, nil
}

// Int64 narrows z to an int64. It fails with ErrOutOfRange if z lies
// outside [-2^63, 2^63-1].
func (z Z) Int64() (int64, error) {
	if !z.v.IsInt64() {
		return 0, ErrOutOfRange
	}
	return z.v.Int64(), nil
}

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) is 0.
func GCD(a, b Z) Z {
	var r Z
	r.v.GCD(nil, nil, new(big.Int).Abs(&a.v), new(big.Int).Abs(&b.v))
	return r
}

// serializeSize returns the number of bytes Serialize would write.
func (z Z) serializeSize() int {
	l := (z.v.BitLen() + 7) / 8
	return varIntSize(uint64(l)) + l
}

// varIntSize returns the number of bytes writeVarInt would emit for n.
func varIntSize(n uint64) int {
	size := 1
	for n > 0x7f {
		n = (n >> 7) - 1
		size++
	}
	return size
}

// Serialize writes the consensus wire form of z: VARINT(L) followed by L
// bytes of the little-endian magnitude of z, where L = ceil(bitlen(|z|)/8).
// The sign of z is not serialized — Deserialize always yields a
// non-negative Z. This magnitude-only wire form is a deliberate
// compatibility artifact inherited from the reference implementation; see
// DESIGN.md.
func (z Z) Serialize(w io.Writer) error {
	length := (z.v.BitLen() + 7) / 8
	if err := writeVarInt(w, uint64(length)); err != nil {
		return err
	}
	if length == 0 {
		return nil
	}

	// big.Int.Bytes returns the big-endian magnitude with no leading
	// zero byte; reverse it into the little-endian wire form.
	mag := new(big.Int).Abs(&z.v).Bytes()
	buf := make([]byte, length)
	for i, b := range mag {
		buf[length-1-i] = b
	}
	_, err := w.Write(buf)
	return err
}

// DeserializeZ reads a Z written by Serialize. The result is always
// non-negative.
func DeserializeZ(r io.Reader) (Z, error) {
	length, err := readVarInt(r)
	if err != nil {
		return Z{}, err
	}
	if length == 0 {
		return NewZ(0), nil
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Z{}, err
	}

	// Wire form is little-endian; big.Int.SetBytes wants big-endian.
	be := make([]byte, length)
	for i, b := range buf {
		be[length-1-uint64(i)] = b
	}

	var z Z
	z.v.SetBytes(be)
	return z, nil
}
