// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigmath

import "errors"

// ErrOutOfRange is returned when narrowing a Z or Q to an int64 whose
// value does not fit in [-2^63, 2^63-1].
var ErrOutOfRange = errors.New("bigmath: value out of int64 range")

// ErrDivisionByZero is returned by any operation that would divide by a
// zero Z or construct a Q with a zero denominator.
var ErrDivisionByZero = errors.New("bigmath: division by zero")
