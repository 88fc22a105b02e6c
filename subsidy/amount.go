// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subsidy

import (
	"math"
	"strconv"
)

// AmountUnit describes a unit of a coin's monetary amount, adapted from
// the teacher's bteutil.AmountUnit: an exponent of ten relative to the
// base Satoshi unit.
type AmountUnit int

// These constants define the recognized units of a coin amount, with
// AmountFRC defined as zero so that the zero value of AmountUnit is the
// whole-coin unit.
const (
	AmountMegaFRC  AmountUnit = 6
	AmountKiloFRC  AmountUnit = 3
	AmountFRC      AmountUnit = 0
	AmountMilliFRC AmountUnit = -3
	AmountMicroFRC AmountUnit = -6
	AmountSatoshi  AmountUnit = -8
)

// String returns the unit as a string, matching the teacher's
// AmountUnit.String behavior.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaFRC:
		return "MFRC"
	case AmountKiloFRC:
		return "kFRC"
	case AmountFRC:
		return "FRC"
	case AmountMilliFRC:
		return "mFRC"
	case AmountMicroFRC:
		return "µFRC"
	case AmountSatoshi:
		return "Satoshi"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " FRC"
	}
}

// Amount represents a quantity of satoshis, the base monetary unit.
// Adapted from the teacher's bteutil.Amount: same integer representation
// and formatting behavior, renamed to this network's ticker.
type Amount int64

// round converts a floating point value to the nearest integer,
// preserved verbatim from the teacher's rounding helper since subsidy
// values can arise from BlockValue narrowed through float64 display
// paths (never through the consensus path itself, which stays exact).
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount returns an Amount for the exact FRC representation of f. It
// errors if f is NaN or infinite; it does not check that f*1e8 fits in an
// int64 Satoshi count.
func NewAmount(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errInvalidAmount
	}
	return round(f * 1e8), nil
}

var errInvalidAmount = amountError("invalid bitcoin amount")

type amountError string

func (e amountError) Error() string { return string(e) }

// ToUnit converts a monetary amount counted in satoshis to a floating
// point value representing an amount of the given unit.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToFRC is a convenience alias for ToUnit(AmountFRC).
func (a Amount) ToFRC() float64 {
	return a.ToUnit(AmountFRC)
}

// Format formats a monetary amount counted in satoshis as a string for
// a given unit, with trailing zeros trimmed.
func (a Amount) Format(u AmountUnit) string {
	units := " " + u.String()
	formatted := strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64)
	return formatted + units
}

// String is the equivalent of calling Format with AmountFRC.
func (a Amount) String() string {
	return a.Format(AmountFRC)
}
