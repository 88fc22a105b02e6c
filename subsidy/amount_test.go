// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package subsidy

import "testing"

func TestAmountFormat(t *testing.T) {
	tests := []struct {
		amount Amount
		unit   AmountUnit
		want   string
	}{
		{0, AmountFRC, "0 FRC"},
		{100000000, AmountFRC, "1 FRC"},
		{100000000, AmountSatoshi, "100000000 Satoshi"},
		{100000, AmountMilliFRC, "1 mFRC"},
		{-100000000, AmountFRC, "-1 FRC"},
	}
	for _, test := range tests {
		got := test.amount.Format(test.unit)
		if got != test.want {
			t.Errorf("Format(%d, %v) = %q, want %q", test.amount, test.unit, got, test.want)
		}
	}
}

func TestAmountString(t *testing.T) {
	if got, want := Amount(100000000).String(), "1 FRC"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewAmount(t *testing.T) {
	a, err := NewAmount(1.0)
	if err != nil {
		t.Fatalf("NewAmount(1.0): %v", err)
	}
	if a != 100000000 {
		t.Errorf("NewAmount(1.0) = %d, want 100000000", a)
	}
}
