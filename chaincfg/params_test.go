// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "testing"

func TestByNameKnownNetworks(t *testing.T) {
	tests := []struct {
		name string
		want Params
	}{
		{"mainnet", MainNetParams},
		{"testnet", TestNetParams},
		{"regtest", RegTestParams},
	}
	for _, test := range tests {
		got, ok := ByName(test.name)
		if !ok {
			t.Fatalf("ByName(%q) not found", test.name)
		}
		if got.Name != test.want.Name || got.GenesisBits != test.want.GenesisBits {
			t.Errorf("ByName(%q) = %+v, want %+v", test.name, got, test.want)
		}
	}
}

func TestByNameUnknownNetwork(t *testing.T) {
	if _, ok := ByName("nonexistent"); ok {
		t.Errorf("ByName of an unknown network should report false")
	}
}

func TestPresetGenesisBitsDecodeWithinPowLimit(t *testing.T) {
	for _, params := range []Params{MainNetParams, TestNetParams, RegTestParams} {
		genesisTarget := powLimitFromBits(params.GenesisBits)
		if genesisTarget.Cmp(params.Retarget.PowLimit) > 0 {
			t.Errorf("%s: genesis target exceeds its own pow_limit", params.Name)
		}
	}
}

func TestRegTestSkipsProofOfWorkCheck(t *testing.T) {
	if !RegTestParams.Retarget.SkipPoWCheck {
		t.Errorf("regtest should skip proof-of-work checks")
	}
}
