// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigmath

import (
	"bytes"
	"testing"
)

func TestVarIntRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0x7f, 0x80, 0x3fff, 0x4000, 1 << 20, 1 << 40, ^uint64(0)}
	for _, n := range values {
		var buf bytes.Buffer
		if err := writeVarInt(&buf, n); err != nil {
			t.Fatalf("writeVarInt(%d): %v", n, err)
		}
		got, err := readVarInt(&buf)
		if err != nil {
			t.Fatalf("readVarInt(%d): %v", n, err)
		}
		if got != n {
			t.Errorf("round trip %d: got %d", n, got)
		}
	}
}

func TestVarIntSizeMatchesEncodedLength(t *testing.T) {
	values := []uint64{0, 0x7f, 0x80, 1 << 20, 1 << 40}
	for _, n := range values {
		var buf bytes.Buffer
		if err := writeVarInt(&buf, n); err != nil {
			t.Fatalf("writeVarInt(%d): %v", n, err)
		}
		if got, want := buf.Len(), varIntSize(n); got != want {
			t.Errorf("varIntSize(%d) = %d, encoded length = %d", n, want, got)
		}
	}
}
