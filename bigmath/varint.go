// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigmath

import "io"

// writeVarInt writes n using the MSB-first, self-terminating variable
// length encoding used throughout this package's wire format: every byte
// but the last carries its continuation bit (0x80) set, and every byte
// after the first encodes a value already biased by +1 so that the
// encoding of any given integer is unique.
func writeVarInt(w io.Writer, n uint64) error {
	var tmp [10]byte
	length := 0
	for {
		flag := byte(0x00)
		if length != 0 {
			flag = 0x80
		}
		tmp[length] = byte(n&0x7f) | flag
		if n <= 0x7f {
			break
		}
		n = (n >> 7) - 1
		length++
	}

	for ; length >= 0; length-- {
		if _, err := w.Write(tmp[length : length+1]); err != nil {
			return err
		}
	}
	return nil
}

// readVarInt reads a value encoded by writeVarInt.
func readVarInt(r io.Reader) (uint64, error) {
	var n uint64
	var buf [1]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		n = (n << 7) | uint64(buf[0]&0x7f)
		if buf[0]&0x80 != 0 {
			n++
		} else {
			return n, nil
		}
	}
}
