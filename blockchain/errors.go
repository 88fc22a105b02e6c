// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "fmt"

// AssertError identifies an error that indicates an internal code
// consistency issue and should be treated as a critical and unrecoverable
// error. It mirrors the teacher's own AssertError, used for conditions
// that can only occur if a ChainView implementation violates its
// contract (e.g. a walk that should have reached a known ancestor finds
// none).
type AssertError string

// Error returns the assertion error as a human-readable string and
// satisfies the error interface.
func (e AssertError) Error() string {
	return fmt.Sprintf("assertion failed: %s", string(e))
}
