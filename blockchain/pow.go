// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/frc-go/firtarget/compact"
)

// HashToTarget converts a chainhash.Hash into a compact.Target for
// proof-of-work comparison. A Hash is stored little-endian; the target
// comparison treats the bytes as a big-endian magnitude, so the bytes
// must be reversed first.
func HashToTarget(hash *chainhash.Hash) compact.Target {
	var buf chainhash.Hash
	copy(buf[:], hash[:])
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return compact.FromBig(new(big.Int).SetBytes(buf[:]))
}

// CheckProofOfWork reports whether hash satisfies the difficulty target
// encoded by nBits. If params.SkipPoWCheck is set (regression-test
// networks, where blocks aren't actually mined) it always returns true.
// An nBits value that decodes to zero, negative, overflowing, or above
// the network's proof-of-work limit is always rejected.
func CheckProofOfWork(hash *chainhash.Hash, nBits uint32, params ChainParams) bool {
	if params.SkipPoWCheck {
		return true
	}

	target, negative, overflow := compact.SetCompact(nBits)
	if negative || overflow || target.Sign() == 0 {
		log.Debugf("CheckProofOfWork: nBits %08x below minimum work", nBits)
		return false
	}
	if target.Cmp(params.PowLimit) > 0 {
		log.Debugf("CheckProofOfWork: nBits %08x above proof-of-work limit", nBits)
		return false
	}

	hashTarget := HashToTarget(hash)
	if hashTarget.Cmp(target) > 0 {
		log.Debugf("CheckProofOfWork: hash doesn't match nBits %08x", nBits)
		return false
	}
	return true
}

// GetBlockProof returns the amount of work represented by nBits: the
// expected number of hashes required to find a block whose hash
// satisfies this difficulty, computed exactly as
// floor(2^256 / (target+1)). Invalid or zero nBits contribute no work,
// so chain-work accumulation stays well-defined even across a corrupt
// header.
func GetBlockProof(nBits uint32) compact.Target {
	target, negative, overflow := compact.SetCompact(nBits)
	if negative || overflow || target.Sign() == 0 {
		return compact.FromBig(new(big.Int))
	}

	// 2**256 / (target+1) == (~target / (target+1)) + 1, since 2**256
	// can't be represented directly in 256 bits but is at least as large
	// as target+1.
	denom := target.AddUint64(1)
	return target.Not().QuoTarget(denom).AddUint64(1)
}
