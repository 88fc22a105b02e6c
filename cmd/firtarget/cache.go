// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var bucketResults = []byte("results_by_key")

// resultCache memoizes GetNextWorkRequired results keyed by
// (tip height, candidate time), so repeated runs against an unchanged
// header store skip the walk back through the retarget window. This is
// purely an optimization: a cache miss or a disabled cache changes
// nothing about the computed answer.
type resultCache struct {
	db *bolt.DB
}

// openResultCache opens (creating if necessary) a bbolt-backed
// memoization cache at path.
func openResultCache(path string) (*resultCache, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open result cache: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketResults)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &resultCache{db: db}, nil
}

func (c *resultCache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func cacheKey(tipHeight int32, candidateTime int64) []byte {
	key := make([]byte, 4+8)
	binary.BigEndian.PutUint32(key[0:4], uint32(tipHeight))
	binary.BigEndian.PutUint64(key[4:12], uint64(candidateTime))
	return key
}

// Get returns the memoized nBits for (tipHeight, candidateTime), if any.
func (c *resultCache) Get(tipHeight int32, candidateTime int64) (nBits uint32, ok bool) {
	if c == nil {
		return 0, false
	}
	key := cacheKey(tipHeight, candidateTime)
	err := c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketResults).Get(key)
		if len(v) == 4 {
			nBits = binary.BigEndian.Uint32(v)
			ok = true
		}
		return nil
	})
	if err != nil {
		return 0, false
	}
	return nBits, ok
}

// Put records the nBits computed for (tipHeight, candidateTime).
func (c *resultCache) Put(tipHeight int32, candidateTime int64, nBits uint32) error {
	if c == nil {
		return nil
	}
	key := cacheKey(tipHeight, candidateTime)
	val := make([]byte, 4)
	binary.BigEndian.PutUint32(val, nBits)
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketResults).Put(key, val)
	})
}
