// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package headerstore persists block index entries to a goleveldb
// database and exposes them through blockchain.ChainView, so the
// retargeter can be exercised against a real backing store instead of
// only an in-memory test double.
package headerstore

import (
	"encoding/binary"
	"errors"
	"sync"

	lru "github.com/hashicorp/golang-lru"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/frc-go/firtarget/blockchain"
)

// ErrNotFound is returned when a requested block hash has no entry in
// the store.
var ErrNotFound = errors.New("headerstore: block not found")

const recordSize = 4 + 8 + 4 + 1 + 32 // height, time, bits, hasPrev, prevHash

var tipKey = []byte("tip")

// Store is a goleveldb-backed implementation of blockchain.ChainView. It
// is safe for concurrent use: goleveldb itself serializes access to the
// database, and the decode cache is guarded by its own lock.
type Store struct {
	db    *leveldb.DB
	cache *lru.ARCCache

	mu sync.RWMutex
}

// Open opens (creating if necessary) a header store at path, with a
// decode cache holding up to cacheSize recently-touched entries.
func Open(path string, cacheSize int) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	cache, err := lru.NewARC(cacheSize)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, cache: cache}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put records (or overwrites) the entry for hash.
func (s *Store) Put(hash [32]byte, height int32, timestamp int64, bits uint32, prevHash [32]byte, hasPrev bool) error {
	buf := make([]byte, recordSize)
	binary.BigEndian.PutUint32(buf[0:4], uint32(height))
	binary.BigEndian.PutUint64(buf[4:12], uint64(timestamp))
	binary.BigEndian.PutUint32(buf[12:16], bits)
	if hasPrev {
		buf[16] = 1
	}
	copy(buf[17:49], prevHash[:])

	if err := s.db.Put(hash[:], buf, nil); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache.Remove(hash)
	s.mu.Unlock()
	return nil
}

// SetTip records hash as the current chain tip.
func (s *Store) SetTip(hash [32]byte) error {
	return s.db.Put(tipKey, hash[:], nil)
}

// Tip returns the current chain tip, implementing blockchain.ChainView.
// It returns nil if no tip has been set yet (the genesis case).
func (s *Store) Tip() blockchain.BlockIndex {
	raw, err := s.db.Get(tipKey, nil)
	if err != nil {
		return nil
	}
	var hash [32]byte
	copy(hash[:], raw)

	n, err := s.load(hash)
	if err != nil {
		return nil
	}
	return n
}

// load fetches and decodes the entry for hash, consulting the decode
// cache first.
func (s *Store) load(hash [32]byte) (*node, error) {
	s.mu.RLock()
	if cached, ok := s.cache.Get(hash); ok {
		s.mu.RUnlock()
		return cached.(*node), nil
	}
	s.mu.RUnlock()

	raw, err := s.db.Get(hash[:], nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(raw) != recordSize {
		return nil, errors.New("headerstore: corrupt record")
	}

	n := &node{
		store:  s,
		hash:   hash,
		height: int32(binary.BigEndian.Uint32(raw[0:4])),
		time:   int64(binary.BigEndian.Uint64(raw[4:12])),
		bits:   binary.BigEndian.Uint32(raw[12:16]),
	}
	n.hasPrev = raw[16] != 0
	copy(n.prevHash[:], raw[17:49])

	s.mu.Lock()
	s.cache.Add(hash, n)
	s.mu.Unlock()

	return n, nil
}

// node is the store's decoded blockchain.BlockIndex implementation.
type node struct {
	store *Store

	hash     [32]byte
	height   int32
	time     int64
	bits     uint32
	prevHash [32]byte
	hasPrev  bool
}

func (n *node) Height() int32 { return n.height }
func (n *node) Time() int64   { return n.time }
func (n *node) Bits() uint32  { return n.bits }

func (n *node) Prev() blockchain.BlockIndex {
	if !n.hasPrev {
		return nil
	}
	p, err := n.store.load(n.prevHash)
	if err != nil {
		return nil
	}
	return p
}
