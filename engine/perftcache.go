// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// perftcache.go implements a two-way-bucket table keyed by Zobrist hash,
// memoizing the node count of a (position, depth) pair during perft.

package engine

import "unsafe"

// perftEntry is a value in a PerftCache.
type perftEntry struct {
	lock  uint32 // disambiguates hash-table collisions.
	depth int8
	nodes uint64
}

// PerftCache memoizes perft(position, depth) results, trading memory for
// the repeated work of re-expanding transposed positions. It is not a
// search transposition table: every stored value is an exact node count,
// never a bound.
type PerftCache struct {
	table []perftEntry
	mask  uint32
}

// NewPerftCache builds a cache that takes up to sizeMB megabytes, rounded
// down to the nearest power-of-two number of entries.
func NewPerftCache(sizeMB int) *PerftCache {
	entrySize := uint64(unsafe.Sizeof(perftEntry{}))
	size := uint64(sizeMB) << 20 / entrySize
	for size&(size-1) != 0 {
		size &= size - 1
	}
	if size == 0 {
		size = 1
	}
	return &PerftCache{
		table: make([]perftEntry, size),
		mask:  uint32(size - 1),
	}
}

// split splits a Zobrist hash into a collision lock and two candidate
// bucket indexes.
func split(hash uint64, mask uint32) (lock, h0, h1 uint32) {
	hi := uint32(hash >> 32)
	lo := uint32(hash)
	h0 = lo & mask
	h1 = h0 ^ (lo >> 29)
	return hi, h0, h1
}

// Get returns the cached node count for hash at depth, if present.
func (c *PerftCache) Get(hash uint64, depth int) (uint64, bool) {
	lock, h0, h1 := split(hash, c.mask)
	if e := &c.table[h0]; e.lock == lock && int(e.depth) == depth {
		return e.nodes, true
	}
	if e := &c.table[h1]; e.lock == lock && int(e.depth) == depth {
		return e.nodes, true
	}
	return 0, false
}

// Put stores the node count for hash at depth, preferring to evict the
// shallower of the two candidate buckets.
func (c *PerftCache) Put(hash uint64, depth int, nodes uint64) {
	lock, h0, h1 := split(hash, c.mask)
	entry := perftEntry{lock: lock, depth: int8(depth), nodes: nodes}
	if c.table[h0].depth <= c.table[h1].depth {
		c.table[h0] = entry
	} else {
		c.table[h1] = entry
	}
}

// Size returns the number of entries in the table.
func (c *PerftCache) Size() int { return int(c.mask) + 1 }

// Clear removes all entries.
func (c *PerftCache) Clear() {
	for i := range c.table {
		c.table[i] = perftEntry{}
	}
}
