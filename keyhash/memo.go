// Copyright 2024 The phamt Authors
// This file is part of phamt.
//
// phamt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package keyhash memoizes an expensive Map hash function behind a bounded
// LRU, for callers whose K is cheap to compare but costly to hash (a large
// struct, a parsed path, anything trie.New would otherwise re-hash on every
// Get/Insert/Remove).
package keyhash

import (
	lru "github.com/hashicorp/golang-lru"
)

// Memo wraps an underlying hash function with a bounded least-recently-used
// cache, extending hashicorp/golang-lru the same way vechain-thor's own
// cache.LRU type does.
type Memo[K comparable] struct {
	*lru.Cache
	underlying func(K) uint32
}

// NewMemo builds a Memo caching up to size most-recently-used keys' hashes.
// Sizes below 16 are raised to 16, matching the floor vechain-thor's LRU
// wrapper itself enforces.
func NewMemo[K comparable](size int, underlying func(K) uint32) *Memo[K] {
	if size < 16 {
		size = 16
	}
	cache, _ := lru.New(size)
	return &Memo[K]{Cache: cache, underlying: underlying}
}

// Hash returns the memoized hash of k, computing and caching it on a miss.
func (m *Memo[K]) Hash(k K) uint32 {
	if v, ok := m.Get(k); ok {
		return v.(uint32)
	}
	h := m.underlying(k)
	m.Add(k, h)
	return h
}

// AsFunc adapts m to the `func(K) uint32` shape trie.New expects, so a Memo
// can be plugged straight into construction: trie.New(memo.AsFunc()).
func (m *Memo[K]) AsFunc() func(K) uint32 {
	return m.Hash
}
