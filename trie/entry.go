// Copyright 2024 The phamt Authors
// This file is part of phamt.
//
// phamt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package trie

// entry is a single (key, value) pair together with its mixed hash, cached
// so it never needs recomputing while the trie restructures around it. The
// pair is built once at construction time and never mutated afterward,
// sidestepping any lazy-cache race entirely (see DESIGN.md).
type entry[K comparable, V any] struct {
	key  K
	val  V
	hash uint32
}

func newEntry[K comparable, V any](k K, v V, hm uint32) entry[K, V] {
	return entry[K, V]{key: k, val: v, hash: hm}
}
