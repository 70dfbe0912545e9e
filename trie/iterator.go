// Copyright 2024 The phamt Authors
// This file is part of phamt.
//
// phamt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package trie

// nodeIterate walks nd depth-first, visiting sibling slots in ascending
// 5-bit-index order (which matches physical children-array order) and
// Collision entries in their stored order. It stops early, without walking
// further, the first time sink returns false. The iteration order is
// deterministic given the tree's structure but is explicitly not key order.
func nodeIterate[K comparable, V any](nd node[K, V], sink func(K, V) bool) bool {
	switch n := nd.(type) {
	case emptyNode[K, V]:
		return true

	case *leafNode[K, V]:
		return sink(n.e.key, n.e.val)

	case *collisionNode[K, V]:
		for _, e := range n.entries {
			if !sink(e.key, e.val) {
				return false
			}
		}
		return true

	case *trieNode[K, V]:
		for _, c := range n.children {
			if !nodeIterate(c, sink) {
				return false
			}
		}
		return true

	default:
		invariantViolation("nodeIterate: unknown node variant")
		panic("unreachable")
	}
}

// nodeFirst returns an arbitrary (but deterministic, given the same tree)
// entry from nd, or ok=false if nd is empty. It is the basis of Map.First,
// which turns a false result into ErrEmptyMap.
func nodeFirst[K comparable, V any](nd node[K, V]) (k K, v V, ok bool) {
	nodeIterate(nd, func(kk K, vv V) bool {
		k, v, ok = kk, vv, true
		return false
	})
	return
}
