// Copyright 2024 The phamt Authors
// This file is part of phamt.
//
// phamt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package trie

// nodeFilter keeps entries for which pred(k, v) != negate, returning
// (survivor, true) or (nil-equivalent, false) when nothing below nd
// survives. The bool result is an internal "nothing survived" sentinel; the
// public Map.Filter (map.go) folds a false result at the root into Empty.
func nodeFilter[K comparable, V any](nd node[K, V], pred func(K, V) bool, negate bool, lvl level) (node[K, V], bool) {
	switch n := nd.(type) {
	case emptyNode[K, V]:
		return n, false

	case *leafNode[K, V]:
		if pred(n.e.key, n.e.val) != negate {
			return n, true
		}
		return nil, false

	case *collisionNode[K, V]:
		var kept []entry[K, V]
		for _, e := range n.entries {
			if pred(e.key, e.val) != negate {
				kept = append(kept, e)
			}
		}
		switch len(kept) {
		case 0:
			return nil, false
		case 1:
			return newLeaf(kept[0]), true
		case len(n.entries):
			return n, true
		default:
			return newCollision(n.hash, kept), true
		}

	case *trieNode[K, V]:
		scratchCap := int(n.sz) + 6
		if const7x32 := 32 * 7; scratchCap > const7x32 {
			scratchCap = const7x32
		}
		survivors := make([]node[K, V], 0, scratchCap)
		var keptBits uint32
		var total uint32
		for i, child := range n.children {
			sv, ok := nodeFilter(child, pred, negate, nextLevel(lvl))
			if !ok {
				continue
			}
			survivors = append(survivors, sv)
			keptBits |= uint32(1) << uint(i)
			total += sv.size()
		}
		switch {
		case len(survivors) == 0:
			return nil, false
		case total == n.sz:
			return n, true
		case len(survivors) == 1 && !isTrie[K, V](survivors[0]):
			return survivors[0], true
		default:
			bitmap := n.bitmap
			if len(survivors) != len(n.children) {
				bitmap = selectBits(n.bitmap, keptBits)
			}
			return newTrieOf[K, V](bitmap, survivors, total), true
		}

	default:
		invariantViolation("nodeFilter: unknown node variant")
		panic("unreachable")
	}
}

// selectBits returns the subset of set bits of bitmap whose position among
// bitmap's set bits (0-based, LSB first) is itself set in positionMask. It
// implements filter's bit-selection post-pass: some child slots survived, so
// the resulting Trie's bitmap keeps only those original bits.
func selectBits(bitmap, positionMask uint32) uint32 {
	var result uint32
	pos := uint(0)
	for b := bitmap; b != 0; {
		bit := lsb(b)
		if positionMask&(uint32(1)<<pos) != 0 {
			result |= bit
		}
		b &^= bit
		pos++
	}
	return result
}
