// Copyright 2024 The phamt Authors
// This file is part of phamt.
//
// phamt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package trie

import "math/bits"

// nodeMerge returns the union of left and right, resolving overlapping keys
// with resolver. resolver sees the left-hand entry as "existing" and the
// right-hand entry as "incoming", as if right were being inserted into left
// one key at a time — correct but not optimal for the Leaf/Collision cases,
// which fold their entries through the ordinary insert path rather than a
// bespoke structural merge for each pairing (see DESIGN.md).
func nodeMerge[K comparable, V any](left, right node[K, V], lvl level, resolver Resolver[K, V]) node[K, V] {
	if isEmpty[K, V](left) {
		return right
	}
	if isEmpty[K, V](right) {
		return left
	}

	leftTrie, leftIsTrie := left.(*trieNode[K, V])
	rightTrie, rightIsTrie := right.(*trieNode[K, V])

	switch {
	case leftIsTrie && rightIsTrie:
		return mergeTrieTrie(leftTrie, rightTrie, lvl, resolver)

	case leftIsTrie && !rightIsTrie:
		hm, entries := entriesOf(right)
		return foldEntriesInto(left, hm, entries, resolver, lvl)

	case !leftIsTrie && rightIsTrie:
		hm, entries := entriesOf(left)
		return foldEntriesInto(right, hm, entries, resolver.Invert(), lvl)

	default:
		hm, entries := entriesOf(right)
		return foldEntriesInto(left, hm, entries, resolver, lvl)
	}
}

// entriesOf extracts the (shared mixed hash, entries) pair out of a Leaf or
// Collision node.
func entriesOf[K comparable, V any](nd node[K, V]) (uint32, []entry[K, V]) {
	switch n := nd.(type) {
	case *leafNode[K, V]:
		return n.e.hash, []entry[K, V]{n.e}
	case *collisionNode[K, V]:
		return n.hash, n.entries
	default:
		invariantViolation("entriesOf: not a Leaf or Collision")
		panic("unreachable")
	}
}

// foldEntriesInto inserts each of entries (all sharing mixed hash hm) into
// base, in order, via the ordinary insert path — base plays "existing",
// each entry plays "incoming".
func foldEntriesInto[K comparable, V any](base node[K, V], hm uint32, entries []entry[K, V], resolver Resolver[K, V], lvl level) node[K, V] {
	result := base
	for _, e := range entries {
		result = nodeInsert(result, e.key, e.val, hm, &resolver, lvl)
	}
	return result
}

// mergeTrieTrie unions the two bitmaps, recursing only into slots occupied
// on both sides, and returns `left` or `right` unchanged (literally, by
// pointer) whenever every emitted child still matches that side's own
// children — the structural-sharing guarantee the whole package depends on.
func mergeTrieTrie[K comparable, V any](left, right *trieNode[K, V], lvl level, resolver Resolver[K, V]) node[K, V] {
	u := left.bitmap | right.bitmap
	n := popcount(u)
	children := make([]node[K, V], 0, n)

	canBeLeft := true
	canBeRight := true
	var sz uint32

	recognizedDefault := resolver.isDefault() || resolver.isDefaultInverted()

	for b := u; b != 0; {
		bit := lsb(b)
		b &^= bit
		idx := uint32(bits.TrailingZeros32(bit))

		inLeft := left.bitmap&bit != 0
		inRight := right.bitmap&bit != 0

		var child node[K, V]
		var matchesLeft, matchesRight bool

		switch {
		case inLeft && !inRight:
			child = left.children[left.pos(idx)]
			matchesLeft = true

		case !inLeft && inRight:
			child = right.children[right.pos(idx)]
			matchesRight = true

		default:
			lc := left.children[left.pos(idx)]
			rc := right.children[right.pos(idx)]
			if recognizedDefault && lc == rc {
				child = lc
				matchesLeft, matchesRight = true, true
			} else {
				child = nodeMerge(lc, rc, nextLevel(lvl), resolver)
				matchesLeft = child == lc
				matchesRight = child == rc
			}
		}

		if !matchesLeft {
			canBeLeft = false
		}
		if !matchesRight {
			canBeRight = false
		}
		sz += child.size()
		children = append(children, child)
	}

	switch {
	case canBeLeft:
		return left
	case canBeRight:
		return right
	default:
		return newTrieOf[K, V](u, children, sz)
	}
}
