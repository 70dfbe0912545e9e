// Copyright 2024 The phamt Authors
// This file is part of phamt.
//
// phamt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package trie

import (
	"fmt"
	"reflect"
	"strings"
)

// node is the sum type of the four map value shapes: Empty, Leaf, Collision,
// Trie. It is never exposed across the package boundary; Map is the public
// handle.
type node[K comparable, V any] interface {
	// size is the number of entries reachable below this node. O(1) for
	// every variant: 0 for empty, 1 for a leaf, len(entries) for a
	// collision, and a field maintained incrementally for a trie.
	size() uint32

	// fstring renders an indented debug tree rooted at this node.
	fstring(ind string) string
}

// emptyNode is the unique "no entries" variant. It is zero-sized so every
// instantiation of Map[K,V] can construct it for free; it participates in no
// identity-sharing checks because callers special-case it via type switch
// before any such check would run.
type emptyNode[K comparable, V any] struct{}

func (emptyNode[K, V]) size() uint32            { return 0 }
func (emptyNode[K, V]) fstring(string) string   { return "<empty>" }

// leafNode holds exactly one entry. A pointer type so the interface value's
// identity is meaningful to the structural-sharing checks in update.go,
// remove.go and merge.go.
type leafNode[K comparable, V any] struct {
	e entry[K, V]
}

func newLeaf[K comparable, V any](e entry[K, V]) *leafNode[K, V] {
	return &leafNode[K, V]{e: e}
}

func (n *leafNode[K, V]) size() uint32 { return 1 }

func (n *leafNode[K, V]) fstring(ind string) string {
	return fmt.Sprintf("{%v: %v}", n.e.key, n.e.val)
}

// collisionNode holds two or more entries that share a full 32-bit mixed
// hash. entries is ordered; within it keys are pairwise distinct.
type collisionNode[K comparable, V any] struct {
	hash    uint32
	entries []entry[K, V]
}

func newCollision[K comparable, V any](hm uint32, entries []entry[K, V]) *collisionNode[K, V] {
	if len(entries) < 2 {
		panic("trie: collision node built with fewer than 2 entries")
	}
	return &collisionNode[K, V]{hash: hm, entries: entries}
}

func (n *collisionNode[K, V]) size() uint32 { return uint32(len(n.entries)) }

func (n *collisionNode[K, V]) fstring(ind string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("collision(%#x)[\n", n.hash))
	for _, e := range n.entries {
		b.WriteString(ind + "  ")
		b.WriteString(fmt.Sprintf("%v: %v\n", e.key, e.val))
	}
	b.WriteString(ind + "]")
	return b.String()
}

// find returns the index of the entry matching k within n, or -1.
func (n *collisionNode[K, V]) find(k K) int {
	for i := range n.entries {
		if n.entries[i].key == k {
			return i
		}
	}
	return -1
}

// trieNode is a non-empty internal node: a 32-slot sparse vector indexed by
// a 5-bit hash slice at this node's level, encoded as a popcount bitmap plus
// a packed children array. It must never violate tree contraction: children
// must never number exactly 1 unless that single child is itself a
// *trieNode.
type trieNode[K comparable, V any] struct {
	bitmap   uint32
	children []node[K, V]
	sz       uint32
}

func (n *trieNode[K, V]) size() uint32 { return n.sz }

func (n *trieNode[K, V]) fstring(ind string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("trie(%#08x, size=%d)[\n", n.bitmap, n.sz))
	for i, c := range n.children {
		b.WriteString(ind + "  ")
		b.WriteString(fmt.Sprintf("%d: %s\n", i, c.fstring(ind+"  ")))
	}
	b.WriteString(ind + "]")
	return b.String()
}

// hasSlot reports whether the 5-bit index idx is occupied.
func (n *trieNode[K, V]) hasSlot(idx uint32) bool {
	return n.bitmap&(uint32(1)<<idx) != 0
}

// pos translates a logical 5-bit slot index into the physical position in
// n.children, i.e. the number of occupied slots before idx.
func (n *trieNode[K, V]) pos(idx uint32) int {
	mask := uint32(1)<<idx - 1
	return popcount(n.bitmap & mask)
}

// isTrie reports whether nd is a *trieNode, used by the tree-contraction
// checks that must never leave a Trie holding a single non-Trie child.
func isTrie[K comparable, V any](nd node[K, V]) bool {
	_, ok := nd.(*trieNode[K, V])
	return ok
}

func isEmpty[K comparable, V any](nd node[K, V]) bool {
	_, ok := nd.(emptyNode[K, V])
	return ok
}

// newTrieOf builds a well-formed *trieNode from an explicit bitmap and
// children slice, enforcing the "never a single non-Trie child" invariant by
// panicking if asked to build one — every call site must itself avoid that
// shape by contracting first, so tripping this is a programmer error.
func newTrieOf[K comparable, V any](bitmap uint32, children []node[K, V], sz uint32) node[K, V] {
	if len(children) == 1 && !isTrie[K, V](children[0]) {
		invariantViolation("attempted to build a Trie with a single non-Trie child")
	}
	return &trieNode[K, V]{bitmap: bitmap, children: children, sz: sz}
}

// invariantViolation reports a programmer error: an internal invariant the
// algorithms assume was about to be broken. These are not
// runtime-recoverable conditions.
func invariantViolation(msg string) {
	panic("trie: invariant violation: " + msg)
}

// valuesIdentical reports whether a and b are indistinguishable for the
// purpose of the "return self, no new allocation" sharing shortcuts. V is
// unconstrained (any), so two values can only be compared this way when
// their dynamic type is itself comparable; for slices, maps, funcs and the
// like the shortcut simply does not fire, which is always safe since
// correctness never depends on taking it.
func valuesIdentical[V any](a, b V) bool {
	ta := reflect.TypeOf(a)
	tb := reflect.TypeOf(b)
	if ta == nil || tb == nil {
		return ta == tb
	}
	if ta != tb || !ta.Comparable() {
		return false
	}
	return any(a) == any(b)
}
