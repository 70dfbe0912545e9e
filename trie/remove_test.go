// Copyright 2024 The phamt Authors
// This file is part of phamt.

package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeRemoveFromEmptyIsNoop(t *testing.T) {
	var empty node[int, int] = emptyNode[int, int]{}
	got := nodeRemove[int, int](empty, 1, 5, 0)
	require.Equal(t, empty, got)
}

func TestNodeRemoveLeafMatch(t *testing.T) {
	leaf := newLeaf(newEntry(1, 10, 5))
	got := nodeRemove[int, int](leaf, 1, 5, 0)
	require.True(t, isEmpty[int, int](got))
}

func TestNodeRemoveLeafMismatchReturnsSelf(t *testing.T) {
	leaf := newLeaf(newEntry(1, 10, 5))
	got := nodeRemove[int, int](leaf, 2, 5, 0)
	require.Same(t, leaf, got.(*leafNode[int, int]))
}

func TestNodeRemoveCollisionDemotesToLeaf(t *testing.T) {
	coll := newCollision(7, []entry[int, int]{newEntry(1, 10, 7), newEntry(2, 20, 7)})
	got := nodeRemove[int, int](coll, 1, 7, 0)
	leaf, ok := got.(*leafNode[int, int])
	require.True(t, ok)
	require.Equal(t, 2, leaf.e.key)
	require.Equal(t, 20, leaf.e.val)
}

func TestNodeRemoveCollisionShrinksWithoutDemotion(t *testing.T) {
	coll := newCollision(7, []entry[int, int]{
		newEntry(1, 10, 7), newEntry(2, 20, 7), newEntry(3, 30, 7),
	})
	got := nodeRemove[int, int](coll, 2, 7, 0)
	newColl, ok := got.(*collisionNode[int, int])
	require.True(t, ok)
	require.Len(t, newColl.entries, 2)
}

func TestNodeRemoveTrieContractsToEmptyOnLastChild(t *testing.T) {
	child := newLeaf(newEntry(1, 10, 0))
	top := &trieNode[int, int]{bitmap: 0b00001, children: []node[int, int]{child}, sz: 1}
	got := nodeRemove[int, int](top, 1, 0, 0)
	require.True(t, isEmpty[int, int](got))
}

func TestNodeRemoveTrieContractsSingleSurvivorToLeaf(t *testing.T) {
	// Two leaves at level 0, slots 0 and 1; removing one must contract the
	// trieNode away entirely, returning the remaining leaf directly.
	child0 := newLeaf(newEntry(1, 10, 0))
	child1 := newLeaf(newEntry(2, 20, 1))
	top := &trieNode[int, int]{bitmap: 0b00011, children: []node[int, int]{child0, child1}, sz: 2}

	got := nodeRemove[int, int](top, 1, 0, 0)
	leaf, ok := got.(*leafNode[int, int])
	require.True(t, ok)
	require.Equal(t, 2, leaf.e.key)
}

func TestNodeRemoveAbsentKeyReturnsSelf(t *testing.T) {
	child0 := newLeaf(newEntry(1, 10, 0))
	child1 := newLeaf(newEntry(2, 20, 1))
	top := &trieNode[int, int]{bitmap: 0b00011, children: []node[int, int]{child0, child1}, sz: 2}

	got := nodeRemove[int, int](top, 99, 5, 0)
	require.Same(t, top, got.(*trieNode[int, int]))
}
