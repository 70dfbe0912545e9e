// Copyright 2024 The phamt Authors
// This file is part of phamt.

package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeMergeEmptySides(t *testing.T) {
	var empty node[int, int] = emptyNode[int, int]{}
	leaf := newLeaf(newEntry(1, 10, 5))

	got := nodeMerge[int, int](empty, leaf, 0, DefaultResolver[int, int]())
	require.Same(t, leaf, got.(*leafNode[int, int]))

	got = nodeMerge[int, int](leaf, empty, 0, DefaultResolver[int, int]())
	require.Same(t, leaf, got.(*leafNode[int, int]))
}

func TestNodeMergeTwoLeavesDistinctHashesBuildsTrie(t *testing.T) {
	a := newLeaf(newEntry(1, 10, 0b00001))
	b := newLeaf(newEntry(2, 20, 0b00010))
	got := nodeMerge[int, int](a, b, 0, DefaultResolver[int, int]())
	require.True(t, isTrie[int, int](got))
	require.EqualValues(t, 2, got.size())
}

func TestNodeMergeTwoLeavesSameKeyDefaultPrefersLeft(t *testing.T) {
	a := newLeaf(newEntry(1, 10, 5))
	b := newLeaf(newEntry(1, 20, 5))
	got := nodeMerge[int, int](a, b, 0, DefaultResolver[int, int]())
	leaf := got.(*leafNode[int, int])
	require.Equal(t, 10, leaf.e.val)
}

func TestNodeMergeLeafAndCollisionSameHash(t *testing.T) {
	leaf := newLeaf(newEntry(3, 30, 7))
	coll := newCollision(7, []entry[int, int]{newEntry(1, 10, 7), newEntry(2, 20, 7)})
	got := nodeMerge[int, int](leaf, coll, 0, DefaultResolver[int, int]())
	require.EqualValues(t, 3, got.size())
}

func TestMergeTrieTrieDisjointBitmapsUnionsSlots(t *testing.T) {
	leftChild := newLeaf(newEntry(1, 1, 0))
	left := &trieNode[int, int]{bitmap: 0b00001, children: []node[int, int]{leftChild}, sz: 1}
	rightChild := newLeaf(newEntry(2, 2, 1))
	right := &trieNode[int, int]{bitmap: 0b00010, children: []node[int, int]{rightChild}, sz: 1}

	got := mergeTrieTrie[int, int](left, right, 0, DefaultResolver[int, int]())
	merged := got.(*trieNode[int, int])
	require.EqualValues(t, 0b00011, merged.bitmap)
	require.EqualValues(t, 2, merged.sz)
}

func TestMergeTrieTrieOverlapPrefersLeftAndSharesIdentity(t *testing.T) {
	shared := newLeaf(newEntry(1, 1, 0))
	left := &trieNode[int, int]{bitmap: 0b00001, children: []node[int, int]{shared}, sz: 1}
	right := &trieNode[int, int]{bitmap: 0b00001, children: []node[int, int]{shared}, sz: 1}

	got := mergeTrieTrie[int, int](left, right, 0, DefaultResolver[int, int]())
	require.Same(t, left, got.(*trieNode[int, int]), "identical overlapping children under the default resolver must return left unchanged")
}
