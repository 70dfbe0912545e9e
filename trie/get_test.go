// Copyright 2024 The phamt Authors
// This file is part of phamt.

package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeGetAcrossVariants(t *testing.T) {
	var empty node[int, int] = emptyNode[int, int]{}
	_, ok := nodeGet(empty, 1, 1, 0)
	require.False(t, ok)

	leaf := newLeaf(newEntry(1, 100, 5))
	v, ok := nodeGet[int, int](leaf, 1, 5, 0)
	require.True(t, ok)
	require.Equal(t, 100, v)
	_, ok = nodeGet[int, int](leaf, 2, 5, 0)
	require.False(t, ok, "same hash, different key must miss")
	_, ok = nodeGet[int, int](leaf, 1, 6, 0)
	require.False(t, ok, "different hash must miss even for the same key's leaf")

	coll := newCollision(7, []entry[int, int]{newEntry(1, 10, 7), newEntry(2, 20, 7)})
	v, ok = nodeGet[int, int](coll, 2, 7, 0)
	require.True(t, ok)
	require.Equal(t, 20, v)
	_, ok = nodeGet[int, int](coll, 3, 7, 0)
	require.False(t, ok)
}

func TestNodeContains(t *testing.T) {
	leaf := newLeaf(newEntry(1, 100, 5))
	require.True(t, nodeContains[int, int](leaf, 1, 5, 0))
	require.False(t, nodeContains[int, int](leaf, 2, 5, 0))
}
