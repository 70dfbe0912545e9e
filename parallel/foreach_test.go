// Copyright 2024 The phamt Authors
// This file is part of phamt.

package parallel

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probeum/phamt/trie"
)

func hashInt(k int) uint32 { return uint32(k) * 2654435761 }

func buildMap(n int) *trie.Map[int, int] {
	m := trie.New[int, int](hashInt)
	for i := 0; i < n; i++ {
		m = m.Insert(i, i*i)
	}
	return m
}

func TestForEachVisitsEveryEntry(t *testing.T) {
	m := buildMap(2000)

	var mu sync.Mutex
	seen := map[int]int{}
	err := ForEach(context.Background(), m, 8, func(k, v int) error {
		mu.Lock()
		seen[k] = v
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)
	require.EqualValues(t, m.Len(), len(seen))
	for k, v := range seen {
		require.Equal(t, k*k, v)
	}
}

func TestForEachPropagatesError(t *testing.T) {
	m := buildMap(500)
	boom := errors.New("boom")

	err := ForEach(context.Background(), m, 4, func(k, v int) error {
		if k == 7 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestForEachSmallMapSingleWorker(t *testing.T) {
	m := buildMap(1)
	count := 0
	err := ForEach(context.Background(), m, 16, func(int, int) error {
		count++
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestForEachEmptyMap(t *testing.T) {
	m := trie.New[int, int](hashInt)
	called := false
	err := ForEach(context.Background(), m, 4, func(int, int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.False(t, called)
}

func TestForEachTwoEntryMapDoesNotPanic(t *testing.T) {
	// A map built from exactly two keys whose mixed hashes diverge at level
	// 0 produces a 2-child root; ForEach's internal Split must contract that
	// down to its lone children rather than panicking.
	m := buildMap(2)

	var mu sync.Mutex
	seen := map[int]int{}
	var err error
	require.NotPanics(t, func() {
		err = ForEach(context.Background(), m, 4, func(k, v int) error {
			mu.Lock()
			seen[k] = v
			mu.Unlock()
			return nil
		})
	})
	require.NoError(t, err)
	require.EqualValues(t, m.Len(), len(seen))
}
