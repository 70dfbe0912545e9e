// Copyright 2024 The phamt Authors
// This file is part of phamt.

package keyhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoCachesCalls(t *testing.T) {
	calls := 0
	m := NewMemo(16, func(k string) uint32 {
		calls++
		return uint32(len(k))
	})

	require.EqualValues(t, 5, m.Hash("hello"))
	require.EqualValues(t, 5, m.Hash("hello"))
	require.EqualValues(t, 5, m.Hash("hello"))
	require.Equal(t, 1, calls, "a repeated key must hit the cache, not recompute")

	require.EqualValues(t, 3, m.Hash("abc"))
	require.Equal(t, 2, calls)
}

func TestMemoEnforcesMinimumSize(t *testing.T) {
	m := NewMemo(1, func(k int) uint32 { return uint32(k) })
	for i := 0; i < 16; i++ {
		m.Hash(i)
	}
	require.Equal(t, 16, m.Len())
}

func TestMemoAsFunc(t *testing.T) {
	m := NewMemo(16, func(k int) uint32 { return uint32(k * 7) })
	fn := m.AsFunc()
	require.EqualValues(t, 21, fn(3))
}
