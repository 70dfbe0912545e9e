// Copyright 2024 The phamt Authors
// This file is part of phamt.
//
// phamt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package trie

import "reflect"

// Map is the public, immutable handle onto a persistent HAMT keyed by K. The
// zero value is not usable; construct one with New. Every operation that
// would "mutate" the map instead returns a new *Map, sharing as much of the
// existing node graph as possible with its inputs.
type Map[K comparable, V any] struct {
	root node[K, V]
	hash func(K) uint32
}

// Option configures a Map at construction time.
type Option[K comparable, V any] func(*Map[K, V])

// New creates an empty map. hash supplies the raw (pre-mix) hash for a key;
// eq is fixed to Go's built-in == over the comparable constraint, which is
// reflexive, symmetric and transitive by language guarantee, satisfying the
// eq contract any hash/eq pair of collaborators must satisfy.
func New[K comparable, V any](hash func(K) uint32, opts ...Option[K, V]) *Map[K, V] {
	m := &Map[K, V]{root: emptyNode[K, V]{}, hash: hash}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Map[K, V]) mixedHash(k K) uint32 {
	return mix(m.hash(k))
}

func (m *Map[K, V]) derive(root node[K, V]) *Map[K, V] {
	if root == m.root {
		return m
	}
	return &Map[K, V]{root: root, hash: m.hash}
}

// Len is the number of entries in m, an O(1) lookup.
func (m *Map[K, V]) Len() uint32 {
	return m.root.size()
}

// Get returns the value stored for k, if any.
func (m *Map[K, V]) Get(k K) (V, bool) {
	return nodeGet(m.root, k, m.mixedHash(k), 0)
}

// Contains reports whether k is present in m.
func (m *Map[K, V]) Contains(k K) bool {
	return nodeContains(m.root, k, m.mixedHash(k), 0)
}

// Insert returns a map with k bound to v, replacing any existing binding for
// k. If v is indistinguishable from the value already stored (see
// valuesIdentical), m itself is returned unchanged.
func (m *Map[K, V]) Insert(k K, v V) *Map[K, V] {
	hm := m.mixedHash(k)
	newRoot := nodeInsert(m.root, k, v, hm, nil, 0)
	return m.derive(newRoot)
}

// InsertWith binds k to v, but on a colliding key calls resolver with the
// existing entry first and the new (k, v) second, keeping whatever entry it
// returns. A resolver panic becomes a *ResolverFault; m is never modified
// either way.
func (m *Map[K, V]) InsertWith(k K, v V, resolver Resolver[K, V]) (result *Map[K, V], err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, newResolverFault(r)
		}
	}()
	hm := m.mixedHash(k)
	newRoot := nodeInsert(m.root, k, v, hm, &resolver, 0)
	return m.derive(newRoot), nil
}

// Remove returns a map without a binding for k. If k was absent, m itself is
// returned unchanged.
func (m *Map[K, V]) Remove(k K) *Map[K, V] {
	hm := m.mixedHash(k)
	newRoot := nodeRemove(m.root, k, hm, 0)
	return m.derive(newRoot)
}

// Iterate visits every (key, value) pair in m in the deterministic — but not
// key-ordered — order, stopping early the first time
// fn returns false. A panicking fn becomes a *ConsumerFault.
func (m *Map[K, V]) Iterate(fn func(K, V) bool) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newConsumerFault(r)
		}
	}()
	nodeIterate(m.root, fn)
	return nil
}

// All adapts Iterate to the standard range-over-func shape so callers can
// write `for k, v := range m.All() { ... }`. Any panic from the loop body
// propagates normally, as with any range-over-func iterator.
func (m *Map[K, V]) All() func(yield func(K, V) bool) {
	return func(yield func(K, V) bool) {
		nodeIterate(m.root, yield)
	}
}

// First returns an arbitrary entry from m — useful when a caller wants any
// binding without materializing the whole iteration — or ErrEmptyMap if m
// has no entries.
func (m *Map[K, V]) First() (k K, v V, err error) {
	k, v, ok := nodeFirst(m.root)
	if !ok {
		return k, v, ErrEmptyMap
	}
	return k, v, nil
}

// Filter returns a map retaining only the entries for which pred(k, v) !=
// negate. A panicking pred becomes a *ConsumerFault.
func (m *Map[K, V]) Filter(pred func(K, V) bool, negate bool) (result *Map[K, V], err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, newConsumerFault(r)
		}
	}()
	survivor, ok := nodeFilter(m.root, pred, negate, 0)
	if !ok {
		return m.derive(emptyNode[K, V]{}), nil
	}
	return m.derive(survivor), nil
}

// Merge returns the union of m and other, resolving overlapping keys with
// resolver (DefaultResolver() for "prefer m's entry"). m and other
// must share the same hash function; Merge does not verify this, mirroring
// the core's general trust in hash/eq as well-behaved collaborators. A
// resolver panic becomes a *ResolverFault.
func (m *Map[K, V]) Merge(other *Map[K, V], resolver Resolver[K, V]) (result *Map[K, V], err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, newResolverFault(r)
		}
	}()
	newRoot := nodeMerge(m.root, other.root, 0, resolver)
	switch {
	case newRoot == m.root:
		return m, nil
	case newRoot == other.root:
		return other, nil
	default:
		return m.derive(newRoot), nil
	}
}

// Split partitions m into one or two maps whose union equals m, useful for
// parallel consumers (see the parallel package). The exact partition is
// implementation-defined but stable given the same tree.
func (m *Map[K, V]) Split() []*Map[K, V] {
	parts := nodeSplit(m.root)
	result := make([]*Map[K, V], len(parts))
	for i, p := range parts {
		result[i] = m.derive(p)
	}
	return result
}

// Equal reports whether m and other contain the same key/value pairs,
// comparing values with reflect.DeepEqual. It is the Map-level equality
// this package's correctness properties are quantified over, and lets tests hand a Map
// straight to github.com/google/go-cmp/cmp (which honors an Equal method
// satisfying this signature) without reflecting into unexported node
// internals.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if m.Len() != other.Len() {
		return false
	}
	equal := true
	_ = m.Iterate(func(k K, v V) bool {
		ov, ok := other.Get(k)
		if !ok || !reflect.DeepEqual(v, ov) {
			equal = false
			return false
		}
		return true
	})
	return equal
}
