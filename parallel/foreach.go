// Copyright 2024 The phamt Authors
// This file is part of phamt.
//
// phamt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package parallel fans a trie.Map out across goroutines using the map's own
// Split, the "useful for parallel consumers" operation the core ships but
// never itself defines a consumer for.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/probeum/phamt/trie"
)

// ForEach visits every (key, value) pair of m, calling fn concurrently
// across up to workers goroutines. m is recursively split via Map.Split
// until at least workers submaps exist (or the map can no longer usefully
// be split further — Split never returns more than two parts per call, and
// a small or shallow map may bottom out before reaching workers). The first
// error returned by any fn call cancels the context the workers share
// (derived from ctx; ctx itself is not cancelled), so every worker stops
// before its next fn call, and that error is returned once every worker has
// stopped. A call to fn already in progress is not interrupted.
func ForEach[K comparable, V any](ctx context.Context, m *trie.Map[K, V], workers int, fn func(K, V) error) error {
	if workers < 1 {
		workers = 1
	}
	parts := splitInto(m, workers)

	g, gctx := errgroup.WithContext(ctx)
	for _, part := range parts {
		part := part
		g.Go(func() error {
			var iterErr error
			walkErr := part.Iterate(func(k K, v V) bool {
				select {
				case <-gctx.Done():
					return false
				default:
				}
				if err := fn(k, v); err != nil {
					iterErr = err
					return false
				}
				return true
			})
			if walkErr != nil {
				return walkErr
			}
			return iterErr
		})
	}
	return g.Wait()
}

// splitInto repeatedly splits m until at least `workers` submaps have been
// produced or no submap can be split any further (every remaining part is a
// single-entry or empty map, which Map.Split returns unchanged).
func splitInto[K comparable, V any](m *trie.Map[K, V], workers int) []*trie.Map[K, V] {
	parts := []*trie.Map[K, V]{m}
	for len(parts) < workers {
		progressed := false
		next := make([]*trie.Map[K, V], 0, len(parts)*2)
		for i, p := range parts {
			if len(next)+len(parts)-i >= workers {
				next = append(next, parts[i:]...)
				break
			}
			sub := p.Split()
			if len(sub) > 1 {
				progressed = true
			}
			next = append(next, sub...)
		}
		parts = next
		if !progressed {
			break
		}
	}
	return parts
}
