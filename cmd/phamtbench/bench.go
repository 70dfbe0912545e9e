// Copyright 2024 The phamt Authors
// This file is part of phamt.
//
// phamt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	fuzz "github.com/google/gofuzz"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/probeum/phamt/keyhash"
	"github.com/probeum/phamt/parallel"
	"github.com/probeum/phamt/trie"
)

// stringHash is the raw (pre-mix) hash handed to trie.New for this
// benchmark's string keys. It is deliberately not memoized so `-memo-hash`
// can show the difference keyhash.Memo makes.
func stringHash(s string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s))
	return h.Sum32()
}

type benchRow struct {
	size        int
	insert      time.Duration
	merge       time.Duration
	filter      time.Duration
	parallelFor time.Duration
}

func randomPairs(size int) ([]string, []int) {
	f := fuzz.New().NilChance(0).NumElements(size, size)
	var keys []string
	f.Fuzz(&keys)
	vals := make([]int, len(keys))
	for i := range vals {
		vals[i] = i
	}
	return keys, vals
}

func runOneSize(cfg benchConfig, size int) benchRow {
	keys, vals := randomPairs(size)

	hashFn := stringHash
	if cfg.MemoHash {
		hashFn = keyhash.NewMemo(cfg.MemoSize, stringHash).AsFunc()
	}

	row := benchRow{size: size}

	t0 := time.Now()
	m := trie.New[string, int](hashFn)
	for i, k := range keys {
		m = m.Insert(k, vals[i])
	}
	row.insert = time.Since(t0)

	other := trie.New[string, int](hashFn)
	for i := 0; i < len(keys)/2; i++ {
		other = other.Insert(keys[i], vals[i]*2)
	}
	t1 := time.Now()
	_, _ = m.Merge(other, trie.DefaultResolver[string, int]())
	row.merge = time.Since(t1)

	t2 := time.Now()
	_, _ = m.Filter(func(_ string, v int) bool { return v%2 == 0 }, false)
	row.filter = time.Since(t2)

	t3 := time.Now()
	_ = parallel.ForEach(context.Background(), m, cfg.Workers, func(string, int) error { return nil })
	row.parallelFor = time.Since(t3)

	return row
}

func runBenchmarks(cfg benchConfig, out io.Writer) error {
	runID := uuid.New().String()
	fmt.Fprintf(out, "run %s\n", runID)

	colorOn := cfg.ShowColor && isatty.IsTerminal(os.Stdout.Fd())
	ok := color.New(color.FgGreen).SprintFunc()
	if !colorOn {
		ok = fmt.Sprint
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"size", "insert", "merge", "filter", "parallel.ForEach"})
	for _, size := range cfg.Sizes {
		row := runOneSize(cfg, size)
		table.Append([]string{
			fmt.Sprintf("%d", row.size),
			ok(row.insert.String()),
			ok(row.merge.String()),
			ok(row.filter.String()),
			ok(row.parallelFor.String()),
		})
	}
	table.Render()
	return nil
}
