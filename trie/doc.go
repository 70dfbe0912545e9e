// Copyright 2024 The phamt Authors
// This file is part of phamt.
//
// phamt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// phamt is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.

// Package trie implements a persistent hash array-mapped trie (HAMT): an
// immutable, structurally-shared associative container keyed by any
// comparable type. Every mutating operation (Insert, InsertWith, Remove,
// Filter, Merge) returns a new *Map sharing as much of the existing node
// graph as possible with its inputs; no node is ever modified after it is
// published.
//
// The trie has a branching factor of 32: each level of recursion consumes a
// 5-bit slice of a 32-bit "mixed" hash (see mix.go), so a fully-populated
// trie is at most 7 levels deep (5*6 = 30 bits, with the 7th level covering
// the 2 remaining high bits).
package trie
