// Copyright 2024 The phamt Authors
// This file is part of phamt.
//
// phamt is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package trie

// nodeRemove deletes k (mixed hash hm) from nd, returning a node
// identity-equal to nd when the key was absent.
func nodeRemove[K comparable, V any](nd node[K, V], k K, hm uint32, lvl level) node[K, V] {
	switch n := nd.(type) {
	case emptyNode[K, V]:
		return n

	case *leafNode[K, V]:
		if n.e.hash == hm && n.e.key == k {
			return emptyNode[K, V]{}
		}
		return n

	case *collisionNode[K, V]:
		if n.hash != hm {
			return n
		}
		i := n.find(k)
		if i < 0 {
			return n
		}
		switch len(n.entries) {
		case 2:
			// demote to a Leaf carrying whichever entry survives.
			survivor := n.entries[1-i]
			return newLeaf(survivor)
		default:
			next := make([]entry[K, V], 0, len(n.entries)-1)
			next = append(next, n.entries[:i]...)
			next = append(next, n.entries[i+1:]...)
			return newCollision(n.hash, next)
		}

	case *trieNode[K, V]:
		idx := slice(hm, lvl)
		if !n.hasSlot(idx) {
			return n
		}
		pos := n.pos(idx)
		oldChild := n.children[pos]
		newChild := nodeRemove(oldChild, k, hm, nextLevel(lvl))
		if newChild == oldChild {
			return n
		}
		if isEmpty[K, V](newChild) {
			bitmap := n.bitmap &^ (uint32(1) << idx)
			if bitmap == 0 {
				return emptyNode[K, V]{}
			}
			children := make([]node[K, V], 0, len(n.children)-1)
			children = append(children, n.children[:pos]...)
			children = append(children, n.children[pos+1:]...)
			if len(children) == 1 && !isTrie[K, V](children[0]) {
				return children[0]
			}
			return &trieNode[K, V]{bitmap: bitmap, children: children, sz: n.sz - oldChild.size()}
		}
		if !isTrie[K, V](newChild) && len(n.children) == 1 {
			return newChild
		}
		children := append([]node[K, V](nil), n.children...)
		children[pos] = newChild
		sz := n.sz - oldChild.size() + newChild.size()
		return &trieNode[K, V]{bitmap: n.bitmap, children: children, sz: sz}

	default:
		invariantViolation("nodeRemove: unknown node variant")
		panic("unreachable")
	}
}
