// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - delete the node with a specific key
// returns false if the key was not in the tree
func (tree *Tree) Remove(key Item) bool {
	removed := false
	tree.root, removed = remove(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal routine for remove, returns the possibly updated root
func remove(key Item, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, removed = remove(key, p.left)
	case -1: // p.key < key
		p.right, removed = remove(key, p.right)
	default:
		if nil == p.left || nil == p.right {
			q := p.left
			if nil == q {
				q = p.right
			}
			freeNode(p)
			return q, true // already balanced
		}

		// two children: take the key of the in-order successor
		// then delete the successor from the right sub-tree
		s := p.right
		for nil != s.left {
			s = s.left
		}
		p.key = s.key
		p.right, removed = remove(s.key, p.right)
	}
	if !removed {
		return p, false
	}

	return rebalance(p), true
}

// restore balance at p after one of its sub-trees shrank
func rebalance(p *Node) *Node {
	update(p)

	balance := balanceFactor(p)

	if balance > 1 {
		if balanceFactor(p.left) < 0 {
			p.left = rotateLeft(p.left) // left-right
		}
		return rotateRight(p)
	}

	if balance < -1 {
		if balanceFactor(p.right) > 0 {
			p.right = rotateRight(p.right) // right-left
		}
		return rotateLeft(p)
	}

	return p
}
