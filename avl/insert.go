// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new key into the tree
// returns false if the key was already present
func (tree *Tree) Insert(key Item) bool {
	added := false
	tree.root, added = insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the possibly updated root
func insert(key Item, p *Node) (*Node, bool) {
	if nil == p { // insert new node
		return newNode(key), true
	}

	added := false
	switch p.key.Compare(key) {
	case +1: // p.key > key
		p.left, added = insert(key, p.left)
	case -1: // p.key < key
		p.right, added = insert(key, p.right)
	default:
		return p, false // duplicate
	}
	if !added {
		return p, false
	}

	update(p)

	balance := balanceFactor(p)

	// left-left
	if balance > 1 && -1 == key.Compare(p.left.key) {
		return rotateRight(p), true
	}

	// right-right
	if balance < -1 && +1 == key.Compare(p.right.key) {
		return rotateLeft(p), true
	}

	// left-right
	if balance > 1 && +1 == key.Compare(p.left.key) {
		p.left = rotateLeft(p.left)
		return rotateRight(p), true
	}

	// right-left
	if balance < -1 && -1 == key.Compare(p.right.key) {
		p.right = rotateRight(p.right)
		return rotateLeft(p), true
	}

	return p, true
}
