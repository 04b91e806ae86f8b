// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a specific item, nil if not present
func (tree *Tree) Search(key Item) *Node {
	return search(key, tree.root)
}

func search(key Item, tree *Node) *Node {
	if nil == tree {
		return nil
	}

	switch tree.key.Compare(key) {
	case +1: // tree.key > key
		return search(key, tree.left)
	case -1: // tree.key < key
		return search(key, tree.right)
	default:
		return tree
	}
}

// Contains - true if key is in the tree
func (tree *Tree) Contains(key Item) bool {
	return nil != search(key, tree.root)
}

// IndexOf - position of key in ascending order, -1 if not present
func (tree *Tree) IndexOf(key Item) int {
	index := 0
	p := tree.root
	for nil != p {
		switch p.key.Compare(key) {
		case +1:
			p = p.left
		case -1:
			index += size(p.left) + 1
			p = p.right
		default:
			return index + size(p.left)
		}
	}
	return -1
}
