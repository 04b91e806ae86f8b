// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avltree/fault"
)

// Order - selects one of the depth first traversals
type Order int

// traversal orders
const (
	InOrderTraversal   Order = iota // left, self, right
	PreOrderTraversal  Order = iota // self, left, right
	PostOrderTraversal Order = iota // left, right, self
)

// ErrInvalidOrder - unrecognised traversal name
var ErrInvalidOrder = fault.InvalidError("invalid traversal order")

// ParseOrder - convert "in", "pre" or "post" to an Order
func ParseOrder(s string) (Order, error) {
	switch s {
	case "in", "inorder", "in-order":
		return InOrderTraversal, nil
	case "pre", "preorder", "pre-order":
		return PreOrderTraversal, nil
	case "post", "postorder", "post-order":
		return PostOrderTraversal, nil
	default:
		return InOrderTraversal, ErrInvalidOrder
	}
}

// String - short name of the order
func (o Order) String() string {
	switch o {
	case InOrderTraversal:
		return "in"
	case PreOrderTraversal:
		return "pre"
	case PostOrderTraversal:
		return "post"
	default:
		return "unknown"
	}
}

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// InOrder - keys in ascending order
func (tree *Tree) InOrder() iter.Seq[Item] {
	return tree.Traverse(InOrderTraversal)
}

// PreOrder - each key before the keys of its sub-trees
func (tree *Tree) PreOrder() iter.Seq[Item] {
	return tree.Traverse(PreOrderTraversal)
}

// PostOrder - each key after the keys of its sub-trees
func (tree *Tree) PostOrder() iter.Seq[Item] {
	return tree.Traverse(PostOrderTraversal)
}

// Traverse - lazy depth first walk in the given order
//
// the sequence reads the tree each time it is ranged over, so it
// reflects any mutation made since it was created; the tree must not
// be modified during the range loop
func (tree *Tree) Traverse(order Order) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		walk(tree.root, order, yield)
	}
}

// returns false when the consumer stopped early
func walk(p *Node, order Order, yield func(Item) bool) bool {
	if nil == p {
		return true
	}
	switch order {
	case PreOrderTraversal:
		return yield(p.key) &&
			walk(p.left, order, yield) &&
			walk(p.right, order, yield)
	case PostOrderTraversal:
		return walk(p.left, order, yield) &&
			walk(p.right, order, yield) &&
			yield(p.key)
	default:
		return walk(p.left, order, yield) &&
			yield(p.key) &&
			walk(p.right, order, yield)
	}
}

// Keys - collect a traversal into a slice
func (tree *Tree) Keys(order Order) []Item {
	keys := make([]Item, 0, tree.count)
	for key := range tree.Traverse(order) {
		keys = append(keys, key)
	}
	return keys
}
