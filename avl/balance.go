// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// cached height, an empty sub-tree has height zero
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

func size(p *Node) int {
	if nil == p {
		return 0
	}
	return p.size
}

// left height minus right height
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// recompute the caches from the children, must be called after any
// change to p.left or p.right
func update(p *Node) {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
	p.size = 1 + size(p.left) + size(p.right)
}

// single right rotation, returns the new sub-tree root
//
//        p              p1
//       / \            /  \
//      p1  c   =>     a    p
//     /  \                / \
//    a    b              b   c
func rotateRight(p *Node) *Node {
	p1 := p.left
	if nil == p1 {
		fault.Panicf("avl: rotate right at: %v without left child", p.key)
	}
	p.left = p1.right
	p1.right = p

	update(p) // lower node first
	update(p1)
	return p1
}

// single left rotation, mirror of rotateRight
func rotateLeft(p *Node) *Node {
	p1 := p.right
	if nil == p1 {
		fault.Panicf("avl: rotate left at: %v without right child", p.key)
	}
	p.right = p1.left
	p1.left = p

	update(p)
	update(p1)
	return p1
}
