// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"
)

// global data for allocator, shared by all trees
var (
	m          sync.Mutex // to keep values in sync
	pool       *Node      // linked list of reclaimed nodes
	totalNodes int        // total nodes created
	freeNodes  int        // number of nodes in the pool
)

// allocate a new leaf node, reuses reclaimed nodes if any are available
func newNode(key Item) *Node {
	m.Lock()
	defer m.Unlock()

	if nil == pool {
		totalNodes += 1
		return &Node{
			key:    key,
			height: 1,
			size:   1,
		}
	}
	p := pool
	pool = p.right
	freeNodes -= 1

	p.key = key
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	p.height = 1
	p.size = 1
	return p
}

// reclaim a node and keep it in a pool
func freeNode(p *Node) {
	m.Lock()
	defer m.Unlock()

	p.key = nil
	p.left = nil
	p.height = 0
	p.size = 0

	p.right = pool // use as free list pointer
	pool = p
	freeNodes += 1
}

// Allocated - total nodes ever created and the number currently
// held in the free pool
func Allocated() (total int, free int) {
	m.Lock()
	defer m.Unlock()
	return totalNodes, freeNodes
}
