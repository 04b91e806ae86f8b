// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

func makeTree(keys ...int) *Tree {
	tree := New()
	for _, k := range keys {
		tree.Insert(IntKey(k))
	}
	return tree
}

func TestCheckValid(t *testing.T) {
	tree := makeTree(50, 30, 20, 40, 70, 60, 80)
	assert.NoError(t, tree.Check())
}

func TestCheckHeight(t *testing.T) {
	tree := makeTree(50, 30, 20, 40, 70, 60, 80)
	tree.root.left.height += 1

	err := tree.Check()
	assert.True(t, errors.Is(err, ErrHeightCache), "actual: %v", err)
	assert.True(t, fault.IsErrInvalid(err))
}

func TestCheckSize(t *testing.T) {
	tree := makeTree(50, 30, 20, 40, 70, 60, 80)
	tree.root.right.right.size = 3

	err := tree.Check()
	assert.True(t, errors.Is(err, ErrSizeCache), "actual: %v", err)
}

func TestCheckOrdering(t *testing.T) {
	tree := makeTree(50, 30, 20, 40, 70, 60, 80)
	tree.root.left.right.key = IntKey(55) // 40 → 55 is right of 30 but not left of 50

	err := tree.Check()
	assert.True(t, errors.Is(err, ErrOrdering), "actual: %v", err)
}

func TestCheckBalance(t *testing.T) {
	c := &Node{key: IntKey(3), height: 1, size: 1}
	b := &Node{key: IntKey(2), right: c, height: 2, size: 2}
	a := &Node{key: IntKey(1), right: b, height: 3, size: 3}
	tree := &Tree{root: a, count: 3}

	err := tree.Check()
	assert.True(t, errors.Is(err, ErrUnbalanced), "actual: %v", err)
}

func TestCheckCount(t *testing.T) {
	tree := makeTree(1, 2, 3)
	tree.count += 1

	err := tree.Check()
	assert.True(t, errors.Is(err, ErrCount), "actual: %v", err)
}

func TestRotateRight(t *testing.T) {
	a := &Node{key: IntKey(1), height: 1, size: 1}
	b := &Node{key: IntKey(3), height: 1, size: 1}
	p1 := &Node{key: IntKey(2), left: a, right: b, height: 2, size: 3}
	c := &Node{key: IntKey(5), height: 1, size: 1}
	p := &Node{key: IntKey(4), left: p1, right: c, height: 3, size: 5}

	r := rotateRight(p)
	require.True(t, r == p1, "wrong new root")
	assert.True(t, a == r.left)
	assert.True(t, p == r.right)
	assert.True(t, b == p.left, "inner sub-tree not moved")
	assert.True(t, c == p.right)
	assert.Equal(t, 2, p.height)
	assert.Equal(t, 3, p.size)
	assert.Equal(t, 3, r.height)
	assert.Equal(t, 5, r.size)
}

func TestRotateLeft(t *testing.T) {
	b := &Node{key: IntKey(3), height: 1, size: 1}
	c := &Node{key: IntKey(5), height: 1, size: 1}
	p1 := &Node{key: IntKey(4), left: b, right: c, height: 2, size: 3}
	p := &Node{key: IntKey(2), right: p1, height: 3, size: 4}

	r := rotateLeft(p)
	require.True(t, r == p1, "wrong new root")
	assert.True(t, p == r.left)
	assert.True(t, b == p.right, "inner sub-tree not moved")
	assert.Nil(t, p.left)
	assert.Equal(t, 2, p.height)
	assert.Equal(t, 3, r.height)
	assert.Equal(t, 4, r.size)
}

func TestRotatePreconditions(t *testing.T) {
	leaf := &Node{key: IntKey(1), height: 1, size: 1}
	assert.Panics(t, func() { rotateRight(leaf) })
	assert.Panics(t, func() { rotateLeft(leaf) })
}

func TestBalancePrimitives(t *testing.T) {
	assert.Equal(t, 0, height(nil))
	assert.Equal(t, 0, size(nil))
	assert.Equal(t, 0, balanceFactor(nil))

	tree := makeTree(2, 1)
	assert.Equal(t, 2, height(tree.root))
	assert.Equal(t, 1, balanceFactor(tree.root))
	assert.Equal(t, -1, balanceFactor(makeTree(1, 2).root))
}

func TestAllocatorReuse(t *testing.T) {
	tree := makeTree(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	total, free := Allocated()

	for _, k := range []int{2, 4, 6, 8} {
		require.True(t, tree.Remove(IntKey(k)))
	}
	total1, free1 := Allocated()
	assert.Equal(t, total, total1, "nodes allocated by remove")
	assert.Equal(t, free+4, free1, "removed nodes not pooled")

	for _, k := range []int{20, 21, 22} {
		require.True(t, tree.Insert(IntKey(k)))
	}
	total2, free2 := Allocated()
	assert.Equal(t, total, total2, "pooled nodes not reused")
	assert.Equal(t, free+1, free2)
	assert.NoError(t, tree.Check())
}
