// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// consistency errors
var (
	ErrOrdering    = fault.InvalidError("key ordering violated")
	ErrHeightCache = fault.InvalidError("cached height is incorrect")
	ErrSizeCache   = fault.InvalidError("cached size is incorrect")
	ErrUnbalanced  = fault.InvalidError("node is unbalanced")
	ErrCount       = fault.InvalidError("tree count is incorrect")
)

// Check - verify ordering, balance and cached values of every node
func (tree *Tree) Check() error {
	_, n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: nodes: %d  count: %d", ErrCount, n, tree.count)
	}
	return nil
}

// internal: consistency checker, low and high are exclusive bounds,
// returns the recomputed height and size of the sub-tree
func check(p *Node, low Item, high Item) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && low.Compare(p.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not above: %v", ErrOrdering, p.key, low)
	}
	if nil != high && high.Compare(p.key) <= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not below: %v", ErrOrdering, p.key, high)
	}

	hl, sl, err := check(p.left, low, p.key)
	if nil != err {
		return 0, 0, err
	}
	hr, sr, err := check(p.right, p.key, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	if h != p.height {
		return 0, 0, fmt.Errorf("%w: key: %v  actual: %d  expected: %d", ErrHeightCache, p.key, p.height, h)
	}
	if d := hl - hr; d > 1 || d < -1 {
		return 0, 0, fmt.Errorf("%w: key: %v  balance: %+d", ErrUnbalanced, p.key, d)
	}
	s := 1 + sl + sr
	if s != p.size {
		return 0, 0, fmt.Errorf("%w: key: %v  actual: %d  expected: %d", ErrSizeCache, p.key, p.size, s)
	}
	return h, s, nil
}
