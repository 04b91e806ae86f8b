// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

func runTraverse(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	order, err := avl.ParseOrder(c.String("order"))
	if nil != err {
		return err
	}

	tree, err := buildTree(c, m)
	if nil != err {
		return err
	}

	return printKeys(m, tree.Keys(order))
}
