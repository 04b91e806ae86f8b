// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	list := c.StringSlice("key")
	if 0 == len(list) {
		return ErrRequiredKey
	}
	keys, err := avl.ParseKeys(m.kind, list)
	if nil != err {
		return err
	}

	tree, err := buildTree(c, m)
	if nil != err {
		return err
	}

	for _, key := range keys {
		removed := tree.Remove(key)
		if m.verbose {
			if removed {
				fmt.Fprintf(m.e, "remove: %v\n", key)
			} else {
				fmt.Fprintf(m.e, "absent: %v\n", key)
			}
		}
	}

	return printKeys(m, tree.Keys(avl.InOrderTraversal))
}
