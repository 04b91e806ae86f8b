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

type searchResult struct {
	Key    string `json:"key"`
	Found  bool   `json:"found"`
	Index  int    `json:"index"`
	Height int    `json:"height,omitempty"`
}

func runSearch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s := c.String("key")
	if "" == s {
		return ErrRequiredKey
	}
	key, err := avl.ParseKey(m.kind, s)
	if nil != err {
		return err
	}

	tree, err := buildTree(c, m)
	if nil != err {
		return err
	}

	result := searchResult{
		Key:   fmt.Sprint(key),
		Index: -1,
	}
	if node := tree.Search(key); nil != node {
		result.Found = true
		result.Index = tree.IndexOf(key)
		result.Height = node.Height()
	}

	if m.json {
		return printJson(m.w, result)
	}
	if result.Found {
		fmt.Fprintf(m.w, "found: %s  index: %d\n", result.Key, result.Index)
	} else {
		fmt.Fprintf(m.w, "not found: %s\n", result.Key)
	}
	return nil
}
