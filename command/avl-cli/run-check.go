// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type checkResult struct {
	Count  int `json:"count"`
	Height int `json:"height"`
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tree, err := buildTree(c, m)
	if nil != err {
		return err
	}

	if err := tree.Check(); nil != err {
		return err
	}

	result := checkResult{
		Count:  tree.Count(),
		Height: tree.Height(),
	}
	if m.json {
		return printJson(m.w, result)
	}
	fmt.Fprintf(m.w, "ok  count: %d  height: %d\n", result.Count, result.Height)
	return nil
}
