// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
)

// insert all the positional arguments in order
func buildTree(c *cli.Context, m *metadata) (*avl.Tree, error) {
	keys, err := avl.ParseKeys(m.kind, c.Args())
	if nil != err {
		return nil, err
	}

	tree := avl.New()
	for _, key := range keys {
		added := tree.Insert(key)
		if m.verbose {
			if added {
				fmt.Fprintf(m.e, "insert: %v\n", key)
			} else {
				fmt.Fprintf(m.e, "duplicate: %v\n", key)
			}
		}
	}
	return tree, nil
}

func keyStrings(keys []avl.Item) []string {
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprint(k)
	}
	return s
}

// either JSON or a space separated line
func printKeys(m *metadata, keys []avl.Item) error {
	list := keyStrings(keys)
	if m.json {
		return printJson(m.w, list)
	}
	_, err := fmt.Fprintf(m.w, "%s\n", strings.Join(list, " "))
	return err
}
