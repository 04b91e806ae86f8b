// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func TestCompare(t *testing.T) {
	lowKey := avl.IntKey(1000)
	assert.Equal(t, 0, lowKey.Compare(avl.IntKey(1000)), "Not Equal")
	assert.Equal(t, -1, lowKey.Compare(avl.IntKey(8133)), "Input is not greater")
	assert.Equal(t, +1, lowKey.Compare(avl.IntKey(999)), "Input is not lesser")

	s := avl.StringKey("1000")
	assert.Equal(t, 0, s.Compare(avl.StringKey("1000")))
	assert.Equal(t, -1, s.Compare(avl.StringKey("8133")))
	assert.Equal(t, -1, s.Compare(avl.StringKey("999")), "strings compare byte-wise")
}

func TestParseKeys(t *testing.T) {
	keys, err := avl.ParseKeys(avl.IntegerKeys, []string{"50", " -3", "7"})
	require.NoError(t, err)
	assert.Equal(t, []avl.Item{avl.IntKey(50), avl.IntKey(-3), avl.IntKey(7)}, keys)

	keys, err = avl.ParseKeys(avl.StringKeys, []string{"b", "a"})
	require.NoError(t, err)
	assert.Equal(t, []avl.Item{avl.StringKey("b"), avl.StringKey("a")}, keys)

	_, err = avl.ParseKeys(avl.IntegerKeys, []string{"1", "x2"})
	assert.True(t, fault.IsErrInvalid(err), "actual: %v", err)
	assert.Contains(t, err.Error(), `"x2"`)

	_, err = avl.ParseKey(avl.KeyKind("float"), "1.5")
	assert.True(t, fault.IsErrInvalid(err), "actual: %v", err)
}

func TestPrint(t *testing.T) {
	tree := build(30, 20, 10)

	var b bytes.Buffer
	depth := tree.Print(&b)
	assert.Equal(t, 2, depth)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "       /------+ 30 h:1 +0", lines[0])
	assert.Equal(t, "|------+ 20 h:2 +0", lines[1])
	assert.Equal(t, "       \\------+ 10 h:1 +0", lines[2])

	b.Reset()
	assert.Equal(t, 0, avl.New().Print(&b))
	assert.Empty(t, b.String())
}
