// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

func run(t *testing.T, arguments ...string) (string, string, error) {
	var w bytes.Buffer
	var e bytes.Buffer
	app := newApp(&w, &e)
	err := app.Run(append([]string{"avl-cli"}, arguments...))
	return w.String(), e.String(), err
}

var scenario = []string{"50", "30", "20", "40", "70", "60", "80"}

func TestTraverse(t *testing.T) {
	tests := []struct {
		order    string
		expected string
	}{
		{"in", "20 30 40 50 60 70 80\n"},
		{"pre", "50 30 20 40 70 60 80\n"},
		{"post", "20 40 30 60 80 70 50\n"},
	}
	for _, test := range tests {
		out, _, err := run(t, append([]string{"traverse", "--order", test.order}, scenario...)...)
		require.NoError(t, err, test.order)
		assert.Equal(t, test.expected, out, test.order)
	}
}

func TestTraverseInvalidOrder(t *testing.T) {
	_, _, err := run(t, "traverse", "-o", "level", "1", "2")
	assert.True(t, fault.IsErrInvalid(err), "actual: %v", err)
}

func TestTraverseInvalidKey(t *testing.T) {
	_, _, err := run(t, "traverse", "1", "two")
	assert.True(t, fault.IsErrInvalid(err), "actual: %v", err)
}

func TestTraverseStrings(t *testing.T) {
	out, _, err := run(t, "--strings", "traverse", "pear", "apple", "fig")
	require.NoError(t, err)
	assert.Equal(t, "apple fig pear\n", out)
}

func TestTraverseJSON(t *testing.T) {
	out, _, err := run(t, "--json", "traverse", "-o", "pre", "30", "10", "20")
	require.NoError(t, err)

	var keys []string
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	assert.Equal(t, []string{"20", "10", "30"}, keys)
}

func TestSearch(t *testing.T) {
	out, _, err := run(t, append([]string{"search", "--key", "20"}, scenario...)...)
	require.NoError(t, err)
	assert.Equal(t, "found: 20  index: 0\n", out)

	out, _, err = run(t, append([]string{"search", "-k", "10"}, scenario...)...)
	require.NoError(t, err)
	assert.Equal(t, "not found: 10\n", out)

	_, _, err = run(t, append([]string{"search"}, scenario...)...)
	assert.Equal(t, ErrRequiredKey, err)
}

func TestSearchJSON(t *testing.T) {
	out, _, err := run(t, append([]string{"-j", "search", "-k", "70"}, scenario...)...)
	require.NoError(t, err)

	var result searchResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, searchResult{Key: "70", Found: true, Index: 5, Height: 2}, result)
}

func TestRemove(t *testing.T) {
	out, e, err := run(t, append([]string{"--verbose", "remove", "-k", "20", "-k", "30", "-k", "50", "-k", "99"}, scenario...)...)
	require.NoError(t, err)
	assert.Equal(t, "40 60 70 80\n", out)
	assert.Contains(t, e, "remove: 50\n")
	assert.Contains(t, e, "absent: 99\n")

	_, _, err = run(t, append([]string{"remove"}, scenario...)...)
	assert.Equal(t, ErrRequiredKey, err)
}

func TestPrint(t *testing.T) {
	out, _, err := run(t, "print", "30", "20", "10")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "|------+ 20 h:2 +0", lines[1])
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, append([]string{"check"}, scenario...)...)
	require.NoError(t, err)
	assert.Equal(t, "ok  count: 7  height: 3\n", out)

	out, _, err = run(t, "-j", "check", "1", "2", "3", "4", "5", "6", "7", "8")
	require.NoError(t, err)
	var result checkResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, checkResult{Count: 8, Height: 4}, result)
}
