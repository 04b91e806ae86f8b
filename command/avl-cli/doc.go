// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Build a balanced tree from the command line keys and display it
//
// e.g. to show the pre-order traversal after a left-left rotation:
//
//   avl-cli traverse --order=pre 30 20 10
//
// the keys are inserted in the order given; use --strings to treat
// them as strings instead of integers
package main
