// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Replay a scripted sequence of tree operations
//
// The Lua configuration file lists the steps (insert, remove, search,
// traverse, print) and the logging setup.  The tree invariants are
// verified after each insert or remove step when "check" is enabled.
//
//   avl-replay --config-file=demo.conf
//
// with --watch the file is replayed again each time it is written
package main
