// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a height balanced (AVL) ordered tree of unique keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree, balance is restored
// by single or double rotations on the way back up from every insert
// or remove.  The recursive routines return the possibly rotated
// root of the sub-tree they were given and the caller stores it back
// into the parent link, so nodes have no parent pointers.
//
// Inserting a key that is already present leaves the tree unchanged.
// Removing a node with two children copies only the key of its
// in-order successor and then removes the successor node.
package avl
