// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

const (
	replayLoggerPrefix = "replay"
)

// Replayer - applies the configured steps to a fresh tree
type Replayer struct {
	log   *logger.L
	w     io.Writer
	kind  avl.KeyKind
	check bool
	tree  *avl.Tree
}

func newReplayer(log *logger.L, w io.Writer) *Replayer {
	return &Replayer{
		log: log,
		w:   w,
	}
}

// Run - replay all steps of a configuration, returns the final tree
func (r *Replayer) Run(conf *Configuration) (*avl.Tree, error) {
	r.kind = avl.KeyKind(conf.KeyType)
	r.check = conf.Check
	r.tree = avl.New()

	r.log.Infof("replay: %d steps  key type: %s  check: %v", len(conf.Steps), r.kind, r.check)

	for i, step := range conf.Steps {
		r.log.Debugf("step: %d  %#v", i+1, step)
		if err := r.step(step); nil != err {
			r.log.Errorf("step: %d  op: %s  error: %s", i+1, step.Op, err)
			return r.tree, fmt.Errorf("step: %d: %w", i+1, err)
		}
	}

	r.log.Infof("replay complete: count: %d  height: %d", r.tree.Count(), r.tree.Height())
	return r.tree, nil
}

func (r *Replayer) step(step Step) error {
	switch step.Op {
	case opInsert:
		keys, err := avl.ParseKeys(r.kind, step.Keys)
		if nil != err {
			return err
		}
		n := 0
		for _, key := range keys {
			if r.tree.Insert(key) {
				n += 1
			} else {
				r.log.Debugf("duplicate: %v", key)
			}
		}
		fmt.Fprintf(r.w, "insert: %s  added: %d\n", strings.Join(step.Keys, " "), n)
		return r.verify()

	case opRemove:
		keys, err := avl.ParseKeys(r.kind, step.Keys)
		if nil != err {
			return err
		}
		n := 0
		for _, key := range keys {
			if r.tree.Remove(key) {
				n += 1
			} else {
				r.log.Debugf("absent: %v", key)
			}
		}
		fmt.Fprintf(r.w, "remove: %s  removed: %d\n", strings.Join(step.Keys, " "), n)
		return r.verify()

	case opSearch:
		keys, err := avl.ParseKeys(r.kind, step.Keys)
		if nil != err {
			return err
		}
		for _, key := range keys {
			if nil == r.tree.Search(key) {
				fmt.Fprintf(r.w, "search: %v  not found\n", key)
			} else {
				fmt.Fprintf(r.w, "search: %v  found\n", key)
			}
		}
		return nil

	case opTraverse:
		order, err := avl.ParseOrder(traverseOrder(step))
		if nil != err {
			return err
		}
		list := make([]string, 0, r.tree.Count())
		for key := range r.tree.Traverse(order) {
			list = append(list, fmt.Sprint(key))
		}
		fmt.Fprintf(r.w, "%s-order: %s\n", order, strings.Join(list, " "))
		return nil

	case opPrint:
		depth := r.tree.Print(r.w)
		r.log.Debugf("depth: %d", depth)
		return nil

	default:
		return fmt.Errorf("%w: %q", ErrInvalidOperation, step.Op)
	}
}

// optional invariant check after a mutation
func (r *Replayer) verify() error {
	if !r.check {
		return nil
	}
	return r.tree.Check()
}
