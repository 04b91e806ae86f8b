// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// KeyKind - which of the built in key types to parse
type KeyKind string

// built in key kinds
const (
	IntegerKeys KeyKind = "integer"
	StringKeys  KeyKind = "string"
)

// errors
var (
	ErrInvalidKey     = fault.InvalidError("invalid key")
	ErrInvalidKeyKind = fault.InvalidError("invalid key kind")
)

// Item - a key item must implement the Compare function
//
// Compare returns -1, 0, +1 when the receiver is less than, equal to
// or greater than the argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// IntKey - integer key
type IntKey int

// Compare - integer ordering for AVL interface
func (k IntKey) Compare(x interface{}) int {
	y := x.(IntKey)
	switch {
	case k < y:
		return -1
	case k > y:
		return +1
	default:
		return 0
	}
}

// String - decimal representation
func (k IntKey) String() string {
	return strconv.Itoa(int(k))
}

// StringKey - string key in byte-wise order
type StringKey string

// Compare - string ordering for AVL interface
func (k StringKey) Compare(x interface{}) int {
	return strings.Compare(string(k), string(x.(StringKey)))
}

// String - the key itself
func (k StringKey) String() string {
	return string(k)
}

// ParseKey - convert text to a key of the given kind
func ParseKey(kind KeyKind, s string) (Item, error) {
	switch kind {
	case IntegerKeys:
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if nil != err {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKey, s)
		}
		return IntKey(n), nil
	case StringKeys:
		return StringKey(s), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidKeyKind, kind)
	}
}

// ParseKeys - convert a list of text keys, stops at the first error
func ParseKeys(kind KeyKind, list []string) ([]Item, error) {
	keys := make([]Item, 0, len(list))
	for _, s := range list {
		key, err := ParseKey(kind, s)
		if nil != err {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
