// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/treeedit/fault"
)

// CreateRoot - make a single node tree from an empty one
func (tree *Tree[V]) CreateRoot(value V) error {
	if nil != tree.root {
		return fault.ErrRootAlreadyExists
	}
	tree.root = newNode(tree, value)
	tree.count = 1
	tree.debugf("create root: %v", value)
	return nil
}

// AddNode - append a new leaf to the first node holding parentValue
//
// a missing parent and a parent that already has two children both
// give fault.ErrParentNotFound
func (tree *Tree[V]) AddNode(parentValue V, value V) error {
	parent := tree.Find(parentValue)
	if nil == parent {
		return fault.ErrParentNotFound
	}
	if _, err := parent.AddChild(value); nil != err {
		return fault.ErrParentNotFound
	}
	return nil
}
