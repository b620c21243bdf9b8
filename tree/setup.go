// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/logger"
)

// Tree - type to hold the root node of a tree
type Tree[V comparable] struct {
	root  *Node[V]
	count int
	log   *logger.L
}

// New - create an initially empty tree
func New[V comparable]() *Tree[V] {
	return &Tree[V]{
		root:  nil,
		count: 0,
	}
}

// SetLog - attach a logger channel, nil disables logging
func (tree *Tree[V]) SetLog(log *logger.L) {
	tree.log = log
}

// IsEmpty - true if tree contains no nodes
func (tree *Tree[V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[V]) Root() *Node[V] {
	return tree.root
}

// Height - number of levels in the tree, zero if empty
func (tree *Tree[V]) Height() int {
	height := 0
	tree.walk(tree.root, func(p *Node[V], depth int) {
		if depth+1 > height {
			height = depth + 1
		}
	})
	return height
}

func (tree *Tree[V]) debugf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Debugf(format, arguments...)
	}
}

func (tree *Tree[V]) warnf(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Warnf(format, arguments...)
	}
}
