// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tree - a rooted tree where every node holds a value and at
// most two ordered children, with parent pointers to allow depth
// calculation and splicing of sub-trees
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// There is no ordering of values: a new node is appended to the
// first free child slot of the node addressed by its parent value.
// Values are also the lookup keys and are not required to be unique,
// so every value addressed operation acts on the first match of a
// depth-first, pre-order, left-to-right walk from the root.
//
// Deleting a node discards its whole sub-tree.  Deleting the root
// empties the tree.  Deleting a missing value is not an error.
package tree
