// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"github.com/bitmark-inc/treeedit/fault"
)

// UpdateNode - replace the value of the first node holding oldValue
func (tree *Tree[V]) UpdateNode(oldValue V, newValue V) error {
	p := tree.Find(oldValue)
	if nil == p {
		return fault.ErrNodeNotFound
	}
	p.value = newValue
	tree.debugf("update: %v → %v", oldValue, newValue)
	return nil
}
