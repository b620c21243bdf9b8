// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root   branch = iota
	middle branch = iota
	last   branch = iota
)

// Print - display an ASCII graphic representation of the tree
// returns the depth of the tree
func (tree *Tree[V]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", root)
}

// internal print - returns the maximum depth of the sub-tree
func printTree[V comparable](w io.Writer, p *Node[V], prefix string, br branch) int {
	if nil == p {
		return 0
	}

	t := ""
	switch br {
	case root:
		fmt.Fprintf(w, "%s+ ", prefix)
	case middle:
		fmt.Fprintf(w, "%s|------+ ", prefix)
		t = "|      "
	case last:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
		t = "       "
	}
	fmt.Fprintf(w, "%q\n", fmt.Sprint(p.value))

	depth := 0
	for i, c := range p.children {
		b := middle
		if i == len(p.children)-1 {
			b = last
		}
		if d := printTree(w, c, prefix+t, b); d > depth {
			depth = d
		}
	}
	return 1 + depth
}
