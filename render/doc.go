// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package render - display the projection of a tree
//
// Three formats are available: an indented list coloured by depth,
// JSON of the nested nodes, and the tree's own ASCII drawing.  Every
// call walks the tree again, nothing is cached.
package render
