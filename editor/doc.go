// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package editor - an editing session over a single tree of string
// values
//
// The session validates input, forwards each request to the tree,
// logs the outcome and, after every successful change, writes a fresh
// projection of the whole tree so the display always matches the
// tree.  A failed request changes nothing and its error text is the
// message for the user.
package editor
