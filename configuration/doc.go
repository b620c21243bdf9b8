// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - parse a Lua or YAML configuration file
//
// For Lua most of base Lua is available such as reading files to set
// key data and getenv to extract environment supplied items.  The
// file must return a table, which is mapped to the callers structure
// using the "gluamapper" field tags.
//
// YAML files are decoded directly using the "yaml" field tags.
package configuration
