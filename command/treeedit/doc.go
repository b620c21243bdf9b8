// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// treeedit - interactive editor for a tree whose nodes have at most
// two children
//
// Usage:
//   treeedit [--help] [--version] [--verbose] [--quiet] [--config-file=FILE] [SCRIPT...]
//
// With no scripts, commands are read from standard input, with a
// prompt when that is a terminal.  Each script is a file of the same
// commands, one per line, blank lines and lines starting with "#"
// are skipped.  Type "help" at the prompt for the command list.
//
// Words are split as a shell would: quote values containing spaces
// or any of ; & | < > ( ).  Lines are limited to 1 MiB.
//
// The configuration file is Lua (.lua, .conf) or YAML (.yaml, .yml).
// A Lua file returns a table, for example:
//
//   return {
//       data_directory = ".",
//       prompt = "tree> ",
//       watch = true,
//       display = {
//           colour = "auto",
//           palette = { "yellow", "green", "blue" },
//           indent = 2,
//           format = "text",
//           refresh = true,
//       },
//       logging = {
//           directory = "log",
//           file = "treeedit.log",
//           size = 1048576,
//           count = 10,
//           levels = { DEFAULT = "info" },
//       },
//   }
package main
