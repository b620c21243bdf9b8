// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/treeedit/fault"
)

func TestSplitLine(t *testing.T) {
	items := []struct {
		line  string
		words []string
	}{
		{``, []string{}},
		{`   `, []string{}},
		{`root A`, []string{"root", "A"}},
		{"add\tA   B", []string{"add", "A", "B"}},
		{`root "two words"`, []string{"root", "two words"}},
		{`root 'single "quoted"'`, []string{"root", `single "quoted"`}},
		{`root a\ b`, []string{"root", "a b"}},
		{`root "a \"b\""`, []string{"root", `a "b"`}},
		{`root 'a\b'`, []string{"root", `a\b`}},
		{`root ""`, []string{"root", ""}},
		{`root x"y z"`, []string{"root", "xy z"}},
		{`root 'a;b' "c|d" e\&f`, []string{"root", "a;b", "c|d", "e&f"}},
		{`root "(A)"`, []string{"root", "(A)"}},
		{`root $HOME`, []string{"root", "$HOME"}},
	}

	for i, item := range items {
		words, err := splitLine(item.line)
		require.NoError(t, err, "item[%d]: %q", i, item.line)
		assert.Equal(t, item.words, words, "item[%d]: %q", i, item.line)
	}
}

func TestSplitLineUnterminated(t *testing.T) {
	for _, line := range []string{`root "A`, `root 'A`, `root A\`, `root (A`} {
		_, err := splitLine(line)
		assert.Equal(t, fault.ErrUnterminatedQuote, err, "line: %q", line)
	}
}

func TestSplitLineSeparators(t *testing.T) {
	for _, line := range []string{`root A;B`, `root A | B`, `add A B&`, `root <A>`} {
		_, err := splitLine(line)
		assert.Equal(t, fault.ErrUnquotedSeparator, err, "line: %q", line)
	}
}

// the example session run as a script
func TestShellSession(t *testing.T) {
	s, out, errOut := newTestShell(false)

	script := `
# scenario 1
root A
root B

# scenario 2
add A B
add A C
add A D

# scenario 3
add B E
find E

# scenario 4
update E E2
find E
find E2

# scenario 5
delete B
count

# scenario 6
delete Z
show
`
	failures, err := s.run(strings.NewReader(script), "session")
	require.NoError(t, err)
	assert.Equal(t, 2, failures)

	expected := "found: \"E\"  depth: 2  children: 0  path: A / B / E\n" +
		"not found: \"E\"\n" +
		"found: \"E2\"  depth: 2  children: 0  path: A / B / E2\n" +
		"nodes: 2  levels: 2\n" +
		"- A\n" +
		"  - C\n"
	assert.Equal(t, expected, out.String())

	assert.Equal(t,
		"session:4: error: root already exists\n"+
			"session:9: error: parent node not found or full\n",
		errOut.String())
}

func TestShellRefresh(t *testing.T) {
	s, out, errOut := newTestShell(true)

	failures, err := s.run(strings.NewReader("root A\nadd A B\nadd Z C\n"), "refresh")
	require.NoError(t, err)
	assert.Equal(t, 1, failures)

	// only successful changes redisplay
	assert.Equal(t, "- A\n- A\n  - B\n", out.String())
	assert.Contains(t, errOut.String(), "refresh:3: error: parent node not found or full")
}

func TestShellQuotedValues(t *testing.T) {
	s, out, _ := newTestShell(false)

	failures, err := s.run(strings.NewReader(`root "top node"
add "top node" -1
add 'top node' "a b"
show
`), "quoted")
	require.NoError(t, err)
	assert.Equal(t, 0, failures)
	assert.Equal(t, "- top node\n  - -1\n  - a b\n", out.String())
}

func TestShellArgumentErrors(t *testing.T) {
	items := []struct {
		line    string
		err     error
		message string
	}{
		{"root", fault.ErrMissingArgument, "missing argument: VALUE, usage: root VALUE"},
		{"add A", fault.ErrMissingArgument, "missing argument: VALUE, usage: add PARENT VALUE"},
		{"update", fault.ErrMissingArgument, "missing argument: OLD, usage: update OLD NEW"},
		{"root A B", fault.ErrTooManyArguments, "too many arguments, usage: root VALUE"},
		{"count now", fault.ErrTooManyArguments, "too many arguments, usage: count"},
		{"plant A", fault.ErrUnknownCommand, `unknown command: "plant", try: help`},
		{`root "A`, fault.ErrUnterminatedQuote, "unterminated quote"},
		{`root ""`, fault.ErrEmptyValue, "value must not be empty"},
		{`root A;B`, fault.ErrUnquotedSeparator, "; & | < and > must be quoted"},
		{"show --format=xml", fault.ErrUnknownOutputFormat, `unknown output format: "xml"`},
	}

	for i, item := range items {
		s, _, _ := newTestShell(false)
		err := s.execute(item.line)
		require.Error(t, err, "item[%d]: %q", i, item.line)
		assert.ErrorIs(t, err, item.err, "item[%d]: %q", i, item.line)
		assert.Equal(t, item.message, err.Error(), "item[%d]: %q", i, item.line)
	}
}

func TestShellShowFormats(t *testing.T) {
	s, out, _ := newTestShell(false)

	require.NoError(t, s.execute("show"))
	assert.Equal(t, "No nodes to display\n", out.String())

	out.Reset()
	require.NoError(t, s.execute("show --json"))
	assert.Equal(t, "null\n", out.String())

	require.NoError(t, s.execute("root A"))
	require.NoError(t, s.execute("add A B"))

	out.Reset()
	require.NoError(t, s.execute("show -j"))
	assert.JSONEq(t, `{"value":"A","children":[{"value":"B","children":[]}]}`, out.String())

	out.Reset()
	require.NoError(t, s.execute("ls --ascii"))
	assert.Equal(t, "+ \"A\"\n\\------+ \"B\"\n", out.String())

	out.Reset()
	require.NoError(t, s.execute("show --format text"))
	assert.Equal(t, "- A\n  - B\n", out.String())
}

func TestShellDeleteAndClear(t *testing.T) {
	s, out, _ := newTestShell(false)
	s.verbose = true

	failures, err := s.run(strings.NewReader(`root A
add A B
add B C
rm Z
del B
count
delete A
count
root X
clear
count
check
`), "delete")
	require.NoError(t, err)
	assert.Equal(t, 0, failures)

	assert.Equal(t, "nothing removed: \"Z\"\n"+
		"nodes: 1  levels: 1\n"+
		"nodes: 0  levels: 0\n"+
		"nodes: 0  levels: 0\n"+
		"ok: 0 nodes\n",
		out.String())
}

func TestShellQuit(t *testing.T) {
	s, out, _ := newTestShell(false)

	failures, err := s.run(strings.NewReader("root A\nquit\ncount\n"), "quit")
	require.NoError(t, err)
	assert.Equal(t, 0, failures)
	assert.True(t, s.quit)
	assert.Equal(t, "", out.String(), "nothing after quit is run")
}

func TestShellHelp(t *testing.T) {
	s, out, _ := newTestShell(false)

	require.NoError(t, s.execute("help"))
	for _, name := range []string{"root", "add", "update", "delete", "find", "show", "count", "check", "clear", "quit"} {
		assert.Contains(t, out.String(), name)
	}
}

func TestShellInteractive(t *testing.T) {
	s, out, errOut := newTestShell(false)
	s.interactive = true

	failures, err := s.run(strings.NewReader("root A\nroot B\n"), "stdin")
	require.NoError(t, err)
	assert.Equal(t, 1, failures)
	assert.Equal(t, "> > > \n", out.String())
	assert.Equal(t, "error: root already exists\n", errOut.String())
}

// lines beyond the default scanner buffer are still read
func TestShellLongLine(t *testing.T) {
	s, out, _ := newTestShell(false)

	value := strings.Repeat("x", 200*1024)
	failures, err := s.run(strings.NewReader("root "+value+"\nfind "+value+"\ncount\n"), "long")
	require.NoError(t, err)
	assert.Equal(t, 0, failures)
	assert.Contains(t, out.String(), "nodes: 1  levels: 1\n")
	assert.True(t, strings.HasPrefix(out.String(), "found: "))
}

func TestShellRunFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "script.tree")
	require.NoError(t, os.WriteFile(fileName, []byte("root A\nadd A B\nadd A C\nadd C D\ncount\n"), 0600))

	s, out, _ := newTestShell(false)
	failures, err := s.runFile(fileName)
	require.NoError(t, err)
	assert.Equal(t, 0, failures)
	assert.Equal(t, "nodes: 4  levels: 3\n", out.String())

	_, err = s.runFile(filepath.Join(dir, "missing.tree"))
	assert.Error(t, err)
}
