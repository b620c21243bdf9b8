// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/treeedit/fault"
	"github.com/bitmark-inc/treeedit/render"
	"github.com/bitmark-inc/treeedit/tree"
)

func sample(t *testing.T) *tree.Tree[string] {
	tr := tree.New[string]()
	require.NoError(t, tr.CreateRoot("A"))
	require.NoError(t, tr.AddNode("A", "B"))
	require.NoError(t, tr.AddNode("A", "C"))
	require.NoError(t, tr.AddNode("B", "E"))
	require.NoError(t, tr.AddNode("E", "F"))
	return tr
}

func TestText(t *testing.T) {
	buffer := &bytes.Buffer{}
	err := render.Render(buffer, sample(t), render.Options{Indent: 2})
	require.NoError(t, err)

	expected := "- A\n" +
		"  - B\n" +
		"    - E\n" +
		"      - F\n" +
		"  - C\n"
	assert.Equal(t, expected, buffer.String())
}

func TestTextColour(t *testing.T) {
	buffer := &bytes.Buffer{}
	options := render.Options{
		Colour:  true,
		Palette: render.DefaultPalette,
		Indent:  1,
	}
	err := render.Render(buffer, sample(t), options)
	require.NoError(t, err)

	expected := "- " + render.CoYellow + "A" + render.CoReset + "\n" +
		" - " + render.CoGreen + "B" + render.CoReset + "\n" +
		"  - " + render.CoBlue + "E" + render.CoReset + "\n" +
		"   - " + render.CoBlue + "F" + render.CoReset + "\n" +
		" - " + render.CoGreen + "C" + render.CoReset + "\n"
	assert.Equal(t, expected, buffer.String())
}

func TestTextUnknownColour(t *testing.T) {
	buffer := &bytes.Buffer{}
	options := render.Options{
		Colour:  true,
		Palette: []string{"no-such-colour"},
	}
	tr := tree.New[string]()
	require.NoError(t, tr.CreateRoot("A"))
	require.NoError(t, render.Render(buffer, tr, options))
	assert.Equal(t, "- A\n", buffer.String())
}

func TestEmpty(t *testing.T) {
	for _, format := range []render.Format{render.Text, render.ASCII} {
		buffer := &bytes.Buffer{}
		err := render.Render(buffer, tree.New[string](), render.Options{Format: format})
		require.NoError(t, err)
		assert.Equal(t, render.EmptyMessage+"\n", buffer.String(), "format: %s", format)
	}

	buffer := &bytes.Buffer{}
	err := render.Render(buffer, tree.New[string](), render.Options{Format: render.JSON})
	require.NoError(t, err)
	assert.Equal(t, "null\n", buffer.String())
}

func TestJSON(t *testing.T) {
	tr := tree.New[string]()
	require.NoError(t, tr.CreateRoot("A"))
	require.NoError(t, tr.AddNode("A", "C"))

	buffer := &bytes.Buffer{}
	err := render.Render(buffer, tr, render.Options{Format: render.JSON})
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":"A","children":[{"value":"C","children":[]}]}`, buffer.String())
}

func TestASCII(t *testing.T) {
	tr := tree.New[string]()
	require.NoError(t, tr.CreateRoot("A"))
	require.NoError(t, tr.AddNode("A", "C"))

	buffer := &bytes.Buffer{}
	err := render.Render(buffer, tr, render.Options{Format: render.ASCII})
	require.NoError(t, err)
	assert.Equal(t, "+ \"A\"\n\\------+ \"C\"\n", buffer.String())
}

func TestParseFormat(t *testing.T) {
	formats := []struct {
		name   string
		format render.Format
	}{
		{"", render.Text},
		{"text", render.Text},
		{"JSON", render.JSON},
		{" ascii ", render.ASCII},
	}
	for _, f := range formats {
		format, err := render.ParseFormat(f.name)
		assert.NoError(t, err, "name: %q", f.name)
		assert.Equal(t, f.format, format, "name: %q", f.name)
	}

	_, err := render.ParseFormat("xml")
	assert.Equal(t, fault.ErrUnknownOutputFormat, err)
	assert.Equal(t, "*unknown*", render.Format(99).String())
}

func TestColour(t *testing.T) {
	code, ok := render.Colour("Yellow")
	assert.True(t, ok)
	assert.Equal(t, render.CoYellow, code)

	_, ok = render.Colour("ultraviolet")
	assert.False(t, ok)
}

type countingSource struct {
	*tree.Tree[string]
	traversals int
}

func (s *countingSource) Traverse(start *tree.Node[string], visit func(*tree.Node[string])) {
	s.traversals += 1
	s.Tree.Traverse(start, visit)
}

func TestTextUsesTraverse(t *testing.T) {
	source := &countingSource{Tree: sample(t)}

	buffer := &bytes.Buffer{}
	require.NoError(t, render.Render(buffer, source, render.Options{Indent: 1}))
	assert.Equal(t, 1, source.traversals)
	assert.Equal(t, "- A\n - B\n  - E\n   - F\n - C\n", buffer.String())

	empty := &countingSource{Tree: tree.New[string]()}
	buffer.Reset()
	require.NoError(t, render.Render(buffer, empty, render.Options{}))
	assert.Equal(t, 0, empty.traversals)
	assert.Equal(t, render.EmptyMessage+"\n", buffer.String())
}
