// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/treeedit/fault"
	"github.com/bitmark-inc/treeedit/tree"
)

// Format - output format of a projection
type Format int

const (
	Text  Format = iota
	JSON  Format = iota
	ASCII Format = iota
)

// EmptyMessage - shown instead of an empty tree
const EmptyMessage = "No nodes to display"

// String - name of a format
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case ASCII:
		return "ascii"
	default:
		return "*unknown*"
	}
}

// ParseFormat - convert a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	case "ascii":
		return ASCII, nil
	default:
		return Text, fault.ErrUnknownOutputFormat
	}
}

// Options - controls a rendering
type Options struct {
	Format  Format
	Colour  bool
	Palette []string
	Indent  int
}

// Source - the part of a tree needed for display
type Source interface {
	Root() *tree.Node[string]
	Traverse(start *tree.Node[string], visit func(*tree.Node[string]))
	Print(io.Writer) int
}

// Render - write the projection of a tree in the selected format
func Render(w io.Writer, source Source, options Options) error {
	switch options.Format {
	case Text:
		return renderText(w, source, options)
	case JSON:
		return renderJSON(w, source.Root())
	case ASCII:
		if nil == source.Root() {
			_, err := fmt.Fprintln(w, EmptyMessage)
			return err
		}
		source.Print(w)
		return nil
	default:
		return fault.ErrUnknownOutputFormat
	}
}

func renderText(w io.Writer, source Source, options Options) error {
	root := source.Root()
	if nil == root {
		_, err := fmt.Fprintln(w, EmptyMessage)
		return err
	}

	indent := options.Indent
	if indent < 0 {
		indent = 0
	}

	var err error
	source.Traverse(root, func(p *tree.Node[string]) {
		if nil != err {
			return
		}
		depth := int(p.Depth())
		margin := strings.Repeat(" ", depth*indent)
		colour := ""
		if options.Colour {
			colour = colourAt(options.Palette, depth)
		}
		if "" == colour {
			_, err = fmt.Fprintf(w, "%s- %s\n", margin, p.Value())
		} else {
			_, err = fmt.Fprintf(w, "%s- %s%s%s\n", margin, colour, p.Value(), CoReset)
		}
	})
	return err
}

type jsonNode struct {
	Value    string      `json:"value"`
	Children []*jsonNode `json:"children"`
}

func toJSON(p *tree.Node[string]) *jsonNode {
	n := &jsonNode{
		Value:    p.Value(),
		Children: []*jsonNode{},
	}
	for _, c := range p.Children() {
		n.Children = append(n.Children, toJSON(c))
	}
	return n
}

func renderJSON(w io.Writer, root *tree.Node[string]) error {
	var message interface{}
	if nil != root {
		message = toJSON(root)
	}
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
