// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tree_test

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treeedit/tree"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tree-test-")
	if nil != err {
		panic(fmt.Sprintf("temporary directory creation failed: %s", err))
	}
	var logConfig = logger.Configuration{
		Directory: dir,
		File:      "tree.log",
		Size:      1048576,
		Count:     20,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err := logger.Initialise(logConfig); err != nil {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	rc := m.Run()
	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

// compact text form of a tree: A:[B:[E],C]
func shape(t *tree.Tree[string]) string {
	if t.IsEmpty() {
		return "<empty>"
	}
	return shapeNode(t.Root())
}

func shapeNode(p *tree.Node[string]) string {
	children := p.Children()
	if 0 == len(children) {
		return p.Value()
	}
	s := make([]string, len(children))
	for i, c := range children {
		s[i] = shapeNode(c)
	}
	return p.Value() + ":[" + strings.Join(s, ",") + "]"
}

// build a tree from a list of parent/value pairs; a blank parent
// creates the root
func build(t *testing.T, pairs ...[2]string) *tree.Tree[string] {
	tr := tree.New[string]()
	tr.SetLog(logger.New("tree"))
	for _, p := range pairs {
		var err error
		if "" == p[0] {
			err = tr.CreateRoot(p[1])
		} else {
			err = tr.AddNode(p[0], p[1])
		}
		if nil != err {
			t.Fatalf("build: %q → %q  error: %s", p[0], p[1], err)
		}
	}
	return tr
}
