// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=mocks/tree.go -package=mocks github.com/bitmark-inc/treeedit/editor Tree

package editor

import (
	"io"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treeedit/fault"
	"github.com/bitmark-inc/treeedit/render"
	"github.com/bitmark-inc/treeedit/tree"
)

// Tree - operations the editor needs from a tree
type Tree interface {
	CreateRoot(value string) error
	AddNode(parentValue string, value string) error
	UpdateNode(oldValue string, newValue string) error
	DeleteNode(value string) bool
	Find(value string) *tree.Node[string]
	Root() *tree.Node[string]
	Traverse(start *tree.Node[string], visit func(*tree.Node[string]))
	Count() int
	Height() int
	Check() error
	Print(w io.Writer) int
}

// Factory - create an empty tree
type Factory func() Tree

// Settings - display related session settings
type Settings struct {
	Display render.Options
	Refresh bool // render after every successful change
}

// Editor - an editing session
type Editor struct {
	sync.Mutex // protects settings only

	log      *logger.L
	tree     Tree
	factory  Factory
	w        io.Writer
	settings Settings
}

// DefaultFactory - a logging tree of strings
func DefaultFactory() Tree {
	t := tree.New[string]()
	t.SetLog(logger.New("tree"))
	return t
}

// New - create a session with an empty tree, projections are written
// to w
func New(log *logger.L, factory Factory, w io.Writer, settings Settings) *Editor {
	if nil == factory {
		factory = DefaultFactory
	}
	return &Editor{
		log:      log,
		tree:     factory(),
		factory:  factory,
		w:        w,
		settings: settings,
	}
}

// Settings - the current display settings
func (e *Editor) Settings() Settings {
	e.Lock()
	defer e.Unlock()
	return e.settings
}

// SetSettings - replace the display settings
func (e *Editor) SetSettings(settings Settings) {
	e.Lock()
	e.settings = settings
	e.Unlock()
	e.log.Debugf("settings: %+v", settings)
}

// CreateRoot - start the tree
func (e *Editor) CreateRoot(value string) error {
	if err := validate(value); nil != err {
		return e.failed("root", err)
	}
	if err := e.tree.CreateRoot(value); nil != err {
		return e.failed("root", err)
	}
	e.log.Infof("root: %q", value)
	return e.refresh()
}

// AddNode - add a child to the first node holding parentValue
func (e *Editor) AddNode(parentValue string, value string) error {
	if err := validate(parentValue, value); nil != err {
		return e.failed("add", err)
	}
	if err := e.tree.AddNode(parentValue, value); nil != err {
		return e.failed("add", err)
	}
	e.log.Infof("add: %q → %q", parentValue, value)
	return e.refresh()
}

// UpdateNode - change the value of the first node holding oldValue
func (e *Editor) UpdateNode(oldValue string, newValue string) error {
	if err := validate(oldValue, newValue); nil != err {
		return e.failed("update", err)
	}
	if err := e.tree.UpdateNode(oldValue, newValue); nil != err {
		return e.failed("update", err)
	}
	e.log.Infof("update: %q → %q", oldValue, newValue)
	return e.refresh()
}

// DeleteNode - remove the first node holding value and its sub-tree
//
// a missing value is not an error, the boolean tells whether
// anything was removed; the display is refreshed either way
func (e *Editor) DeleteNode(value string) (bool, error) {
	if err := validate(value); nil != err {
		return false, e.failed("delete", err)
	}
	removed := e.tree.DeleteNode(value)
	e.log.Infof("delete: %q  removed: %t", value, removed)
	return removed, e.refresh()
}

// Find - the first node holding value or nil
func (e *Editor) Find(value string) *tree.Node[string] {
	p := e.tree.Find(value)
	e.log.Debugf("find: %q  found: %t", value, nil != p)
	return p
}

// Count - number of nodes
func (e *Editor) Count() int {
	return e.tree.Count()
}

// Height - number of levels
func (e *Editor) Height() int {
	return e.tree.Height()
}

// Check - verify the tree structure
func (e *Editor) Check() error {
	if err := e.tree.Check(); nil != err {
		return e.failed("check", err)
	}
	return nil
}

// Clear - discard the tree and start with an empty one
func (e *Editor) Clear() error {
	e.tree = e.factory()
	e.log.Info("clear")
	return e.refresh()
}

// Show - write the projection to w using the current display
// settings
func (e *Editor) Show(w io.Writer) error {
	return render.Render(w, e.tree, e.Settings().Display)
}

// ShowAs - write the projection to w in a specific format
func (e *Editor) ShowAs(w io.Writer, format render.Format) error {
	options := e.Settings().Display
	options.Format = format
	return render.Render(w, e.tree, options)
}

func (e *Editor) refresh() error {
	if !e.Settings().Refresh || nil == e.w {
		return nil
	}
	return e.Show(e.w)
}

func (e *Editor) failed(operation string, err error) error {
	e.log.Warnf("%s: error: %s", operation, err)
	return err
}

func validate(values ...string) error {
	for _, v := range values {
		if "" == v {
			return fault.ErrEmptyValue
		}
	}
	return nil
}
