// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treeedit/editor"
	"github.com/bitmark-inc/treeedit/render"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "treeedit-test-")
	if nil != err {
		panic(fmt.Sprintf("temporary directory creation failed: %s", err))
	}
	logging := logger.Configuration{
		Directory: dir,
		File:      "treeedit.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	rc := m.Run()
	logger.Finalise()
	os.RemoveAll(dir)
	os.Exit(rc)
}

// a non-interactive shell writing to buffers
func newTestShell(refresh bool) (*shell, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	settings := editor.Settings{
		Display: render.Options{
			Format: render.Text,
			Indent: 2,
		},
		Refresh: refresh,
	}
	e := editor.New(logger.New("editor"), editor.DefaultFactory, out, settings)
	return newShell(logger.New("main"), e, out, errOut, "> "), out, errOut
}
