// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/mattn/go-shellwords"

	"github.com/bitmark-inc/treeedit/editor"
	"github.com/bitmark-inc/treeedit/fault"
)

// longest accepted input line
const maximumLineLength = 1024 * 1024

// an editing session fed by lines of commands
type shell struct {
	log         *logger.L
	editor      *editor.Editor
	out         io.Writer
	errOut      io.Writer
	prompt      string
	interactive bool
	verbose     bool
	quit        bool
}

func newShell(log *logger.L, e *editor.Editor, out io.Writer, errOut io.Writer, prompt string) *shell {
	return &shell{
		log:    log,
		editor: e,
		out:    out,
		errOut: errOut,
		prompt: prompt,
	}
}

// run commands from a reader until end of input or quit, returns the
// number of failed commands
//
// a failure is reported and the next command is read, as the tree is
// never left partly changed
func (s *shell) run(in io.Reader, source string) (int, error) {
	s.log.Infof("read commands from: %s", source)

	failures := 0
	lineNumber := 0
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maximumLineLength)
	for !s.quit {
		if s.interactive {
			fmt.Fprint(s.out, s.prompt)
		}
		if !scanner.Scan() {
			if s.interactive {
				fmt.Fprintln(s.out)
			}
			break
		}
		lineNumber += 1

		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}

		if err := s.execute(line); nil != err {
			failures += 1
			s.log.Warnf("%s:%d: %q  error: %s", source, lineNumber, line, err)
			if s.interactive {
				fmt.Fprintf(s.errOut, "error: %s\n", err)
			} else {
				fmt.Fprintf(s.errOut, "%s:%d: error: %s\n", source, lineNumber, err)
			}
		}
	}
	return failures, scanner.Err()
}

// run a script file
func (s *shell) runFile(fileName string) (int, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return 0, err
	}
	defer f.Close()

	return s.run(f, fileName)
}

// execute a single command line
func (s *shell) execute(line string) (err error) {
	defer func() {
		if r := recover(); nil != r {
			err = fault.Recovered(line, r)
		}
	}()

	words, err := splitLine(line)
	if nil != err {
		return err
	}
	if 0 == len(words) {
		return nil
	}

	app := newApp(s)
	return app.Run(append([]string{app.Name}, words...))
}

// split a line into words, single or double quotes group words
// containing spaces and a backslash escapes the next character
// outside single quotes
//
// an unquoted ; & | < or > is refused rather than silently ending the
// line there
func splitLine(line string) ([]string, error) {
	parser := shellwords.NewParser()
	words, err := parser.Parse(line)
	if nil != err {
		return nil, fault.ErrUnterminatedQuote
	}
	if parser.Position >= 0 {
		return nil, fault.ErrUnquotedSeparator
	}
	return words, nil
}
