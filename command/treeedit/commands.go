// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/treeedit/fault"
	"github.com/bitmark-inc/treeedit/render"
)

// the command set of one input line
func newApp(s *shell) *cli.App {

	app := cli.NewApp()
	app.Name = "treeedit"
	app.Usage = "edit a tree whose nodes have at most two children"
	app.UsageText = "COMMAND [ARGUMENTS...]"
	app.Version = version
	app.HideVersion = true

	app.Writer = s.out
	app.ErrWriter = s.errOut

	app.Metadata = map[string]interface{}{
		"shell": s,
	}

	app.Action = func(c *cli.Context) error {
		return fmt.Errorf("%w: %q, try: help", fault.ErrUnknownCommand, c.Args().First())
	}

	// values are opaque so flag parsing is skipped where a value
	// could start with "-"
	app.Commands = []cli.Command{
		{
			Name:            "root",
			Usage:           "create the root of an empty tree",
			ArgsUsage:       "VALUE",
			SkipFlagParsing: true,
			Action:          runRoot,
		},
		{
			Name:            "add",
			Usage:           "add a child to the first node holding PARENT",
			ArgsUsage:       "PARENT VALUE",
			SkipFlagParsing: true,
			Action:          runAdd,
		},
		{
			Name:            "update",
			Usage:           "change the value of the first node holding OLD",
			ArgsUsage:       "OLD NEW",
			SkipFlagParsing: true,
			Action:          runUpdate,
		},
		{
			Name:            "delete",
			Aliases:         []string{"del", "rm"},
			Usage:           "delete the first node holding VALUE and all of its children, deleting the root empties the tree",
			ArgsUsage:       "VALUE",
			SkipFlagParsing: true,
			Action:          runDelete,
		},
		{
			Name:            "find",
			Usage:           "show where the first node holding VALUE is",
			ArgsUsage:       "VALUE",
			SkipFlagParsing: true,
			Action:          runFind,
		},
		{
			Name:    "show",
			Aliases: []string{"ls"},
			Usage:   "display all nodes",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "json, j",
					Usage: " display as JSON",
				},
				cli.BoolFlag{
					Name:  "ascii, a",
					Usage: " display as an ASCII drawing",
				},
				cli.StringFlag{
					Name:  "format, f",
					Value: "",
					Usage: " display `FORMAT` [text|json|ascii]",
				},
			},
			Action: runShow,
		},
		{
			Name:   "count",
			Usage:  "display the number of nodes and levels",
			Action: runCount,
		},
		{
			Name:   "check",
			Usage:  "verify the tree structure",
			Action: runCheck,
		},
		{
			Name:   "clear",
			Usage:  "discard the tree",
			Action: runClear,
		},
		{
			Name:    "quit",
			Aliases: []string{"exit", "q"},
			Usage:   "leave the editor",
			Action:  runQuit,
		},
	}
	return app
}

func getShell(c *cli.Context) *shell {
	return c.App.Metadata["shell"].(*shell)
}

// exactly the named arguments must be present
func checkArguments(c *cli.Context, names ...string) ([]string, error) {
	args := c.Args()
	usage := strings.TrimSpace(c.Command.Name + " " + strings.Join(names, " "))
	if len(args) < len(names) {
		return nil, fmt.Errorf("%w: %s, usage: %s", fault.ErrMissingArgument, names[len(args)], usage)
	}
	if len(args) > len(names) {
		return nil, fmt.Errorf("%w, usage: %s", fault.ErrTooManyArguments, usage)
	}
	return []string(args), nil
}

func runRoot(c *cli.Context) error {
	args, err := checkArguments(c, "VALUE")
	if nil != err {
		return err
	}
	return getShell(c).editor.CreateRoot(args[0])
}

func runAdd(c *cli.Context) error {
	args, err := checkArguments(c, "PARENT", "VALUE")
	if nil != err {
		return err
	}
	return getShell(c).editor.AddNode(args[0], args[1])
}

func runUpdate(c *cli.Context) error {
	args, err := checkArguments(c, "OLD", "NEW")
	if nil != err {
		return err
	}
	return getShell(c).editor.UpdateNode(args[0], args[1])
}

func runDelete(c *cli.Context) error {
	args, err := checkArguments(c, "VALUE")
	if nil != err {
		return err
	}
	s := getShell(c)
	removed, err := s.editor.DeleteNode(args[0])
	if nil != err {
		return err
	}
	if !removed && s.verbose {
		fmt.Fprintf(c.App.Writer, "nothing removed: %q\n", args[0])
	}
	return nil
}

func runFind(c *cli.Context) error {
	args, err := checkArguments(c, "VALUE")
	if nil != err {
		return err
	}
	p := getShell(c).editor.Find(args[0])
	if nil == p {
		fmt.Fprintf(c.App.Writer, "not found: %q\n", args[0])
		return nil
	}

	path := []string{}
	for q := p; nil != q; q = q.Parent() {
		path = append([]string{q.Value()}, path...)
	}
	fmt.Fprintf(c.App.Writer, "found: %q  depth: %d  children: %d  path: %s\n",
		p.Value(), p.Depth(), len(p.Children()), strings.Join(path, " / "))
	return nil
}

func runShow(c *cli.Context) error {
	if _, err := checkArguments(c); nil != err {
		return err
	}
	s := getShell(c)

	name := c.String("format")
	switch {
	case c.Bool("json"):
		name = "json"
	case c.Bool("ascii"):
		name = "ascii"
	}
	if "" == name {
		return s.editor.Show(c.App.Writer)
	}

	format, err := render.ParseFormat(name)
	if nil != err {
		return fmt.Errorf("%w: %q", err, name)
	}
	return s.editor.ShowAs(c.App.Writer, format)
}

func runCount(c *cli.Context) error {
	if _, err := checkArguments(c); nil != err {
		return err
	}
	s := getShell(c)
	fmt.Fprintf(c.App.Writer, "nodes: %d  levels: %d\n", s.editor.Count(), s.editor.Height())
	return nil
}

func runCheck(c *cli.Context) error {
	if _, err := checkArguments(c); nil != err {
		return err
	}
	s := getShell(c)
	if err := s.editor.Check(); nil != err {
		return err
	}
	fmt.Fprintf(c.App.Writer, "ok: %d nodes\n", s.editor.Count())
	return nil
}

func runClear(c *cli.Context) error {
	if _, err := checkArguments(c); nil != err {
		return err
	}
	return getShell(c).editor.Clear()
}

func runQuit(c *cli.Context) error {
	getShell(c).quit = true
	return nil
}
