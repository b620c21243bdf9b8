// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/treeedit/configuration"
	"github.com/bitmark-inc/treeedit/editor"
	"github.com/bitmark-inc/treeedit/render"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file
	defaultPrompt        = "tree> "

	defaultColour = colourAuto
	defaultIndent = 2
	defaultFormat = "text"

	defaultLogDirectory = "log"
	defaultLogFile      = "treeedit.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// colour settings
const (
	colourAuto   = "auto"
	colourAlways = "always"
	colourNever  = "never"
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"editor":          "info",
		"tree":            "warn",
		"watcher":         "info",
		logger.DefaultTag: "critical",
	}
)

func (m LoglevelMap) copy() LoglevelMap {
	levels := make(LoglevelMap, len(m))
	for k, v := range m {
		levels[k] = v
	}
	return levels
}

// DisplayType - how the tree is shown
type DisplayType struct {
	Colour  string   `gluamapper:"colour" yaml:"colour" json:"colour"`
	Palette []string `gluamapper:"palette" yaml:"palette" json:"palette"`
	Indent  int      `gluamapper:"indent" yaml:"indent" json:"indent"`
	Format  string   `gluamapper:"format" yaml:"format" json:"format"`
	Refresh bool     `gluamapper:"refresh" yaml:"refresh" json:"refresh"`
}

// Configuration - all settings of the program
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" yaml:"data_directory" json:"data_directory"`
	Prompt        string               `gluamapper:"prompt" yaml:"prompt" json:"prompt"`
	Watch         bool                 `gluamapper:"watch" yaml:"watch" json:"watch"`
	Display       DisplayType          `gluamapper:"display" yaml:"display" json:"display"`
	Logging       logger.Configuration `gluamapper:"logging" yaml:"logging" json:"logging"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Prompt:        defaultPrompt,
		Watch:         false,

		Display: DisplayType{
			Colour:  defaultColour,
			Palette: nil, // filled after parsing so a shorter list is not merged
			Indent:  defaultIndent,
			Format:  defaultFormat,
			Refresh: true,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels.copy(),
		},
	}
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults with the data directory in
// the system temporary directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	dataDirectory := ""
	if "" == configurationFileName {
		dataDirectory = filepath.Join(os.TempDir(), "treeedit")
		options.DataDirectory = dataDirectory
	} else {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		dataDirectory, _ = filepath.Split(fileName)

		if err := configuration.ParseConfigurationFile(fileName, options); err != nil {
			return nil, err
		}
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// a null "logging" entry zeroes the whole section
	if "" == options.Logging.Directory {
		options.Logging.Directory = defaultLogDirectory
	}
	if "" == options.Logging.File {
		options.Logging.File = defaultLogFile
	}
	if options.Logging.Size <= 0 {
		options.Logging.Size = defaultLogSize
	}
	if options.Logging.Count <= 0 {
		options.Logging.Count = defaultLogCount
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = ensureAbsolute(options.DataDirectory, *f)
	}

	// an empty "levels" entry decodes to nil
	if nil == options.Logging.Levels {
		options.Logging.Levels = defaultLogLevels.copy()
	}

	if 0 == len(options.Display.Palette) {
		options.Display.Palette = append([]string{}, render.DefaultPalette...)
	}

	if err := options.Display.validate(); nil != err {
		return nil, err
	}

	return options, nil
}

func (d DisplayType) validate() error {
	switch strings.ToLower(d.Colour) {
	case colourAuto, colourAlways, colourNever:
	default:
		return fmt.Errorf("Colour: %q is not one of: %s, %s, %s", d.Colour, colourAuto, colourAlways, colourNever)
	}
	for _, name := range d.Palette {
		if _, ok := render.Colour(name); !ok {
			return fmt.Errorf("Palette: %q is not a known colour", name)
		}
	}
	if d.Indent < 0 {
		return fmt.Errorf("Indent: %d must not be negative", d.Indent)
	}
	if _, err := render.ParseFormat(d.Format); nil != err {
		return fmt.Errorf("Format: %q: %w", d.Format, err)
	}
	return nil
}

// convert to the editor settings, colour "auto" is on only for a
// terminal
func (d DisplayType) settings(terminal bool) editor.Settings {
	format, _ := render.ParseFormat(d.Format)

	colour := false
	switch strings.ToLower(d.Colour) {
	case colourAlways:
		colour = true
	case colourAuto:
		colour = terminal
	}

	return editor.Settings{
		Display: render.Options{
			Format:  format,
			Colour:  colour,
			Palette: d.Palette,
			Indent:  d.Indent,
		},
		Refresh: d.Refresh,
	}
}

// ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
