// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package render

import (
	"strings"
)

// ANSI colour codes
const (
	CoReset = "\x1b[0m"

	CoBlack   = "\x1b[30m"
	CoRed     = "\x1b[31m"
	CoGreen   = "\x1b[32m"
	CoYellow  = "\x1b[33m"
	CoBlue    = "\x1b[34m"
	CoMagenta = "\x1b[35m"
	CoCyan    = "\x1b[36m"
	CoWhite   = "\x1b[37m"
	CoGray    = "\x1b[90m"
)

var colourNames = map[string]string{
	"black":   CoBlack,
	"red":     CoRed,
	"green":   CoGreen,
	"yellow":  CoYellow,
	"blue":    CoBlue,
	"magenta": CoMagenta,
	"cyan":    CoCyan,
	"white":   CoWhite,
	"gray":    CoGray,
	"grey":    CoGray,
}

// DefaultPalette - depth 0 yellow, depth 1 green, anything deeper blue
var DefaultPalette = []string{"yellow", "green", "blue"}

// Colour - ANSI code for a colour name
func Colour(name string) (string, bool) {
	code, ok := colourNames[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// the colour for a depth, the last palette entry repeats for deeper
// levels; unknown names and an empty palette give no colour
func colourAt(palette []string, depth int) string {
	if 0 == len(palette) {
		return ""
	}
	if depth >= len(palette) {
		depth = len(palette) - 1
	}
	code, _ := Colour(palette[depth])
	return code
}
