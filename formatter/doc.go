/*
Package formatter renders ropes on output devices with fixed-width fonts.

The console format prints the tree structure of a rope as an indented outline,
one node per line. Branches show their size, weight and height, leaves show a
preview of their text, truncated to a display width. Display widths respect
East Asian wide characters (UAX#11), measured on grapheme clusters (UAX#29).
If the output device is a terminal, node kinds are colored.

	console := formatter.NewConsole(nil)
	console.Print(root)

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}
