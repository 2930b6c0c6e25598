/*
Ropetool is a small command line tool for inspecting and editing ropes.

It loads text from the command line, from text files, from HTML files or from
the map form of a tree (YAML), applies edits and prints the resulting rope as
an outline, as map form, as a Graphviz DOT graph or as plain text.

	ropetool show --text "Hello World" --frag 3
	ropetool edit --text "Hello World" --insert 5:, --delete 0:1 --rebalance
	ropetool stats README.md
	ropetool html --format outline page.html

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
