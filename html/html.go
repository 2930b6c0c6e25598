/*
Package html creates ropes from the textual content of HTML fragments.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"fmt"
	"io"

	"github.com/npillmayer/rope"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

// InnerText creates a rope for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
//
// Every text node becomes a leaf of the resulting rope, which is balanced.
func InnerText(n *html.Node) (rope.Node, error) {
	if n == nil {
		return nil, fmt.Errorf("inner text of nil node: %w", rope.ErrIllegalArguments)
	}
	b := rope.NewBuilder()
	if err := collectText(n, b); err != nil {
		return nil, err
	}
	return b.Rope(), nil
}

func collectText(n *html.Node, b *rope.Builder) error {
	switch n.Type {
	case html.TextNode:
		if err := b.AppendString(n.Data); err != nil {
			return err
		}
	case html.CommentNode, html.DoctypeNode:
		return nil
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			tracer().Debugf("skipping <%s>", n.Data)
			return nil
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectText(c, b); err != nil {
			return err
		}
	}
	return nil
}

// TextFromHTML creates a rope from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (rope.Node, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	b := rope.NewBuilder()
	for _, n := range nodes {
		if err := collectText(n, b); err != nil {
			return nil, err
		}
	}
	return b.Rope(), nil
}
