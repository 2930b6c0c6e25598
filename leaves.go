package rope

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"
)

// EachLeaf iterates over all leaves of a rope in order.
//
// The callback receives each leaf and the character position of its first
// character. Iteration stops at the first callback error and returns that
// error to the caller.
func EachLeaf(node Node, f func(*Leaf, int) error) error {
	return traverse(node, 0, 0, func(n Node, pos int, _ int) error {
		if leaf, ok := n.(*Leaf); ok {
			return f(leaf, pos)
		}
		return nil
	})
}

// RangeLeaf returns an iterator over all leaves in logical order.
func RangeLeaf(node Node) iter.Seq[*Leaf] {
	return func(yield func(*Leaf) bool) {
		_ = EachLeaf(node, func(leaf *Leaf, _ int) error {
			if !yield(leaf) {
				return errStopIteration
			}
			return nil
		})
	}
}

const errStopIteration = RopeError("stop iteration")

// Substring returns the text in [start, end) as a Go string. Only leaves
// overlapping the range are visited.
func Substring(node Node, start, end int) (string, error) {
	if start < 0 || end > sizeOf(node) || end < start {
		return "", fmt.Errorf("substring [%d,%d) with size %d: %w", start, end, sizeOf(node), ErrInvalidRange)
	}
	var sb strings.Builder
	report(node, start, end, &sb)
	return sb.String(), nil
}

// report writes the characters of node in [start, end) to sb, where start and
// end are relative to node.
func report(node Node, start, end int, sb *strings.Builder) {
	if node == nil || start >= end {
		return
	}
	switch n := node.(type) {
	case *Leaf:
		i := byteOffset(n.text, n.size, start)
		j := byteOffset(n.text, n.size, end)
		sb.WriteString(n.text[i:j])
	case *Branch:
		if start < n.weight {
			report(n.left, start, min(end, n.weight), sb)
		}
		if end > n.weight {
			report(n.right, max(start-n.weight, 0), end-n.weight, sb)
		}
	}
}

// CharAt returns the character at position i.
// If i is not in [0, size), ErrInvalidPosition is returned.
func CharAt(node Node, i int) (rune, error) {
	if i < 0 || i >= sizeOf(node) {
		return utf8.RuneError, fmt.Errorf("character at %d with size %d: %w", i, sizeOf(node), ErrInvalidPosition)
	}
	for {
		switch n := node.(type) {
		case *Leaf:
			at := byteOffset(n.text, n.size, i)
			r, _ := utf8.DecodeRuneInString(n.text[at:])
			return r, nil
		case *Branch:
			if i < n.weight {
				node = n.left
			} else {
				node, i = n.right, i-n.weight
			}
		default:
			panic(fmt.Sprintf("rope: unexpected node %T in CharAt", node))
		}
	}
}
