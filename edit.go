package rope

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Insert inserts text into a rope at character position i, resulting in a
// new rope. If i is negative or greater than the size of node,
// ErrInvalidPosition is returned.
//
// Insertions at the very start or end of the rope only rebuild the leftmost
// or rightmost spine of the tree.
func Insert(node Node, text string, i int) (Node, error) {
	if i == 0 {
		return prepend(node, text), nil
	}
	if i == sizeOf(node) {
		return appendText(node, text), nil
	}
	left, right, err := split(node, i)
	if err != nil {
		return nil, err
	}
	return NewBranch(appendText(left, text), right), nil
}

// DeleteRange removes the characters in [start, end) from a rope, resulting
// in a new rope. If start == end, node is returned as is.
//
// If start is negative, end is greater than the size of node, or end is less
// than start, ErrInvalidRange is returned.
func DeleteRange(node Node, start, end int) (Node, error) {
	size := sizeOf(node)
	if start < 0 || end > size || end < start {
		return nil, fmt.Errorf("delete [%d,%d) with size %d: %w", start, end, size, ErrInvalidRange)
	}
	if start == end {
		return node, nil
	}
	left, rest, err := split(node, start)
	if err != nil {
		return nil, err
	}
	// rest starts at start, so cut it at the range length instead of at end
	_, right, err := split(rest, end-start)
	if err != nil {
		return nil, err
	}
	return NewBranch(left, right), nil
}

// Concat concatenates two ropes. The result is not rebalanced.
func Concat(left, right Node) Node {
	return NewBranch(left, right)
}

// prepend puts text in front of a rope. If node is a leaf, it is promoted to a
// branch, with the new text on the left. Otherwise the text is prepended to the
// left child.
func prepend(node Node, text string) Node {
	switch n := node.(type) {
	case nil:
		return NewLeaf(text)
	case *Leaf:
		return NewBranch(NewLeaf(text), n)
	case *Branch:
		return NewBranch(prepend(n.left, text), n.right)
	}
	panic(fmt.Sprintf("rope: unknown node type %T", node))
}

// appendText is the mirror of prepend along the right spine.
func appendText(node Node, text string) Node {
	switch n := node.(type) {
	case nil:
		return NewLeaf(text)
	case *Leaf:
		return NewBranch(n, NewLeaf(text))
	case *Branch:
		return NewBranch(n.left, appendText(n.right, text))
	}
	panic(fmt.Sprintf("rope: unknown node type %T", node))
}
