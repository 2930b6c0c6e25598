package rope

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// CharCursor navigates a rope by character positions.
//
// The cursor is bound to one rope snapshot. Movement is in character steps,
// while internal addressing uses a leaf index and a byte offset within the leaf.
type CharCursor struct {
	leaves []*Leaf // non-empty leaves, in order
	starts []int   // character position of each leaf
	size   int     // size of the rope
	leaf   int     // index of current leaf, len(leaves) at end of rope
	off    int     // byte offset within current leaf
	pos    int     // character position
}

// NewCharCursor creates a cursor at the start of node.
func NewCharCursor(node Node) *CharCursor {
	cc := &CharCursor{size: sizeOf(node)}
	_ = EachLeaf(node, func(leaf *Leaf, pos int) error {
		if leaf.size > 0 {
			cc.leaves = append(cc.leaves, leaf)
			cc.starts = append(cc.starts, pos)
		}
		return nil
	})
	return cc
}

// Pos returns the current cursor position.
func (cc *CharCursor) Pos() int {
	if cc == nil {
		return 0
	}
	return cc.pos
}

// Seek moves the cursor to character position i, with 0 ≤ i ≤ size.
func (cc *CharCursor) Seek(i int) error {
	if cc == nil {
		return ErrIllegalArguments
	}
	if i < 0 || i > cc.size {
		return fmt.Errorf("seek to %d in rope with size %d: %w", i, cc.size, ErrInvalidPosition)
	}
	cc.pos = i
	if i == cc.size {
		cc.leaf, cc.off = len(cc.leaves), 0
		return nil
	}
	k := sort.Search(len(cc.starts), func(k int) bool { return cc.starts[k] > i }) - 1
	leaf := cc.leaves[k]
	cc.leaf, cc.off = k, byteOffset(leaf.text, leaf.size, i-cc.starts[k])
	return nil
}

// Next returns the character at the current cursor position and advances by
// one character. Invalid UTF-8 bytes are returned as utf8.RuneError.
//
// If the cursor is at end of rope, ok is false.
func (cc *CharCursor) Next() (r rune, ok bool) {
	if cc == nil || cc.leaf >= len(cc.leaves) {
		return 0, false
	}
	text := cc.leaves[cc.leaf].text
	r, n := utf8.DecodeRuneInString(text[cc.off:])
	cc.off += n
	cc.pos++
	if cc.off >= len(text) {
		cc.leaf++
		cc.off = 0
	}
	return r, true
}

// Prev returns the character before the current cursor position and moves back
// by one character.
//
// If the cursor is at start of rope, ok is false.
func (cc *CharCursor) Prev() (r rune, ok bool) {
	if cc == nil || cc.pos == 0 {
		return 0, false
	}
	if cc.off == 0 {
		cc.leaf--
		cc.off = len(cc.leaves[cc.leaf].text)
	}
	r, n := utf8.DecodeLastRuneInString(cc.leaves[cc.leaf].text[:cc.off])
	cc.off -= n
	cc.pos--
	return r, true
}
