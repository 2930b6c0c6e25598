package rope

import (
	"io"
	"unicode/utf8"
)

// Reader reads the text of a rope leaf by leaf. It implements io.Reader and
// io.RuneReader. As ropes are immutable, a reader always sees the snapshot it
// has been created for.
type Reader struct {
	stack []Node // right siblings still to visit
	text  string // unread part of the current leaf
}

// NewReader returns a reader for the text of node.
func NewReader(node Node) *Reader {
	r := &Reader{}
	if node != nil {
		r.stack = append(r.stack, node)
	}
	return r
}

// next advances to the next non-empty leaf. It returns false at the end of
// the rope.
func (r *Reader) next() bool {
	for r.text == "" {
		if len(r.stack) == 0 {
			return false
		}
		node := r.stack[len(r.stack)-1]
		r.stack = r.stack[:len(r.stack)-1]
		for {
			b, ok := node.(*Branch)
			if !ok {
				break
			}
			if b.right != nil {
				r.stack = append(r.stack, b.right)
			}
			if b.left == nil {
				node = nil
				break
			}
			node = b.left
		}
		if leaf, ok := node.(*Leaf); ok {
			r.text = leaf.text
		}
	}
	return true
}

// Read reads up to len(p) bytes into p.
func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if !r.next() {
			if n == 0 {
				return 0, io.EOF
			}
			break
		}
		c := copy(p[n:], r.text)
		r.text = r.text[c:]
		n += c
	}
	return n, nil
}

// ReadRune reads a single character.
func (r *Reader) ReadRune() (rune, int, error) {
	if !r.next() {
		return 0, 0, io.EOF
	}
	ch, size := utf8.DecodeRuneInString(r.text)
	r.text = r.text[size:]
	return ch, size, nil
}

var _ io.Reader = (*Reader)(nil)
var _ io.RuneReader = (*Reader)(nil)
