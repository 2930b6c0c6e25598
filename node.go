package rope

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// We use 2 types of distinct nodes: branches and leaves. Together they form a
// closed set: Node carries an unexported marker method, so no other package may
// add node types, and every recursive operation switches over exactly these two.
//
// One design decision is to not include a reference to the parent node. This
// is necessary to be able to re-use subtrees and having a persistent
// (immutable) data structure without having to always clone the complete tree.
// Tree operations will create new nodes along the path of an edit, but
// leave unchanged parts of the tree in place and rather reference them.
//
// Branches built from map form may lack a child. A missing child is a nil Node;
// it counts as size 0 and height 0. Code in this package never calls a method
// on a child directly, but uses sizeOf, heightOf etc.

// Node is a node of a rope, either a *Leaf or a *Branch.
//
// A nil Node is a valid argument to all functions of this package and behaves
// like the empty string.
type Node interface {
	Size() int        // number of characters in this subtree
	Weight() int      // number of characters in the left subtree
	Height() int      // height of this subtree, leaves have height 1
	IsBalanced() bool // child heights differ by at most 1, recursively
	String() string   // the text of this subtree
	isNode()
}

// --- Leaves ----------------------------------------------------------------

// Leaf is a node carrying a fragment of text. The fragment is immutable.
type Leaf struct {
	text string
	size int // in characters
}

// NewLeaf creates a leaf node for a text fragment.
func NewLeaf(text string) *Leaf {
	return &Leaf{text: text, size: utf8.RuneCountInString(text)}
}

// Size is the length of the leaf's fragment in characters.
func (leaf *Leaf) Size() int {
	return leaf.size
}

// Weight of a leaf is equal to its size.
func (leaf *Leaf) Weight() int {
	return leaf.size
}

// Height of a leaf is 1.
func (leaf *Leaf) Height() int {
	return 1
}

// IsBalanced is always true for leaves.
func (leaf *Leaf) IsBalanced() bool {
	return true
}

func (leaf *Leaf) String() string {
	return leaf.text
}

func (leaf *Leaf) isNode() {}

// split splits a leaf at character position i, resulting in 2 new leaves.
// Edge positions yield an empty leaf on one side.
func (leaf *Leaf) split(i int) (*Leaf, *Leaf) {
	assert(i >= 0 && i <= leaf.size, "leaf split position out of range")
	at := byteOffset(leaf.text, leaf.size, i)
	return &Leaf{text: leaf.text[:at], size: i},
		&Leaf{text: leaf.text[at:], size: leaf.size - i}
}

// byteOffset returns the byte offset of the i-th character of s, where s has
// n characters.
func byteOffset(s string, n int, i int) int {
	if n == len(s) || i == 0 { // pure ASCII or start of string
		return i
	}
	if i == n {
		return len(s)
	}
	cnt := 0
	for at := range s {
		if cnt == i {
			return at
		}
		cnt++
	}
	return len(s)
}

// --- Branches --------------------------------------------------------------

// Branch is an inner node of a rope. Size, weight, height and balance are
// computed once from the children and cached.
type Branch struct {
	left, right Node
	size        int
	weight      int
	height      int
	balanced    bool
}

// NewBranch creates a branch with a left and a right child. Either child may
// be nil.
func NewBranch(left, right Node) *Branch {
	lh, rh := heightOf(left), heightOf(right)
	diff := lh - rh
	return &Branch{
		left:     left,
		right:    right,
		weight:   sizeOf(left),
		size:     sizeOf(left) + sizeOf(right),
		height:   max(lh, rh) + 1,
		balanced: balancedOf(left) && balancedOf(right) && diff <= 1 && diff >= -1,
	}
}

// Left returns the left child, which may be nil.
func (b *Branch) Left() Node {
	return b.left
}

// Right returns the right child, which may be nil.
func (b *Branch) Right() Node {
	return b.right
}

// Size is the number of characters in this subtree.
func (b *Branch) Size() int {
	return b.size
}

// Weight is the number of characters in the left subtree.
func (b *Branch) Weight() int {
	return b.weight
}

// Height is max(left.Height, right.Height)+1, with missing children counting 0.
func (b *Branch) Height() int {
	return b.height
}

// IsBalanced is true if the children's heights differ by at most one, and
// both children are balanced.
func (b *Branch) IsBalanced() bool {
	return b.balanced
}

// String returns the text of the subtree as a Go string. This may be an
// expensive operation, as it will allocate a buffer for all the characters
// of the subtree.
func (b *Branch) String() string {
	var sb strings.Builder
	_ = EachLeaf(b, func(leaf *Leaf, _ int) error {
		sb.WriteString(leaf.text)
		return nil
	})
	return sb.String()
}

func (b *Branch) isNode() {}

// --- Nil-safe helpers ------------------------------------------------------

func sizeOf(node Node) int {
	if node == nil {
		return 0
	}
	return node.Size()
}

func heightOf(node Node) int {
	if node == nil {
		return 0
	}
	return node.Height()
}

func balancedOf(node Node) bool {
	if node == nil {
		return true
	}
	return node.IsBalanced()
}

// orEmpty replaces a missing node by an empty leaf.
func orEmpty(node Node) Node {
	if node == nil {
		return NewLeaf("")
	}
	return node
}

// Text returns the text of a rope. A nil rope yields "".
func Text(node Node) string {
	if node == nil {
		return ""
	}
	return node.String()
}

// Size returns the number of characters of a rope. A nil rope has size 0.
func Size(node Node) int {
	return sizeOf(node)
}

// --- Traversal -------------------------------------------------------------

// traverse walks a subtree in pre-order, calling f for every node present.
// pos is the character position of the subtree's first character.
func traverse(node Node, pos int, depth int, f func(Node, int, int) error) error {
	if node == nil {
		return nil
	}
	if err := f(node, pos, depth); err != nil {
		return err
	}
	switch n := node.(type) {
	case *Leaf:
		return nil
	case *Branch:
		if err := traverse(n.left, pos, depth+1, f); err != nil {
			return err
		}
		return traverse(n.right, pos+n.weight, depth+1, f)
	}
	panic(fmt.Sprintf("rope: unknown node type %T", node))
}
