/*
Package rope implements a persistent binary rope for large, frequently edited texts.

# Ropes

Ropes organize fragments of immutable text internally in a binary tree. Edits
like insertion and deletion of text touch only the nodes along one or two
root-to-leaf paths, instead of copying the whole text. This package aims towards
applications which have to deal with text, i.e., large amounts of organized strings.

From Wikipedia:
In computer programming, a rope, or cord, is a data structure composed of
smaller strings that is used to efficiently store and manipulate a very long string.
For example, a text editing program may use a rope to represent the text being edited,
so that operations such as insertion, deletion, and random access can be
done efficiently. […] In summary, ropes are preferable when the data is large
and modified often.

_________________________________________________________________________

From a paper by Hans-J. Boehm, Russ Atkinson and Michael Plass, 1995:

# Ropes, an Alternative to Strings

1. Immutable strings, i.e. strings that cannot be modified in place, should be well
supported. A procedure should be able to operate on a string it was passed
without danger of accidentally modifying the caller’s data structures. This
becomes particularly important in the presence of concurrency, where in-place
updates to strings would often have to be properly synchronized. […]

2. Commonly occurring operations on strings should be efficient. In particular (non-destructive)
concatenation of strings and non-destructive substring operations should be fast,
and should not require excessive amounts of space.

_________________________________________________________________________

# Nodes

A rope is a tree of nodes. A node is either a *Leaf, carrying a fragment of text,
or a *Branch, joining a left and a right subtree. A branch caches the size of its
subtree, its weight (the size of the left subtree), its height and whether it is
balanced. These values are set once, when the branch is created, and never change.

All positions are character offsets, where a character is a Unicode code point.

Every operation returns a new root and leaves its argument untouched. Subtrees
not affected by an edit are shared between the old and the new version. Clients
may therefore keep old roots around as snapshots, and read them concurrently.

Ropes do not rebalance themselves. Many edits at the same spot will make a tree
degenerate; clients call Rebalance from time to time:

	r := rope.Node(rope.NewLeaf("Hello World"))
	r, _ = rope.Insert(r, ",", 5)
	r, _ = rope.DeleteRange(r, 6, 7)
	r = rope.Rebalance(r)
	fmt.Println(r)  // prints "Hello,World"

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rope

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

// RopeError is an error type for the rope module
type RopeError string

func (e RopeError) Error() string {
	return string(e)
}

// ErrInvalidPosition is flagged whenever a split position is negative or
// greater than the size of the node to split.
const ErrInvalidPosition = RopeError("invalid position")

// ErrInvalidRange is flagged whenever a range [start, end) does not fit
// into a rope.
const ErrInvalidRange = RopeError("invalid range")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = RopeError("illegal arguments")

// ErrRopeCompleted signals that a rope builder has already completed a rope and
// it's illegal to further add fragments.
const ErrRopeCompleted = RopeError("forbidden to add fragments; rope has been completed")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
