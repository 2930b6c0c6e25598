/*
Package metrics provides read-only measurements on ropes.

Shape reports statistics about the tree structure of a rope, which is helpful
for deciding when to rebalance. Words scans a range of characters for words,
leaf by leaf, and combines the partial results of adjacent leaves.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}
