/*
Package textfile loads UTF-8 text files as balanced ropes.

A file is cut into fragments which never split a UTF-8 sequence. Every fragment
becomes a leaf of the resulting rope. Fragments are read by a background
goroutine and broadcast to the collector, which keeps `Load` synchronous for
clients while the file is read ahead.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'rope'
func tracer() tracing.Trace {
	return tracing.Select("rope")
}
