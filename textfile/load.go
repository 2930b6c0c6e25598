package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/rope"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// prefetch is the number of fragments the reader may run ahead of the
// collector.
const prefetch = 16

// ErrIncompleteLoad is flagged if the fragment stream ended before the
// whole file had been read.
var ErrIncompleteLoad = errors.New("text file not loaded completely")

// collectHook, if set, is called for every fragment received by the collector,
// with a function reporting the number of fragments waiting in the channel.
// A non-nil error stops loading.
var collectHook func(index int, backlog func() int) error

// fragment is a message from the file reader to the collector.
type fragment struct {
	index int    // sequence number of this fragment
	pos   int64  // byte position of this fragment within the file
	text  string // content
	err   error  // I/O error, ends the stream
	last  bool   // end of file reached, ends the stream
}

// textFile represents an OS file which will be loaded as a rope.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a file, which must be a text file, and loads it as a balanced rope.
// Clients may indicate a recommended fragment length in bytes; 0 lets Load use
// a sensible default depending on the file size. Every fragment becomes a leaf.
//
// Fragments are read by a background goroutine which may run ahead of the
// construction of leaves by a bounded number of fragments. Load returns only
// after the file has been read completely and closed.
func Load(name string, fragSize int64) (rope.Node, error) {
	return LoadContext(context.Background(), name, fragSize)
}

// LoadContext is like Load, but stops loading if ctx is cancelled.
func LoadContext(ctx context.Context, name string, fragSize int64) (rope.Node, error) {
	tf, err := openFile(ctx, name)
	if err != nil {
		return nil, err
	}
	defer tf.file.Close()
	fragSize = fragmentSize(tf.info.Size(), fragSize)
	tracer().Debugf("loading %s: %d bytes, fragment size %d", tf.path, tf.info.Size(), fragSize)
	leaves, err := tf.load(ctx, fragSize)
	if err != nil {
		tracer().Errorf("loading %s: %v", tf.path, err)
		return nil, err
	}
	node := rope.Merge(leaves)
	tracer().Debugf("loaded %s: %d characters in %d leaves, height %d", tf.path,
		node.Size(), len(leaves), node.Height())
	return node, nil
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

// fragmentSize chooses a fragment length, if the client did not recommend a
// usable one.
func fragmentSize(size int64, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return fragSize
	}
	switch {
	case size < 1024:
		fragSize = 64
	case size < tenKb:
		fragSize = 256
	case size < hundredKb:
		fragSize = 512
	case size < oneMb:
		fragSize = twoKb
	default:
		fragSize = sixKb
	}
	return fragSize
}

// load starts a reader goroutine and collects the fragments it publishes,
// in order, as leaves.
func (tf *textFile) load(ctx context.Context, fragSize int64) ([]*rope.Leaf, error) {
	ch, ok := tf.cast.Sub(ctx, prefetch)
	if !ok {
		return nil, fmt.Errorf("cannot subscribe to fragment loader for %s", tf.path)
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		tf.readFragments(fragSize)
	}()
	defer func() {
		// the broadcast loop may be blocked on a full ch, and must be able to
		// receive the close operation
		go func() {
			for range ch {
			}
		}()
		tf.cast.Close() // makes pending and further Pub calls of the reader fail
		wg.Wait()
	}()
	leaves := make([]*rope.Leaf, 0, tf.info.Size()/fragSize+1)
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil, ErrIncompleteLoad
			}
			frag := msg.(fragment)
			if frag.err != nil {
				return nil, frag.err
			}
			if collectHook != nil {
				if err := collectHook(frag.index, func() int { return len(ch) }); err != nil {
					return nil, err
				}
			}
			if frag.index != len(leaves) {
				return nil, fmt.Errorf("fragment %d received out of order: %w", frag.index, ErrIncompleteLoad)
			}
			if frag.last {
				return leaves, nil
			}
			leaves = append(leaves, rope.NewLeaf(frag.text))
		}
	}
}

// readFragments reads the file sequentially and publishes its content in
// fragments of about fragSize bytes. A fragment never ends within a UTF-8
// sequence: incomplete trailing bytes are carried over to the next fragment.
// The stream ends with a fragment flagged as last, or with an error.
func (tf *textFile) readFragments(fragSize int64) {
	buf := make([]byte, fragSize+utf8.UTFMax)
	carry, index := 0, 0
	var pos int64
	for {
		n, err := io.ReadFull(tf.file, buf[carry:carry+int(fragSize)])
		total := carry + n
		eof := err == io.EOF || err == io.ErrUnexpectedEOF
		if err != nil && !eof {
			tf.cast.Pub(fragment{index: index, pos: pos, err: fmt.Errorf("error loading text fragment: %w", err)})
			return
		}
		cut := total
		if !eof {
			cut = runeBoundary(buf[:total])
		}
		if cut > 0 {
			frag := fragment{index: index, pos: pos, text: string(buf[:cut])}
			if !tf.cast.Pub(frag) {
				return // caster closed
			}
			index++
			pos += int64(cut)
		}
		if eof {
			tf.cast.Pub(fragment{index: index, pos: pos, last: true})
			return
		}
		carry = copy(buf, buf[cut:total])
	}
}

// runeBoundary returns the length of the longest prefix of b which does not
// end within a UTF-8 sequence.
func runeBoundary(b []byte) int {
	i := len(b) - 1
	for i > 0 && i > len(b)-utf8.UTFMax && !utf8.RuneStart(b[i]) {
		i--
	}
	if i < 0 || utf8.FullRune(b[i:]) {
		return len(b)
	}
	return i
}
