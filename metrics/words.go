package metrics

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/rope"
)

// WordMetric finds words in a rope. A word is a maximal run of characters which
// are not white space.
type WordMetric struct{}

// Words returns a metric which locates words.
func Words() WordMetric {
	return WordMetric{}
}

// WordsValue is the result of applying the word metric to a range of text.
// Spans are given as character offsets within the rope.
type WordsValue struct {
	from, to int      // measured range of the rope
	spans    [][2]int // half-open word spans, in order
}

// Count returns the number of words found.
func (v WordsValue) Count() int {
	return len(v.spans)
}

// Spans returns the word spans as pairs of character offsets [start, end).
func (v WordsValue) Spans() [][]int {
	spans := make([][]int, len(v.spans))
	for i, s := range v.spans {
		spans[i] = []int{s[0], s[1]}
	}
	return spans
}

// Len returns the number of characters measured.
func (v WordsValue) Len() int {
	return v.to - v.from
}

func (v WordsValue) String() string {
	return fmt.Sprintf("words{ [%d,%d) |W|=%d }", v.from, v.to, len(v.spans))
}

var errDone = errors.New("done")

// Apply locates the words within the range [i, j) of node. Words crossing
// the range boundaries are cut at the boundary.
//
// Every leaf is measured on its own, and the values of adjacent leaves are
// combined, joining words which span a leaf boundary.
func (m WordMetric) Apply(node rope.Node, i, j int) (WordsValue, error) {
	if i < 0 || j < i || j > rope.Size(node) {
		return WordsValue{}, fmt.Errorf("words in [%d,%d) of rope with size %d: %w",
			i, j, rope.Size(node), rope.ErrInvalidRange)
	}
	value := WordsValue{from: i, to: i}
	if i == j {
		return value, nil
	}
	err := rope.EachLeaf(node, func(leaf *rope.Leaf, pos int) error {
		if pos >= j {
			return errDone
		}
		if pos+leaf.Size() <= i || leaf.Size() == 0 {
			return nil
		}
		lo, hi := max(i, pos), min(j, pos+leaf.Size())
		frag, err := rope.Substring(leaf, lo-pos, hi-pos)
		if err != nil {
			return err
		}
		value = value.combine(measure(frag, lo))
		return nil
	})
	if err != nil && err != errDone {
		return WordsValue{}, err
	}
	tracer().Debugf("words in [%d,%d): %d", i, j, value.Count())
	return value, nil
}

// measure scans a text fragment located at character position pos.
func measure(frag string, pos int) WordsValue {
	v := WordsValue{from: pos, to: pos}
	scnr := bufio.NewScanner(strings.NewReader(frag))
	scnr.Buffer(make([]byte, 0, min(len(frag)+utf8.UTFMax, 4096)), len(frag)+utf8.UTFMax)
	scnr.Split(splitWords)
	for scnr.Scan() {
		token := scnr.Bytes()
		n := utf8.RuneCount(token)
		r, _ := utf8.DecodeRune(token)
		if !unicode.IsSpace(r) {
			v.addSpan(v.to, v.to+n)
		}
		v.to += n
	}
	return v
}

// combine appends the value of the adjacent right sibling.
func (v WordsValue) combine(right WordsValue) WordsValue {
	if v.to != right.from {
		tracer().Errorf("metric calculation: combining [%d,%d) with [%d,%d)",
			v.from, v.to, right.from, right.to)
		panic("metrics.Words combine: values are not adjacent")
	}
	for _, s := range right.spans {
		v.addSpan(s[0], s[1])
	}
	v.to = right.to
	return v
}

// addSpan appends a word span, extending the last one if they touch.
func (v *WordsValue) addSpan(start, end int) {
	if k := len(v.spans); k > 0 && v.spans[k-1][1] == start {
		v.spans[k-1][1] = end
		return
	}
	v.spans = append(v.spans, [2]int{start, end})
}

// splitWords is a bufio.SplitFunc returning alternating runs of white space
// and of other characters. Invalid UTF-8 bytes belong to words.
func splitWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if len(data) == 0 {
		return 0, nil, nil
	}
	spaces := false
	pos := 0
	for pos < len(data) {
		if !atEOF && !utf8.FullRune(data[pos:]) {
			return 0, nil, nil // incomplete, get more bytes
		}
		r, width := utf8.DecodeRune(data[pos:])
		isSpace := unicode.IsSpace(r)
		if pos == 0 {
			spaces = isSpace
		} else if isSpace != spaces {
			return pos, data[:pos], nil
		}
		pos += width
	}
	if atEOF {
		return pos, data, nil
	}
	return 0, nil, nil
}
