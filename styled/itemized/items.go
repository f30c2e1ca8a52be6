/*
Package itemized iterates over the style runs of styled lines.

Output drivers which are not interested in the style cascade use an Iterator
to visit items: runs of characters with a single effective style, and line
ends.

	it := itemized.IterateLines(text)
	for it.Next() {
		if it.EndOfLine() {
			…
			continue
		}
		st, from, to := it.Style()
		…
	}

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package itemized

import (
	"fmt"

	"github.com/npillmayer/termtext"
	"github.com/npillmayer/termtext/style"
	"github.com/npillmayer/termtext/styled"
)

// Iterator visits the runs of a sequence of lines. Every line, including the
// last one, is terminated by an end-of-line item.
type Iterator struct {
	lines   []styled.Line
	spans   []styled.Span
	line    int // current line
	inx     int // index of current span + 1, or 0 before the first span
	col     int // start column of current span
	eol     bool
	started bool
	lastErr error
}

// IterateLines creates an iterator over the lines of p. If p is nil, the
// iterator is empty and LastError reports termtext.ErrIllegalArguments.
func IterateLines(p styled.LineProvider) *Iterator {
	if p == nil {
		return &Iterator{lastErr: fmt.Errorf("%w: no lines to iterate", termtext.ErrIllegalArguments)}
	}
	return &Iterator{lines: p.Lines()}
}

// IterateLine creates an iterator over a single line.
func IterateLine(line styled.Line) *Iterator {
	return &Iterator{lines: []styled.Line{line}}
}

// Next moves to the next item. It returns false when there are no more items.
func (it *Iterator) Next() bool {
	if it.lastErr != nil || it.line >= len(it.lines) {
		return false
	}
	if !it.started {
		it.started = true
		it.spans = it.lines[0].Spans()
	} else if it.eol {
		it.line++
		if it.line >= len(it.lines) {
			return false
		}
		it.spans, it.inx, it.col, it.eol = it.lines[it.line].Spans(), 0, 0, false
	} else if it.inx > 0 {
		it.col += it.spans[it.inx-1].Width()
	}
	if it.inx >= len(it.spans) {
		it.eol = true
		return true
	}
	it.inx++
	return true
}

// LastError returns the error which stopped the iteration, if any.
func (it *Iterator) LastError() error {
	return it.lastErr
}

// EndOfLine is true if the current item terminates a line.
func (it *Iterator) EndOfLine() bool {
	return it.eol
}

// Line returns the number of the line of the current item.
func (it *Iterator) Line() int {
	return it.line
}

// Style returns the effective style of the current run, together with the
// column range [from…to) of the run within its line. At a line end, the style
// is empty and from = to = the width of the line.
func (it *Iterator) Style() (style.Style, int, int) {
	if !it.started || it.lastErr != nil {
		return style.Empty(), 0, 0
	}
	if it.eol {
		w := it.lines[it.line].Width()
		return style.Empty(), w, w
	}
	s := it.spans[it.inx-1]
	return s.OpenStyle(), it.col, it.col + s.Width()
}

// Text returns the characters of the current run. It is empty at line ends.
func (it *Iterator) Text() string {
	if !it.started || it.eol || it.lastErr != nil {
		return ""
	}
	return it.spans[it.inx-1].Content()
}
