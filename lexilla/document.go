// Copyright 2026 fincs <fincs.ahk@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package lexilla

import (
	"unicode/utf8"
)

// A Document is an in-memory Buffer implementation: the text, its line
// index, the committed style array and the per-line metadata. It is what
// cmd/s4ahk and the tests drive the lexers with; editor hosts with their
// own storage implement Buffer directly instead.
type Document struct {
	text   []byte
	lines  []int // start offset of each line; lines[0] == 0
	styles []Style
	states []int
	levels []FoldLevel
}

// NewDocument returns a Document holding text.
func NewDocument(text []byte) *Document {
	d := &Document{text: text}
	d.reindex()
	d.styles = make([]Style, len(text))
	return d
}

// reindex rebuilds the line start table.
func (d *Document) reindex() {
	d.lines = d.lines[:0]
	d.lines = append(d.lines, 0)
	for i, b := range d.text {
		if b == '\n' {
			d.lines = append(d.lines, i+1)
		}
	}
}

// Text returns the document contents. The returned slice is the backing
// store; callers must not modify it.
func (d *Document) Text() []byte { return d.text }

// Len returns the document length in bytes.
func (d *Document) Len() int { return len(d.text) }

// ByteAt returns the byte at pos, or 0 if pos is out of range.
func (d *Document) ByteAt(pos int) byte {
	if pos < 0 || pos >= len(d.text) {
		return 0
	}
	return d.text[pos]
}

// CharAt decodes the UTF-8 character starting at pos.
func (d *Document) CharAt(pos int) (rune, int) {
	if pos < 0 || pos >= len(d.text) {
		return 0, 1
	}
	if b := d.text[pos]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(d.text[pos:])
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int { return len(d.lines) }

// LineOf returns the index of the line containing pos.
func (d *Document) LineOf(pos int) int {
	// Binary search for the last line start <= pos.
	i, j := 0, len(d.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if d.lines[h] <= pos {
			i = h + 1
		} else {
			j = h
		}
	}
	return i - 1
}

// LineStart returns the offset of the first byte of line. For line ==
// LineCount() it returns Len().
func (d *Document) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(d.lines) {
		return len(d.text)
	}
	return d.lines[line]
}

// LineEnd returns the offset just past the last content byte of line,
// excluding its end-of-line characters.
func (d *Document) LineEnd(line int) int {
	start := d.LineStart(line)
	end := d.LineStart(line + 1)
	if end > start && d.text[end-1] == '\n' {
		end--
	}
	if end > start && d.text[end-1] == '\r' {
		end--
	}
	return end
}

// ApplyStyle commits the style for every byte in [start, end).
func (d *Document) ApplyStyle(start, end int, s Style) {
	if start < 0 {
		start = 0
	}
	if end > len(d.styles) {
		end = len(d.styles)
	}
	for i := start; i < end; i++ {
		d.styles[i] = s
	}
}

// StyleAt returns the committed style at pos, or 0 if out of range.
func (d *Document) StyleAt(pos int) Style {
	if pos < 0 || pos >= len(d.styles) {
		return 0
	}
	return d.styles[pos]
}

// Styles returns the committed per-byte style array.
func (d *Document) Styles() []Style { return d.styles }

// LineState returns the opaque state stored for line, or 0.
func (d *Document) LineState(line int) int {
	if line < 0 || line >= len(d.states) {
		return 0
	}
	return d.states[line]
}

// SetLineState stores the opaque state for line.
func (d *Document) SetLineState(line, state int) {
	if line < 0 {
		return
	}
	for len(d.states) <= line {
		d.states = append(d.states, 0)
	}
	d.states[line] = state
}

// LevelAt returns the fold word stored for line, defaulting to
// FoldLevelBase on both halves.
func (d *Document) LevelAt(line int) FoldLevel {
	if line < 0 || line >= len(d.levels) || d.levels[line] == 0 {
		return Pack(FoldLevelBase, FoldLevelBase)
	}
	return d.levels[line]
}

// SetLevel stores the fold word for line.
func (d *Document) SetLevel(line int, level FoldLevel) {
	if line < 0 {
		return
	}
	for len(d.levels) <= line {
		d.levels = append(d.levels, 0)
	}
	d.levels[line] = level
}

// Replace splices text over [start, end) and returns the index of the
// first line whose lexing results are no longer valid. Styles before the
// splice point are kept; everything from the returned line onward must be
// re-lexed (seeding from the preceding line's persisted state).
func (d *Document) Replace(start, end int, text []byte) int {
	if start < 0 {
		start = 0
	}
	if end > len(d.text) {
		end = len(d.text)
	}
	if end < start {
		end = start
	}
	firstLine := d.LineOf(start)

	next := make([]byte, 0, len(d.text)-(end-start)+len(text))
	next = append(next, d.text[:start]...)
	next = append(next, text...)
	next = append(next, d.text[end:]...)
	d.text = next
	d.reindex()

	styles := make([]Style, len(d.text))
	copy(styles, d.styles[:min(start, len(d.styles))])
	d.styles = styles

	// Per-line metadata past the edit is stale; re-lexing overwrites it.
	if firstLine < len(d.states) {
		d.states = d.states[:firstLine]
	}
	return firstLine
}
