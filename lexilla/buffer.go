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

// Buffer is the document surface a lexer works against: random access to
// the text, line boundaries, the committed style array, and the per-line
// metadata persisted between scans (an opaque state integer and the fold
// word). Hosts own the buffer; lexers only read text and commit results.
//
// Lines are indexed from 0. A trailing newline opens a final empty line,
// so LineStart(LineCount()) == Len() always holds.
type Buffer interface {
	// Len returns the document length in bytes.
	Len() int
	// ByteAt returns the byte at pos, or 0 if pos is out of range.
	ByteAt(pos int) byte
	// CharAt decodes the UTF-8 character starting at pos and returns it
	// along with its width in bytes. Past the end it returns (0, 1).
	CharAt(pos int) (r rune, width int)

	// LineCount returns the number of lines.
	LineCount() int
	// LineOf returns the index of the line containing pos.
	LineOf(pos int) int
	// LineStart returns the offset of the first byte of line.
	LineStart(line int) int
	// LineEnd returns the offset just past the last content byte of line,
	// excluding its end-of-line characters.
	LineEnd(line int) int

	// ApplyStyle commits the style for every byte in [start, end).
	ApplyStyle(start, end int, s Style)
	// StyleAt returns the committed style at pos, or 0 if out of range.
	StyleAt(pos int) Style

	// LineState and SetLineState access the opaque per-line integer a
	// lexer persists so the host can decide how far an edit invalidates.
	LineState(line int) int
	SetLineState(line, state int)

	// LevelAt and SetLevel access the per-line fold word.
	LevelAt(line int) FoldLevel
	SetLevel(line int, level FoldLevel)
}
