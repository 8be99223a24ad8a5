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

import "unicode/utf8"

// A Cursor walks a Buffer one character at a time while accumulating the
// current token span. SetState is the only operation that commits styles:
// it flushes the span gathered since the previous state change under the
// old style and opens a new span under the new one. ChangeState relabels
// the open span without committing, which is how identifiers are
// reclassified after their text is known.
//
// Ch, ChNext and ChPrev expose the character neighborhood; AtLineStart and
// AtLineEnd are true on the first character of a line and on its final
// end-of-line byte respectively. Multi-byte characters advance as a unit
// and every byte of one receives the same style.
type Cursor struct {
	doc Buffer
	end int

	pos       int
	spanStart int
	state     Style

	line          int
	lineStart     int
	lineStartNext int
	lineEnd       int

	width     int
	widthNext int

	Ch          rune
	ChNext      rune
	ChPrev      rune
	AtLineStart bool
	AtLineEnd   bool
}

// NewCursor returns a Cursor over doc covering [startPos, startPos+length),
// with the open span carrying initStyle. startPos may fall mid-document;
// the character neighborhood is reconstructed from the surrounding bytes.
func NewCursor(doc Buffer, startPos, length int, initStyle Style) *Cursor {
	end := startPos + length
	if end > doc.Len() {
		end = doc.Len()
	}
	c := &Cursor{
		doc:       doc,
		end:       end,
		pos:       startPos,
		spanStart: startPos,
		state:     initStyle,
		line:      doc.LineOf(startPos),
	}
	c.refreshLine()
	c.Ch, c.width = doc.CharAt(startPos)
	c.ChNext, c.widthNext = doc.CharAt(startPos + c.width)
	c.ChPrev = charBefore(doc, startPos)
	c.AtLineStart = c.pos == c.lineStart
	c.AtLineEnd = c.pos+c.width >= c.lineStartNext
	return c
}

// charBefore decodes the character ending at pos.
func charBefore(doc Buffer, pos int) rune {
	if pos <= 0 {
		return 0
	}
	if b := doc.ByteAt(pos - 1); b < utf8.RuneSelf {
		return rune(b)
	}
	start := pos - 1
	for start > 0 && pos-start < utf8.UTFMax && doc.ByteAt(start)&0xc0 == 0x80 {
		start--
	}
	r, _ := doc.CharAt(start)
	return r
}

func (c *Cursor) refreshLine() {
	c.lineStart = c.doc.LineStart(c.line)
	c.lineStartNext = c.doc.LineStart(c.line + 1)
	c.lineEnd = c.doc.LineEnd(c.line)
}

// More reports whether there are characters left to style.
func (c *Cursor) More() bool { return c.pos < c.end }

// Forward moves to the next character.
func (c *Cursor) Forward() {
	if c.pos >= c.end {
		return
	}
	c.ChPrev = c.Ch
	c.pos += c.width
	if c.pos >= c.lineStartNext && c.line+1 < c.doc.LineCount() {
		c.line++
		c.refreshLine()
	}
	c.Ch = c.ChNext
	c.width = c.widthNext
	c.ChNext, c.widthNext = c.doc.CharAt(c.pos + c.width)
	c.AtLineStart = c.pos == c.lineStart
	c.AtLineEnd = c.pos+c.width >= c.lineStartNext
}

// ForwardN calls Forward n times.
func (c *Cursor) ForwardN(n int) {
	for i := 0; i < n; i++ {
		c.Forward()
	}
}

// Match reports whether the current and next characters are a and b.
func (c *Cursor) Match(a, b rune) bool {
	return c.Ch == a && c.ChNext == b
}

// State returns the style of the open span.
func (c *Cursor) State() Style { return c.state }

// SetState commits the open span under its current style and opens a new
// span at the current position under s.
func (c *Cursor) SetState(s Style) {
	if c.pos > c.spanStart {
		c.doc.ApplyStyle(c.spanStart, c.pos, c.state)
	}
	c.spanStart = c.pos
	c.state = s
}

// ForwardSetState advances one character and then begins a new span, so
// the current character is the last of the span being closed.
func (c *Cursor) ForwardSetState(s Style) {
	c.Forward()
	c.SetState(s)
}

// ChangeState relabels the open span without committing it.
func (c *Cursor) ChangeState(s Style) {
	c.state = s
}

// Complete commits whatever span remains open. Must be called once after
// the scan loop ends.
func (c *Cursor) Complete() {
	if c.pos > c.spanStart {
		c.doc.ApplyStyle(c.spanStart, c.pos, c.state)
		c.spanStart = c.pos
	}
}

// Pos returns the byte offset of the current character.
func (c *Cursor) Pos() int { return c.pos }

// LineIndex returns the index of the current line.
func (c *Cursor) LineIndex() int { return c.line }

// LineEndPos returns the offset just past the current line's content,
// excluding end-of-line characters.
func (c *Cursor) LineEndPos() int { return c.lineEnd }

// LengthCurrent returns the byte length of the open span.
func (c *Cursor) LengthCurrent() int { return c.pos - c.spanStart }

// CurrentLowered returns the text of the open span with ASCII letters
// lowered.
func (c *Cursor) CurrentLowered() string {
	b := make([]byte, 0, c.pos-c.spanStart)
	for i := c.spanStart; i < c.pos; i++ {
		ch := c.doc.ByteAt(i)
		if ch >= 'A' && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		b = append(b, ch)
	}
	return string(b)
}
