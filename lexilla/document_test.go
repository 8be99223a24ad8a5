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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentLineIndex(t *testing.T) {
	d := NewDocument([]byte("a\nbc\r\n\nlast"))

	assert.Equal(t, 11, d.Len())
	assert.Equal(t, 4, d.LineCount())

	assert.Equal(t, 0, d.LineStart(0))
	assert.Equal(t, 2, d.LineStart(1))
	assert.Equal(t, 6, d.LineStart(2))
	assert.Equal(t, 7, d.LineStart(3))
	// Past the last line, LineStart degrades to the document length.
	assert.Equal(t, 11, d.LineStart(4))

	assert.Equal(t, 0, d.LineOf(0))
	assert.Equal(t, 0, d.LineOf(1))
	assert.Equal(t, 1, d.LineOf(2))
	assert.Equal(t, 1, d.LineOf(5))
	assert.Equal(t, 2, d.LineOf(6))
	assert.Equal(t, 3, d.LineOf(10))

	// LineEnd excludes the EOL bytes, CRLF included.
	assert.Equal(t, 1, d.LineEnd(0))
	assert.Equal(t, 4, d.LineEnd(1))
	assert.Equal(t, 6, d.LineEnd(2))
	assert.Equal(t, 11, d.LineEnd(3))
}

func TestDocumentCharAt(t *testing.T) {
	d := NewDocument([]byte("aé!"))

	r, w := d.CharAt(0)
	assert.Equal(t, 'a', r)
	assert.Equal(t, 1, w)

	r, w = d.CharAt(1)
	assert.Equal(t, 'é', r)
	assert.Equal(t, 2, w)

	r, _ = d.CharAt(99)
	assert.Equal(t, rune(0), r)
}

func TestDocumentStylesAndStates(t *testing.T) {
	d := NewDocument([]byte("hello"))
	d.ApplyStyle(1, 3, 7)
	assert.Equal(t, Style(0), d.StyleAt(0))
	assert.Equal(t, Style(7), d.StyleAt(1))
	assert.Equal(t, Style(7), d.StyleAt(2))
	assert.Equal(t, Style(0), d.StyleAt(3))

	assert.Equal(t, 0, d.LineState(0))
	d.SetLineState(2, 42)
	assert.Equal(t, 42, d.LineState(2))
	assert.Equal(t, 0, d.LineState(1))

	// Unset fold levels read back as base level on both halves.
	assert.Equal(t, Pack(FoldLevelBase, FoldLevelBase), d.LevelAt(5))
	d.SetLevel(1, Pack(FoldLevelBase, FoldLevelBase+1)|FoldLevelHeaderFlag)
	assert.True(t, d.LevelAt(1).IsHeader())
	assert.Equal(t, FoldLevelBase+1, d.LevelAt(1).Next())
}

func TestDocumentReplace(t *testing.T) {
	d := NewDocument([]byte("one\ntwo\nthree\n"))
	d.ApplyStyle(0, d.Len(), 3)

	first := d.Replace(4, 7, []byte("2"))
	require.Equal(t, 1, first)
	assert.Equal(t, "one\n2\nthree\n", string(d.Text()))
	assert.Equal(t, 4, d.LineCount())

	// Styles before the splice survive, the rest is cleared.
	assert.Equal(t, Style(3), d.StyleAt(3))
	assert.Equal(t, Style(0), d.StyleAt(4))

	// Pure insertion at the very start.
	first = d.Replace(0, 0, []byte("; c\n"))
	assert.Equal(t, 0, first)
	assert.Equal(t, "; c\none\n2\nthree\n", string(d.Text()))

	// Deletion spanning a line boundary.
	first = d.Replace(4, 8, nil)
	assert.Equal(t, 1, first)
	assert.Equal(t, "; c\n2\nthree\n", string(d.Text()))
}
