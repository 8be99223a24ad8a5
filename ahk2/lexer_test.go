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

package ahk2

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincs/lexilla-s4ahk/lexilla"
)

func newTestLexer(t *testing.T) *Lexer {
	t.Helper()
	lx := NewLexer()
	require.NoError(t, lx.SetWordList(WLDirectivesExpr, "singleinstance warn maxthreads"))
	require.NoError(t, lx.SetWordList(WLDirectivesStr, "include requires"))
	require.NoError(t, lx.SetWordList(WLControlFlow,
		"if else loop while for until return goto break continue switch case try catch finally throw"))
	require.NoError(t, lx.SetWordList(WLReservedWords, "and or not in is contains true false extends"))
	require.NoError(t, lx.SetWordList(WLNamedKeys, "a b c f1 enter space pause ctrl lbutton"))
	return lx
}

// One letter per byte; EOL bytes pass through so expectations can be
// written line by line.
var styleLetters = map[lexilla.Style]byte{
	Default:      '.',
	CommentLine:  'c',
	CommentBlock: 'C',
	String:       's',
	Escape:       'e',
	Number:       'n',
	Operator:     'o',
	Directive:    'd',
	Flow:         'f',
	Reserved:     'r',
	IdTopLevel:   'i',
	IdObject:     'j',
	Label:        'l',
	Error:        'E',
}

func renderStyles(doc *lexilla.Document) string {
	var b strings.Builder
	for i, ch := range doc.Text() {
		if ch == '\n' || ch == '\r' {
			b.WriteByte(ch)
			continue
		}
		if letter, ok := styleLetters[doc.StyleAt(i)]; ok {
			b.WriteByte(letter)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}

func lexString(t *testing.T, src string) string {
	t.Helper()
	lx := newTestLexer(t)
	doc := lexilla.NewDocument([]byte(src))
	lx.Lex(doc, 0, doc.Len(), Default)
	return renderStyles(doc)
}

func TestLexBasics(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"assignment", "x := 1 + 2\n", "i.oo.n.o.n\n"},
		{"line comment", "; hello\n", "ccccccc\n"},
		{"comment after code", "x := 1 ; done\n", "i.oo.n.cccccc\n"},
		{"string with escape", "x := \"a`n\" . y\n", "i.oo.ssees.o.i\n"},
		{"bad escape", "x := \"a`qb\"\n", "i.oo.ssEEEE\n"},
		{"quoted single", "x := 'ab'\n", "i.oo.ssss\n"},
		{"unknown char", "x := @\n", "i.oo.E\n"},
		{"deref operators", "x%n%y\n", "ioioi\n"},
		{"object property", "a.props\n", "iojjjjj\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexString(t, tt.src))
		})
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"integer", "42\n", "nn\n"},
		{"hex", "0x1F\n", "nnnn\n"},
		{"hex no digits", "0x + 1\n", "nnEEEE\n"},
		{"glued identifier", "3foo\n", "nEEE\n"},
		{"float exponent", "3.14e+2\n", "nnnnnnn\n"},
		{"dangling exponent", "3.14e q\n", "nnnnnEE\n"},
		{"point decimal", "x := .5\n", "i.oo.nn\n"},
		// "3.foo" is an integer, a concat dot and a property access.
		{"dot then property", "3.foo\n", "nojjj\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexString(t, tt.src))
		})
	}
}

func TestLexDirectives(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"expression directive", "#SingleInstance Force\n", "ddddddddddddddd.iiiii\n"},
		{"string directive", "#Include lib\\a.ahk\n", "ddddddddssssssssss\n"},
		{"unknown directive", "#Foo bar\n", "ddddEEEE\n"},
		{"not at line start", "x #y\n", "i.EE\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexString(t, tt.src))
		})
	}
}

func TestLexHotkeysAndLabels(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"hotkey", "F1::MsgBox\n", "llooiiiiii\n"},
		{"remap", "a::b\n", "loos\n"},
		{"remap pause exemption", "a::Pause\n", "looiiiii\n"},
		{"hotstring", "::btw::by the way\n", "oosssoossssssssss\n"},
		{"hotstring execute", ":X:btw::MsgBox\n", "ososssooiiiiii\n"},
		{"label", "MyLabel:\n", "lllllllo\n"},
		{"switch default", "Default:\n", "fffffffo\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexString(t, tt.src))
		})
	}
}

func TestLexKeywords(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"flow", "if x\n", "ff.i\n"},
		{"reserved", "x := true and false\n", "i.oo.rrrr.rrr.rrrrr\n"},
		{"loop files", "Loop Files, p\n", "ffff.fffffo.i\n"},
		{"goto label", "goto Cleanup\n", "ffff.lllllll\n"},
		{"class extends", "class Foo extends Bar {\n", "rrrrr.iii.rrrrrrr.iii.o\n"},
		{"accessor", "prop {\nget => x\n}\n", "iiii.o\nrrr.oo.i\no\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexString(t, tt.src))
		})
	}
}

func TestLexBlockComments(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{"spanning", "/* a\nstill\n*/\nx := 1\n", "CCCC\nCCCCC\nCC\ni.oo.n\n"},
		// Reopening on the close line is rejected.
		{"reopen same line", "/* a\n*/ /* b\n", "CCCC\nCC.EEEE\n"},
		// Mid-line /* is just operators.
		{"not at line start", "x := 1 /* y\n", "i.oo.n.oo.i\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexString(t, tt.src))
		})
	}
}

func TestLexContinuationSections(t *testing.T) {
	tests := []struct {
		name, src, want string
	}{
		{
			"string section",
			"x := \"\n(\nabc ; txt\n)\"\ny := 1\n",
			"i.oo.s\no\nsssssssss\nos\ni.oo.n\n",
		},
		{
			"comments option",
			"x := \"\n( comments\nabc ; txt\n)\"\n",
			"i.oo.s\nosssssssss\nssssccccc\nos\n",
		},
		{
			"escape disabled",
			"x := \"\n( `\nraw `n\n)\"\n",
			"i.oo.s\noss\nssssss\nos\n",
		},
		{
			"code section",
			"y := 1\n(\n1 + 2\n)\n",
			"i.oo.n\no\nn.o.n\no\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexString(t, tt.src))
		})
	}
}

func TestLexSubStyles(t *testing.T) {
	lx := newTestLexer(t)
	first, err := lx.SubStyles().Allocate(IdTopLevel, 1)
	require.NoError(t, err)
	require.NoError(t, lx.SubStyles().SetIdentifiers(first, "msgbox"))

	doc := lexilla.NewDocument([]byte("MsgBox x\n"))
	lx.Lex(doc, 0, doc.Len(), Default)

	for i := 0; i < 6; i++ {
		assert.Equal(t, first, doc.StyleAt(i), "byte %d", i)
	}
	assert.Equal(t, IdTopLevel, doc.StyleAt(7))
}

func TestLexLineStates(t *testing.T) {
	lx := newTestLexer(t)
	doc := lexilla.NewDocument([]byte("x := \"\n(\nabc\n)\"\ny\n"))
	lx.Lex(doc, 0, doc.Len(), Default)

	// The continuation flags are surfaced as the host-visible line state.
	assert.Equal(t, 0, doc.LineState(0))
	assert.Equal(t, int(ContInside|ContString), doc.LineState(1))
	assert.Equal(t, int(ContInside|ContString), doc.LineState(2))
	assert.Equal(t, 0, doc.LineState(3))

	st, ok := lx.States().Get(0)
	require.True(t, ok)
	assert.Equal(t, String, st.FinalToken)
	assert.Equal(t, byte('"'), st.Str.End)
}

func TestLexIdempotent(t *testing.T) {
	src := "x := \"\n(\nabc\n)\"\n/* c\n*/\nLoop Files, p\n"
	lx := newTestLexer(t)
	require.NoError(t, lx.SetProperty("fold", "1"))
	doc := lexilla.NewDocument([]byte(src))

	lx.Lex(doc, 0, doc.Len(), Default)
	lx.Fold(doc, 0, doc.Len(), Default)
	styles := renderStyles(doc)
	levels := make([]lexilla.FoldLevel, doc.LineCount())
	for i := range levels {
		levels[i] = doc.LevelAt(i)
	}

	lx.Lex(doc, 0, doc.Len(), Default)
	lx.Fold(doc, 0, doc.Len(), Default)
	assert.Equal(t, styles, renderStyles(doc))
	for i := range levels {
		assert.Equal(t, levels[i], doc.LevelAt(i), "line %d", i)
	}
}

// Relex from the edited line only and check the result matches a clean
// scan of the whole edited text.
func TestLexIncremental(t *testing.T) {
	src := "x := \"\n(\nabc\n)\"\n/* c\n*/\nLoop Files, p\n"

	edits := []struct {
		name       string
		start, end int
		text       string
	}{
		{"inside section", 9, 12, "abXc"},
		{"last line", len(src) - 2, len(src) - 1, "q"},
		{"open the string late", 2, 4, "=" /* drops the ':' */},
		{"delete section opener", 7, 9, ""},
	}
	for _, e := range edits {
		t.Run(e.name, func(t *testing.T) {
			lx := newTestLexer(t)
			doc := lexilla.NewDocument([]byte(src))
			lx.Lex(doc, 0, doc.Len(), Default)

			firstLine := doc.Replace(e.start, e.end, []byte(e.text))
			start := doc.LineStart(firstLine)
			initStyle := Default
			if start > 0 {
				initStyle = doc.StyleAt(start - 1)
			}
			lx.Lex(doc, start, doc.Len()-start, initStyle)

			fresh := newTestLexer(t)
			ref := lexilla.NewDocument(doc.Text())
			fresh.Lex(ref, 0, ref.Len(), Default)

			assert.Equal(t, renderStyles(ref), renderStyles(doc))
		})
	}
}

func TestSetWordListRange(t *testing.T) {
	lx := NewLexer()
	assert.Error(t, lx.SetWordList(-1, "x"))
	assert.Error(t, lx.SetWordList(numWordLists, "x"))
	assert.NoError(t, lx.SetWordList(WLNamedKeys, "a b"))
}
