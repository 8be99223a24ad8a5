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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fincs/lexilla-s4ahk/ahk1"
	"github.com/fincs/lexilla-s4ahk/ahk2"
	"github.com/fincs/lexilla-s4ahk/lexilla"
)

// A span is a maximal run of identically styled bytes.
type span struct {
	Start int
	End   int
	Style lexilla.Style
	Text  string
}

func styleSpans(doc *lexilla.Document) []span {
	var spans []span
	n := doc.Len()
	for start := 0; start < n; {
		st := doc.StyleAt(start)
		end := start + 1
		for end < n && doc.StyleAt(end) == st {
			end++
		}
		spans = append(spans, span{start, end, st, string(doc.Text()[start:end])})
		start = end
	}
	return spans
}

// ANSI SGR codes per style. Unlisted styles render unstyled.
var ahk2Palette = map[lexilla.Style]string{
	ahk2.CommentLine:  "90",
	ahk2.CommentBlock: "90",
	ahk2.String:       "32",
	ahk2.Escape:       "92",
	ahk2.Number:       "36",
	ahk2.Operator:     "33",
	ahk2.Directive:    "35",
	ahk2.Flow:         "1;34",
	ahk2.Reserved:     "34",
	ahk2.IdTopLevel:   "39",
	ahk2.IdObject:     "94",
	ahk2.Label:        "1;35",
	ahk2.Error:        "1;31",
}

var ahk1Palette = map[lexilla.Style]string{
	ahk1.CommentLine:   "90",
	ahk1.CommentBlock:  "90",
	ahk1.Escape:        "92",
	ahk1.SynOperator:   "33",
	ahk1.ExpOperator:   "33",
	ahk1.String:        "32",
	ahk1.Number:        "36",
	ahk1.VarRef:        "96",
	ahk1.Label:         "1;35",
	ahk1.WordCF:        "1;34",
	ahk1.WordCmd:       "34",
	ahk1.WordFn:        "34",
	ahk1.WordDir:       "35",
	ahk1.WordKB:        "95",
	ahk1.WordVar:       "96",
	ahk1.WordSP:        "94",
	ahk1.WordUD:        "94",
	ahk1.VarRefKeyword: "1;96",
	ahk1.Error:         "1;31",
}

func renderANSI(w io.Writer, doc *lexilla.Document, palette map[lexilla.Style]string) {
	for _, s := range styleSpans(doc) {
		if code, ok := palette[s.Style]; ok {
			fmt.Fprintf(w, "\x1b[%sm%s\x1b[0m", code, s.Text)
		} else {
			io.WriteString(w, s.Text)
		}
	}
}

func renderSpans(w io.Writer, doc *lexilla.Document, name func(lexilla.Style) string) {
	for _, s := range styleSpans(doc) {
		text := s.Text
		if len(text) > 40 {
			text = text[:40] + "..."
		}
		fmt.Fprintf(w, "%6d..%-6d %-14s %q\n", s.Start, s.End, name(s.Style), text)
	}
}

func renderFolds(w io.Writer, doc *lexilla.Document) {
	for line := 0; line < doc.LineCount(); line++ {
		lv := doc.LevelAt(line)
		flags := ""
		if lv.IsHeader() {
			flags += "H"
		}
		if lv.IsWhite() {
			flags += "W"
		}
		depth := int(lv.Number() - lexilla.FoldLevelBase)
		fmt.Fprintf(w, "%4d %2s %s%s\n", line, flags,
			strings.Repeat("  ", depth), lineText(doc, line))
	}
}

func lineText(doc *lexilla.Document, line int) string {
	start := doc.LineStart(line)
	return string(doc.Text()[start:doc.LineEnd(line)])
}
