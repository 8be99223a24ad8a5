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

import "github.com/fincs/lexilla-s4ahk/lexilla"

// Token styles emitted by the lexer.
const (
	Default lexilla.Style = iota
	CommentLine
	CommentBlock
	String
	Escape
	Number
	Operator
	Directive
	Flow
	Reserved
	IdTopLevel
	IdObject
	Label
	Error
)

// StyleName returns a printable name for a style, sub-styles included.
func StyleName(s lexilla.Style) string {
	if s >= lexilla.SubStyleFirst {
		return "substyle"
	}
	names := [...]string{
		Default:      "default",
		CommentLine:  "comment.line",
		CommentBlock: "comment.block",
		String:       "string",
		Escape:       "escape",
		Number:       "number",
		Operator:     "operator",
		Directive:    "directive",
		Flow:         "flow",
		Reserved:     "reserved",
		IdTopLevel:   "identifier",
		IdObject:     "identifier.object",
		Label:        "label",
		Error:        "error",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "unknown"
}

// tokenFlags tag a committed token with context the next identifier's
// classification consults. They never outlive that one lookup.
type tokenFlags uint8

const (
	tfIsLoop tokenFlags = 1 << iota
	tfIsClass
	tfIsClassName
	tfTakesLabel
)

// token is the style of the most recent substantive token plus its
// context tag.
type token struct {
	style lexilla.Style
	flags tokenFlags
}

var noToken = token{style: Default}
