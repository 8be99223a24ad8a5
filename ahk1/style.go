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

// Package ahk1 lexes legacy (v1) AutoHotkey scripts. Unlike ahk2 it keeps
// no per-line parser state: a re-lex is seeded from the style of the
// preceding character alone, so only block comments and continuation
// section strings survive a line boundary.
package ahk1

import "github.com/fincs/lexilla-s4ahk/lexilla"

// Style identifiers, in wire order.
const (
	Default lexilla.Style = iota
	CommentLine
	CommentBlock
	Escape
	SynOperator
	ExpOperator
	String
	Number
	Identifier
	VarRef
	Label
	WordCF
	WordCmd
	WordFn
	WordDir
	WordKB
	WordVar
	WordSP
	WordUD
	VarRefKeyword
	Error

	styleCount
)

var styleNames = [...]string{
	"default",
	"commentline",
	"commentblock",
	"escape",
	"synoperator",
	"expoperator",
	"string",
	"number",
	"identifier",
	"varref",
	"label",
	"word.cf",
	"word.cmd",
	"word.fn",
	"word.dir",
	"word.kb",
	"word.var",
	"word.sp",
	"word.ud",
	"varrefkw",
	"error",
}

// StyleName returns a short identifier for s, or "unknown".
func StyleName(s lexilla.Style) string {
	if s >= 0 && int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "unknown"
}

// Word list slots.
const (
	WLControlFlow = iota
	WLCommands
	WLFunctions
	WLDirectives
	WLKeysButtons
	WLVariables
	WLSpecialParams
	WLUserDefined

	wordListCount
)
