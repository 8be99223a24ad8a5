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

package ahk1

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fincs/lexilla-s4ahk/lexilla"
)

// Options control folding behavior. Properties are set through
// Lexer.SetProperty using the names given in the field comments.
type Options struct {
	Fold        bool // "fold"
	FoldComment bool // "fold.comment"
	FoldCompact bool // "fold.compact"
}

func isSpace(r rune) bool {
	return r == ' ' || (r >= 0x09 && r <= 0x0d)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// Word characters cover identifiers as well as the sigils legacy names
// allow, so directives and built-ins lex as a single token.
func isWordChar(r rune) bool {
	if r >= 0x80 {
		return true
	}
	return isDigit(r) || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		r == '_' || r == '$' || r == '#' || r == '@'
}

func isExpOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '(', ')', '.',
		'=', '<', '>', '&', '|', '^', '~', '!',
		'[', ']', '?', ':':
		return true
	}
	return false
}

func isOpeningBrace(r rune) bool { return r == '(' || r == '[' || r == '{' }
func isClosingBrace(r rune) bool { return r == ')' || r == ']' || r == '}' }

// lineHasChar reports whether want occurs between pos and the end of the
// line holding pos.
func lineHasChar(doc lexilla.Buffer, pos int, want byte) bool {
	for ; pos < doc.Len(); pos++ {
		c := doc.ByteAt(pos)
		if c == '\r' || c == '\n' {
			return false
		}
		if c == want {
			return true
		}
	}
	return false
}

// Lexer is the legacy syntax scanner. The zero value is not usable,
// construct with NewLexer.
type Lexer struct {
	Options Options

	lists [wordListCount]lexilla.WordList
}

// NewLexer returns a Lexer with empty word lists and folding disabled.
func NewLexer() *Lexer {
	return &Lexer{}
}

// SetWordList replaces list slot n (one of the WL constants) with the
// space-separated words.
func (lx *Lexer) SetWordList(n int, words string) error {
	if n < 0 || n >= wordListCount {
		return fmt.Errorf("ahk1: word list %d out of range", n)
	}
	lx.lists[n].Set(words)
	return nil
}

// SetProperty parses a named lexer property. Values follow strconv.ParseBool.
func (lx *Lexer) SetProperty(key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("ahk1: property %q: %w", key, err)
	}
	switch key {
	case "fold":
		lx.Options.Fold = b
	case "fold.comment":
		lx.Options.FoldComment = b
	case "fold.compact":
		lx.Options.FoldCompact = b
	default:
		return fmt.Errorf("ahk1: unknown property %q", key)
	}
	return nil
}

// highlightKeyword reclassifies the identifier just scanned against the
// word lists, most specific class first. Commands and functions share a
// namespace and are told apart by the presence of a call paren.
func (lx *Lexer) highlightKeyword(word string, sc *lexilla.Cursor) {
	switch {
	case lx.lists[WLControlFlow].Contains(word):
		sc.ChangeState(WordCF)
	case sc.Ch != '(' && lx.lists[WLCommands].Contains(word):
		sc.ChangeState(WordCmd)
	case sc.Ch == '(' && lx.lists[WLFunctions].Contains(word):
		sc.ChangeState(WordFn)
	case strings.HasPrefix(word, "#") && lx.lists[WLDirectives].Contains(word[1:]):
		sc.ChangeState(WordDir)
	case lx.lists[WLKeysButtons].Contains(word):
		sc.ChangeState(WordKB)
	case lx.lists[WLVariables].Contains(word):
		sc.ChangeState(WordVar)
	case lx.lists[WLSpecialParams].Contains(word):
		sc.ChangeState(WordSP)
	case lx.lists[WLUserDefined].Contains(word):
		sc.ChangeState(WordUD)
	default:
		sc.ChangeState(Default)
	}
}

// Lex styles [startPos, startPos+length) of doc. initStyle is the style of
// the character before startPos; anything other than a block comment or a
// continuation string is dropped so stray styles cannot leak across lines.
func (lx *Lexer) Lex(doc lexilla.Buffer, startPos, length int, initStyle lexilla.Style) {
	if initStyle != CommentBlock && initStyle != String {
		initStyle = Default
	}
	currentState := initStyle
	nextState := lexilla.Style(-1)

	// Inside a ( ... ) continuation section, which shares the string style.
	inContSection := initStyle == String
	// Only whitespace seen since the line started.
	onlySpaces := !inContSection
	// The line so far is a valid label prefix.
	isLabel := false
	// Hotkeys and hotstrings get their line tail restyled as Label.
	isHotkey := false
	isHotstring := false
	// Expression context suppresses label and hotkey detection.
	inExpression := false
	// A quoted string inside an expression.
	inExprString := false
	inHexNumber := false

	sc := lexilla.NewCursor(doc, startPos, length, initStyle)

	for ; sc.More(); sc.Forward() {
		if nextState >= 0 {
			sc.SetState(nextState)
			nextState = -1
		}
		if sc.State() == SynOperator {
			// Syntax operators are at most one char per iteration.
			sc.SetState(Default)
		}
		if sc.AtLineEnd && (isHotkey || isHotstring) {
			isHotkey = false
			isHotstring = false
			sc.SetState(Label)
		}
		if sc.AtLineStart {
			if sc.State() != CommentBlock && !inContSection {
				sc.SetState(Default)
			}
			onlySpaces = true
			isLabel = false
			inExpression = false
			inHexNumber = false
		}

		// Escapes, deref markers and label candidates apply in nearly
		// every state except comments.
		if sc.State() != CommentLine && sc.State() != CommentBlock && !isSpace(sc.Ch) {
			if sc.Ch == '`' {
				currentState = sc.State()
				sc.SetState(Escape)
				sc.Forward()
				nextState = currentState
				continue
			}
			if sc.Ch == '%' && !isHotstring && !inExprString &&
				sc.State() != VarRef && sc.State() != VarRefKeyword && sc.State() != Error {
				if isSpace(sc.ChNext) {
					if sc.State() == String {
						// Unquoted % in a plain parameter.
						sc.SetState(Error)
					} else {
						// "% expr" forces expression mode.
						inExpression = true
					}
				} else {
					currentState = sc.State()
					sc.SetState(SynOperator)
					nextState = VarRef
					continue
				}
			}
			if sc.State() != String && !inExpression {
				if onlySpaces && sc.Ch != ',' && sc.Ch != ';' && sc.Ch != ':' &&
					sc.Ch != '%' && sc.Ch != '`' {
					isLabel = true
				}

				if isLabel && sc.Ch == ':' && (isSpace(sc.ChNext) || sc.AtLineEnd) {
					// Plain label; only a comment may follow.
					sc.ChangeState(Label)
					sc.SetState(SynOperator)
					nextState = Default
					continue
				} else if sc.Match(':', ':') {
					if onlySpaces {
						// ::abbrev::expansion
						isHotstring = true
						sc.SetState(SynOperator)
						sc.Forward()
						nextState = Label
						continue
					}
					// Hotkey F2:: or remap a::b
					isHotkey = true
					if lx.lists[WLKeysButtons].Contains(sc.CurrentLowered()) {
						sc.ChangeState(WordKB)
					}
					sc.SetState(SynOperator)
					sc.Forward()
					if isHotstring {
						nextState = String
					}
					continue
				}
			}
		}
		// Labels tolerate almost anything, but not these.
		if isLabel && (sc.Ch == ',' || sc.Ch == '%' || sc.Ch == '`' || isSpace(sc.Ch)) {
			isLabel = false
		}

		// Terminate the current state if its run has ended.
		switch sc.State() {
		case CommentLine:
			if sc.AtLineEnd {
				sc.SetState(Default)
			}
		case CommentBlock:
			if onlySpaces && sc.Match('*', '/') {
				sc.Forward()
				sc.ForwardSetState(Default)
			}
		case ExpOperator:
			if !isExpOperator(sc.Ch) {
				sc.SetState(Default)
			}
		case String:
			if inContSection {
				if onlySpaces && sc.Ch == ')' {
					inContSection = false
					sc.SetState(ExpOperator)
				}
			} else if inExprString {
				if sc.Ch == '"' {
					if sc.ChNext == '"' {
						// Doubled quote escapes itself.
						sc.Forward()
					} else {
						inExprString = false
						sc.ForwardSetState(Default)
					}
				} else if sc.AtLineEnd {
					sc.ChangeState(Error)
				}
			} else {
				if sc.Ch == ';' && isSpace(sc.ChPrev) {
					sc.SetState(CommentLine)
				}
			}
		case Number:
			if inHexNumber {
				if !isHexDigit(sc.Ch) {
					inHexNumber = false
					sc.SetState(Default)
				}
			} else if !(isDigit(sc.Ch) || sc.Ch == '.') {
				sc.SetState(Default)
			}
		case Identifier:
			if !isWordChar(sc.Ch) {
				word := sc.CurrentLowered()
				lx.highlightKeyword(word, sc)
				if word == "if" {
					inExpression = true
				}
				sc.SetState(Default)
			}
		case VarRef:
			if sc.Ch == '%' {
				if lx.lists[WLVariables].Contains(sc.CurrentLowered()) {
					sc.ChangeState(VarRefKeyword)
				}
				sc.SetState(SynOperator)
				nextState = currentState
				continue
			} else if !isWordChar(sc.Ch) {
				// No terminating % on this line.
				sc.ChangeState(Error)
			}
		case Label:
			// Hotstring modifier or trigger, :*:aa::Foo
			if sc.Ch == ':' {
				sc.SetState(SynOperator)
				if sc.ChNext == ':' {
					sc.Forward()
				}
				nextState = Label
				continue
			}
		}

		// Start a new state where the default style allows one.
		if sc.State() == Default {
			switch {
			case sc.Ch == ';' && (onlySpaces || isSpace(sc.ChPrev)):
				sc.SetState(CommentLine)
			case onlySpaces && sc.Match('/', '*'):
				sc.SetState(CommentBlock)
				sc.Forward()
			case sc.Ch == '{' || sc.Ch == '}':
				// Block brace or special key {Enter}
				sc.SetState(ExpOperator)
			case onlySpaces && sc.Ch == '(' && !lineHasChar(doc, sc.Pos(), ')'):
				inContSection = true
				sc.SetState(ExpOperator)
				nextState = String
			case sc.Match(':', '=') || sc.Match('+', '=') || sc.Match('-', '=') ||
				sc.Match('/', '=') || sc.Match('*', '='):
				inExpression = true
				sc.SetState(SynOperator)
				sc.Forward()
				nextState = Default
			case isExpOperator(sc.Ch):
				sc.SetState(ExpOperator)
			case sc.Ch == '"':
				inExprString = true
				sc.SetState(String)
			case sc.Ch == '0' && (sc.ChNext == 'x' || sc.ChNext == 'X'):
				inHexNumber = true
				sc.SetState(Number)
				sc.ForwardN(2)
			case isDigit(sc.Ch) || (sc.Ch == '.' && isDigit(sc.ChNext)):
				sc.SetState(Number)
			case isWordChar(sc.Ch):
				sc.SetState(Identifier)
			case sc.Ch == ',':
				sc.SetState(SynOperator)
				nextState = Default
			case sc.Ch == ':':
				if onlySpaces {
					// Hotstring opener :*:foo:: or ::btw::
					isHotstring = true
					sc.SetState(SynOperator)
					if sc.ChNext == ':' {
						sc.Forward()
					}
					nextState = Label
				}
			}
		}
		if !isSpace(sc.Ch) {
			onlySpaces = false
		}
	}

	// Flush any classification pending at end of input.
	switch {
	case sc.State() == Identifier:
		lx.highlightKeyword(sc.CurrentLowered(), sc)
	case sc.State() == String && inExprString:
		sc.ChangeState(Error)
	case sc.State() == VarRef:
		sc.ChangeState(Error)
	}
	sc.Complete()
}
