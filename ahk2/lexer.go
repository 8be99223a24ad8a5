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
	"fmt"
	"strings"

	"github.com/fincs/lexilla-s4ahk/lexilla"
)

// Word-list slots, in SetWordList order.
const (
	WLDirectivesExpr = iota // directives taking an expression argument
	WLDirectivesStr         // directives taking a quoteless string argument
	WLControlFlow           // control flow keywords
	WLReservedWords         // reserved words and word-operators
	WLNamedKeys             // named keys recognized as remap targets
	numWordLists
)

// escapeTargets are the characters a backtick may escape inside a string.
const escapeTargets = "`;:{nrbtsvaf\"'"

// A Lexer incrementally tokenizes one document. It owns the per-line
// parser state store, so a Lexer must not be shared between documents;
// word lists and options are configured once per session and are not
// touched during a scan. Calls are not safe for concurrent use.
type Lexer struct {
	Options Options

	directivesExpr lexilla.WordList
	directivesStr  lexilla.WordList
	controlFlow    lexilla.WordList
	reservedWords  lexilla.WordList
	namedKeys      lexilla.WordList

	subStyles *lexilla.SubStyles
	states    StateStore
}

// NewLexer returns a Lexer with empty word lists and folding disabled.
func NewLexer() *Lexer {
	return &Lexer{
		subStyles: lexilla.NewSubStyles(
			[]lexilla.Style{IdTopLevel, IdObject},
			lexilla.SubStyleFirst, lexilla.SubStyleSpace),
	}
}

// SetWordList fills the numbered word-list slot from a whitespace-
// separated keyword string.
func (lx *Lexer) SetWordList(n int, words string) error {
	slots := [numWordLists]*lexilla.WordList{
		WLDirectivesExpr: &lx.directivesExpr,
		WLDirectivesStr:  &lx.directivesStr,
		WLControlFlow:    &lx.controlFlow,
		WLReservedWords:  &lx.reservedWords,
		WLNamedKeys:      &lx.namedKeys,
	}
	if n < 0 || n >= numWordLists {
		return fmt.Errorf("ahk2: no word list slot %d", n)
	}
	slots[n].Set(words)
	return nil
}

// SetProperty sets a lexer property; see Options.SetProperty.
func (lx *Lexer) SetProperty(key, val string) error {
	return lx.Options.SetProperty(key, val)
}

// SubStyles exposes the identifier sub-style registry. Sub-styles may be
// allocated against IdTopLevel and IdObject.
func (lx *Lexer) SubStyles() *lexilla.SubStyles { return lx.subStyles }

// States exposes the per-line parser state store, mainly for hosts that
// want to inspect how far a scan has progressed.
func (lx *Lexer) States() *StateStore { return &lx.states }

// Lex styles doc from startPos for length bytes. initStyle is the style
// in effect at startPos (the style of the preceding byte). startPos may
// fall anywhere; classification context is rebuilt by seeding from the
// persisted state of the line before startPos's line, after erasing every
// stored state from that line onward.
func (lx *Lexer) Lex(doc lexilla.Buffer, startPos, length int, initStyle lexilla.Style) {
	var ps ParserState
	startLine := doc.LineOf(startPos)
	if prev, ok := lx.states.Get(startLine - 1); ok {
		ps = prev
	}
	lx.states.Truncate(startLine)

	var (
		atLineStart          = false
		canStartBlockComment = false
		canEndBlockComment   = false
		lastToken            = noToken
		strState             StringState
		numIsHex             = false
		numParse             = 0
		prevTokenForID       = noToken
		isRemap              = false
		labelCompatible      = false
		accessorCompatible   = false
	)

	sc := lexilla.NewCursor(doc, startPos, length, initStyle)

	processLineEnd := func() {
		if lastToken.style != Default {
			ps.FinalToken = lastToken.style
			ps.Str = strState
		}
		// The continuation flags double as the host-visible line state so
		// that edits inside a section invalidate the lines after it.
		lx.states.Set(sc.LineIndex(), ps)
		doc.SetLineState(sc.LineIndex(), int(ps.Cont))
	}

	swallowForward := false
	moveForward := func() {
		if swallowForward {
			swallowForward = false
		} else {
			if sc.AtLineEnd {
				processLineEnd()
			}
			sc.Forward()
		}
	}

	for ; sc.More(); moveForward() {
		if sc.AtLineStart {
			atLineStart = true
			canStartBlockComment = true
			lastToken = noToken
			strState = StringState{}
			isRemap = false
			labelCompatible = false
			accessorCompatible = false

			switch {
			case ps.Cont&ContString != 0:
				sc.SetState(String)
			case ps.Cont&ContInside != 0 && !ps.Str.IsZero():
				sc.SetState(String)
				lastToken = token{style: String}
				strState = ps.Str
			case sc.State() == CommentBlock:
				// The block comment may have ended at the last line's end.
				if canEndBlockComment {
					canEndBlockComment = false
					sc.SetState(Default)
				}
			default:
				sc.SetState(Default)
			}
		}

		if atLineStart && !isWhitespace(sc.Ch) {
			allowBlockComment := canStartBlockComment
			atLineStart = false
			canStartBlockComment = false

			if ps.InContSect() {
				// A ')' at the line start closes the section.
				if sc.Ch == ')' {
					isString := ps.InStringContSect()
					sc.SetState(Operator)
					if isString {
						sc.ForwardSetState(String)
					} else {
						sc.ForwardSetState(Default)
					}
					ps.Cont = 0
					swallowForward = true
					if isString {
						lastToken = token{style: String}
						strState = ps.Str
					}
					continue
				} else if sc.Ch == ';' && ps.AllowLineComments() {
					sc.SetState(CommentLine)
				}
			} else if sc.State() == CommentBlock {
				// "*/" after only whitespace closes the block; the rest of
				// the line restarts classification.
				if sc.Match('*', '/') {
					sc.ForwardN(2)
					sc.SetState(Default)
					atLineStart = true
					swallowForward = true
					continue
				}
			} else if sc.Ch == ';' {
				sc.SetState(CommentLine)
			} else if sc.Match('/', '*') {
				if allowBlockComment {
					sc.SetState(CommentBlock)
				} else {
					sc.SetState(Error)
				}
			} else if line := extractLineRTrim(doc, sc.Pos(), sc.LineEndPos()); len(line) != 0 {
				// Full-line lookahead: resolve the constructs that cannot
				// be recognized one character at a time.
				if isContSectOpener(line) {
					sc.SetState(Operator)
					sc.ForwardSetState(String)
					// lastToken stays unset: the opener line itself must
					// not update the carried string state.
					strState = StringState{Flags: StrNoEnd}
					wasString := !ps.Str.IsZero()
					ps.Cont = ContInside
					swallowForward = true
					if wasString {
						ps.Cont |= ContString
					}

					// Section options: a lone backtick disables escapes,
					// a "comments" prefix re-enables same-line comments.
					// Join and the rest are ignored.
					for _, opt := range strings.Fields(string(line[1:])) {
						if opt == "`" {
							ps.Cont |= ContNoEscape
						} else if isContSectCommentFlag([]byte(opt)) {
							ps.Cont |= ContComments
						}
					}
					continue
				} else if ok, isX := isHotstringCompatible(line); ok {
					sc.SetState(Operator)
					sc.Forward()
					if sc.Ch == ':' {
						sc.Forward()
						sc.SetState(String)
						strState = StringState{End: ':', Flags: StrDoubleColon}
					} else {
						sc.SetState(String)
						strState = StringState{End: ':'}
					}
					if isX {
						strState.Flags |= StrHotstringX
					}
					lastToken = token{style: String}
					swallowForward = true
					continue
				} else if ok, remap := isHotkeyCompatible(line, &lx.namedKeys); ok {
					isRemap = remap
					sc.SetState(Label)
				} else {
					accessorCompatible = isAccessorCompatible(line)
					if !accessorCompatible {
						labelCompatible = isLabelCompatible(line)
					}
				}
			}
		}

		// Skip leading whitespace; an Error sticks to the end of the line.
		if atLineStart || sc.State() == Error {
			continue
		}

		if sc.State() != CommentBlock && sc.Ch == ';' &&
			isWhitespace(sc.ChPrev) && ps.AllowLineComments() {
			sc.SetState(CommentLine)
			continue
		}

		// Does the current token end here?
		switch sc.State() {
		case Label:
			// Hotkey labels only; code labels arrive via IdTopLevel.
			if sc.Match(':', ':') {
				sc.SetState(Operator)
				sc.ForwardN(2)
				if isRemap {
					// Remap targets are effectively Send arguments.
					sc.SetState(String)
					strState = StringState{Flags: StrNoEnd}
				} else {
					sc.SetState(Default)
				}
			}

		case CommentBlock:
			if sc.Match('*', '/') {
				sc.Forward()
				canEndBlockComment = true
			} else if !sc.AtLineEnd && !isWhitespaceOrCR(sc.Ch) {
				canEndBlockComment = false
			}

		case String:
			endChar := rune(strState.End)
			if endChar != 0 && sc.Ch == endChar {
				if endChar != ':' {
					sc.ForwardSetState(Default)
					strState = StringState{}
				} else {
					hotX := strState.Flags & StrHotstringX
					doubleColon := strState.Flags&StrDoubleColon != 0
					if doubleColon && sc.ChNext != ':' {
						break
					}

					terminate := false
					sc.SetState(Operator)
					if doubleColon {
						sc.ForwardN(2)
					} else {
						sc.Forward()
					}
					swallowForward = true

					if doubleColon {
						strState = StringState{Flags: StrNoEnd}
						terminate = hotX != 0
					} else {
						strState = StringState{End: ':', Flags: StrDoubleColon | hotX}
					}

					if terminate {
						// The X option turns the replacement into code.
						sc.SetState(Default)
						strState = StringState{}
					} else {
						sc.SetState(String)
					}
				}
			} else if sc.Ch == '`' && !isRemap && ps.AllowStringEscape() {
				if strings.ContainsRune(escapeTargets, sc.ChNext) {
					sc.SetState(Escape)
					sc.Forward()
				} else {
					sc.SetState(Error)
				}
			}

		case Escape:
			sc.SetState(String)
			swallowForward = true

		case Operator:
			// A '.' leaves operator state so it can open a decimal literal.
			if !isExprOpOrBrace(sc.Ch) || sc.Ch == '.' {
				sc.SetState(Default)
			}

		case Number:
			lx.scanNumber(sc, &numIsHex, &numParse)

		case IdTopLevel, IdObject:
			if isIDChar(sc.Ch, true) {
				break
			}
			lx.classifyIdentifier(sc, &lastToken, prevTokenForID,
				accessorCompatible, labelCompatible)

		case Directive:
			if isIDChar(sc.Ch, false) {
				break
			}
			name := strings.TrimPrefix(sc.CurrentLowered(), "#")
			if lx.directivesExpr.Contains(name) {
				sc.SetState(Default)
			} else if lx.directivesStr.Contains(name) {
				sc.SetState(String)
				lastToken = token{style: String}
				strState = StringState{Flags: StrNoEnd}
			} else {
				// Unknown directive: keep its styling, error out the rest.
				sc.SetState(Error)
			}
		}

		if sc.State() != Default || sc.AtLineEnd || isWhitespaceOrCR(sc.Ch) {
			continue
		}

		// A new token starts.
		switch {
		case sc.Ch == '"' || sc.Ch == '\'':
			lastToken = token{style: String}
			strState = StringState{End: byte(sc.Ch)}
		case isNumeric(sc.Ch) || isValidPointDecimal(sc):
			lastToken = token{style: Number}
			numIsHex = sc.Ch == '0' && (sc.ChNext == 'x' || sc.ChNext == 'X')
			if sc.Ch != '.' {
				numParse = numInteger
			} else {
				numParse = numDecimal
			}
		case isExprOpOrBrace(sc.Ch) || sc.Ch == '%':
			lastToken = token{style: Operator}
		case isIDChar(sc.Ch, false):
			prevTokenForID = lastToken
			if sc.ChPrev != '.' {
				lastToken = token{style: IdTopLevel}
			} else {
				lastToken = token{style: IdObject}
			}
		case sc.Ch == '#' && lastToken == noToken && !ps.InContSect():
			// Win-key hotkeys like #v:: were already taken by the line
			// classifier, so a '#' opening a line is a directive.
			lastToken = token{style: Directive}
		default:
			lastToken = token{style: Error}
		}
		sc.SetState(lastToken.style)
	}

	sc.Complete()
}

// isValidPointDecimal reports whether a '.' at the cursor starts a decimal
// literal rather than a member access or concatenation.
func isValidPointDecimal(sc *lexilla.Cursor) bool {
	return sc.Ch == '.' &&
		(isWhitespace(sc.ChPrev) || isExprOp(sc.ChPrev) || isOpeningBrace(sc.ChPrev)) &&
		isNumeric(sc.ChNext)
}

// Number sub-states.
const (
	numInteger  = iota // integer part (or hex digits)
	numDecimal         // after the decimal point
	numExpoSign        // after the exponent marker and optional sign
	numExpo            // exponent digits
)

// scanNumber decides whether the number token ends at the current
// character, and with which verdict. Hex literals run a simpler two-state
// machine keyed off numIsHex. Three shapes terminate into Error: a hex
// prefix with no digits, an exponent with no digits, and an identifier
// character glued directly onto the literal.
func (lx *Lexer) scanNumber(sc *lexilla.Cursor, numIsHex *bool, numParse *int) {
	numEnd, numExponent := false, false
	switch *numParse {
	case numDecimal:
		if sc.Ch == 'e' || sc.Ch == 'E' {
			numExponent = true
		} else if !isNumeric(sc.Ch) {
			numEnd = true
		}
	case numExpoSign, numExpo:
		if !isNumeric(sc.Ch) {
			numEnd = true
		} else {
			*numParse = numExpo
		}
	default: // numInteger
		if *numIsHex {
			numEnd = sc.LengthCurrent() >= 2 && !isHexNumeric(sc.Ch)
		} else if sc.Ch == '.' && isNumeric(sc.ChNext) {
			*numParse = numDecimal
		} else if sc.Ch == 'e' || sc.Ch == 'E' {
			numExponent = true
		} else if !isNumeric(sc.Ch) {
			numEnd = true
		}
	}

	if numExponent {
		if sc.ChNext == '+' || sc.ChNext == '-' {
			sc.Forward() // the sign belongs to the literal
		}
		*numParse = numExpoSign
	} else if numEnd {
		invalid := false
		if *numIsHex {
			invalid = sc.LengthCurrent() < 3 // "0x" with no digits
		} else {
			invalid = isIDChar(sc.Ch, false) || *numParse == numExpoSign
		}
		if invalid {
			sc.SetState(Error)
		} else {
			sc.SetState(Default)
		}
	}
}

// classifyIdentifier runs when an identifier token ends: special barewords
// first (their meaning rides on the previous token's tag), then the
// keyword lists, then the externally configured sub-styles.
func (lx *Lexer) classifyIdentifier(sc *lexilla.Cursor, lastToken *token,
	prevTokenForID token, accessorCompatible, labelCompatible bool) {

	baseStyle := sc.State()
	word := sc.CurrentLowered()

	if baseStyle == IdTopLevel {
		switch {
		case prevTokenForID == noToken:
			if accessorCompatible {
				// Property getter/setter definition.
				sc.ChangeState(Reserved)
				*lastToken = token{style: Reserved}
			} else if sc.Ch == ':' {
				// "identifier:" at the start of a line.
				if word == "default" {
					// The default case of a switch, not a label.
					sc.ChangeState(Flow)
					*lastToken = token{style: Flow}
				} else if labelCompatible {
					sc.ChangeState(Label)
					*lastToken = token{style: Label}
				}
			} else if sc.Ch != '.' && sc.Ch != '(' && word == "class" {
				// A class definition, as opposed to the Class object.
				sc.ChangeState(Reserved)
				*lastToken = token{style: Reserved, flags: tfIsClass}
			}
		case prevTokenForID.flags&tfIsLoop != 0:
			if isSpecialLoopType(word) {
				// Loop Files/Parse/Read/Reg.
				sc.ChangeState(Flow)
				*lastToken = token{style: Flow}
			}
		case prevTokenForID.flags&tfIsClass != 0:
			// The name in a class declaration; remembered for "extends".
			lastToken.flags |= tfIsClassName
		case prevTokenForID.flags&tfIsClassName != 0:
			if word == "extends" {
				sc.ChangeState(Reserved)
				*lastToken = token{style: Reserved}
			}
		case prevTokenForID.flags&tfTakesLabel != 0:
			// Target label of a goto/break/continue.
			sc.ChangeState(Label)
			*lastToken = token{style: Label}
		}
	}

	if sc.State() == IdTopLevel {
		if lx.controlFlow.Contains(word) {
			sc.ChangeState(Flow)
			*lastToken = token{style: Flow}
			switch word {
			case "loop":
				lastToken.flags |= tfIsLoop
			case "goto", "break", "continue":
				lastToken.flags |= tfTakesLabel
			}
		} else if lx.reservedWords.Contains(word) {
			sc.ChangeState(Reserved)
			*lastToken = token{style: Reserved}
		}
	}

	if sc.State() == baseStyle {
		if sub, ok := lx.subStyles.ValueFor(baseStyle, word); ok {
			sc.ChangeState(sub)
		}
	}

	sc.SetState(Default)
}
