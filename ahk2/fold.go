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

// Fold derives the per-line fold words from the committed style array. It
// runs independently of Lex and may be deferred; it only reads styles and
// text, never the parser state. Nesting comes from operator-styled
// brackets, block comment spans, and (with fold.comment) explicit ;{ ;}
// markers inside line comments.
func (lx *Lexer) Fold(doc lexilla.Buffer, startPos, length int, initStyle lexilla.Style) {
	if !lx.Options.Fold {
		return
	}
	foldComment := lx.Options.FoldComment
	foldCompact := lx.Options.FoldCompact

	endPos := startPos + length
	if endPos > doc.Len() {
		endPos = doc.Len()
	}
	onlySpaces := true

	line := doc.LineOf(startPos)
	levelCurrent := lexilla.FoldLevelBase
	if line > 0 {
		levelCurrent = doc.LevelAt(line - 1).Next()
	}
	levelNext := levelCurrent

	chNext := doc.ByteAt(startPos)
	styleNext := doc.StyleAt(startPos)
	style := initStyle

	for i := startPos; i < endPos; i++ {
		ch := chNext
		chNext = doc.ByteAt(i + 1)
		stylePrev := style
		style = styleNext
		styleNext = doc.StyleAt(i + 1)
		atEOL := (ch == '\r' && chNext != '\n') || ch == '\n'

		if foldComment && style == CommentBlock {
			if stylePrev != CommentBlock {
				levelNext++
			} else if styleNext != CommentBlock {
				levelNext--
			}
		}

		if foldComment && style == CommentLine && ch == ';' {
			switch chNext {
			case '{':
				levelNext++
			case '}':
				levelNext--
			}
		}

		if style == Operator {
			if isOpeningBrace(rune(ch)) {
				levelNext++
			} else if isClosingBrace(rune(ch)) {
				levelNext--
			}
		}

		if atEOL || i == endPos-1 {
			level := lexilla.Pack(levelCurrent, levelNext)
			if onlySpaces && foldCompact {
				level |= lexilla.FoldLevelWhiteFlag
			}
			if levelCurrent < levelNext {
				level |= lexilla.FoldLevelHeaderFlag
			}
			if level != doc.LevelAt(line) {
				doc.SetLevel(line, level)
			}

			line++
			levelCurrent = levelNext

			if atEOL && i == doc.Len()-1 {
				// Trailing empty line: same level, flagged as whitespace.
				doc.SetLevel(line, lexilla.Pack(levelCurrent, levelCurrent)|lexilla.FoldLevelWhiteFlag)
			}

			onlySpaces = true
		}

		if !isWhitespaceOrCR(rune(ch)) && ch != '\n' {
			onlySpaces = false
		}
	}
}
