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
	"bytes"

	"github.com/fincs/lexilla-s4ahk/lexilla"
)

// Line classification runs once per line, before any token scanning, on
// the lowercased, comment-stripped, right-trimmed remainder of the line.
// The checks are attempted in strict priority order: continuation-section
// opener, hotstring, hotkey/remap, then the label/accessor hints for the
// generic scanner. Continuation sections must come first because their
// bodies may contain colons and parentheses that would otherwise read as
// hotstrings or hotkeys.

// maxLineLookahead bounds how much of a line the classifier examines.
const maxLineLookahead = 512

// Character predicates, rune flavor (used against cursor characters).

func isWhitespace(r rune) bool { return r == ' ' || r == '\t' }

func isWhitespaceOrCR(r rune) bool { return isWhitespace(r) || r == '\r' }

func isNumeric(r rune) bool { return r >= '0' && r <= '9' }

func isHexNumeric(r rune) bool {
	return isNumeric(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isIDChar(r rune, allowNumeric bool) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(allowNumeric && isNumeric(r)) || r == '_' || r > 0x7f
}

func isExprOp(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '.', '=', '!', '<', '>', '&', '|', '^', '~', '?', ':', ',':
		return true
	}
	return false
}

func isOpeningBrace(r rune) bool { return r == '(' || r == '[' || r == '{' }

func isClosingBrace(r rune) bool { return r == ')' || r == ']' || r == '}' }

func isExprOpOrBrace(r rune) bool {
	return isExprOp(r) || isOpeningBrace(r) || isClosingBrace(r)
}

// Byte flavor, used against extracted line buffers where non-ASCII
// characters have been replaced by the 0x80 placeholder.

func isWSB(b byte) bool { return b == ' ' || b == '\t' }

func isNumericB(b byte) bool { return b >= '0' && b <= '9' }

func isHexNumericB(b byte) bool {
	return isNumericB(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIDByte(b byte, allowNumeric bool) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(allowNumeric && isNumericB(b)) || b == '_' || b > 0x7f
}

func isHotstringOptionChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		isNumericB(b) || b == '*' || b == '?'
}

func isHotkeyModifier(b byte) bool {
	switch b {
	case '#', '!', '^', '+', '<', '>', '*', '~', '$':
		return true
	}
	return false
}

func isSpecialLoopType(word string) bool {
	switch word {
	case "files", "parse", "read", "reg":
		return true
	}
	return false
}

// isContSectCommentFlag reports whether opt is a non-empty prefix of
// "comments" (the option is abbreviation-tolerant).
func isContSectCommentFlag(opt []byte) bool {
	const flag = "comments"
	if len(opt) == 0 || len(opt) > len(flag) {
		return false
	}
	return string(opt) == flag[:len(opt)]
}

// extractLineRTrim returns the rest of the current line starting at pos:
// lowercased, with non-ASCII characters replaced by a 0x80 placeholder,
// any same-line comment removed, and trailing whitespace trimmed. The
// result is capped at maxLineLookahead bytes.
func extractLineRTrim(doc lexilla.Buffer, pos, lineEnd int) []byte {
	if lineEnd <= pos {
		return nil
	}
	buf := make([]byte, 0, min(lineEnd-pos, maxLineLookahead))
	for p := pos; p < lineEnd && len(buf) < maxLineLookahead; {
		r, w := doc.CharAt(p)
		p += w
		switch {
		case r >= 'A' && r <= 'Z':
			buf = append(buf, byte(r)+'a'-'A')
		case r < 0x80:
			buf = append(buf, byte(r))
		default:
			buf = append(buf, 0x80)
		}
	}

	// Strip a same-line comment: ';' at the start or preceded by
	// whitespace.
	for i := 0; i < len(buf); i++ {
		if buf[i] == ';' && (i == 0 || isWSB(buf[i-1])) {
			buf = buf[:i]
			break
		}
	}

	return bytes.TrimRight(buf, " \t\r")
}

// isContSectOpener reports whether the line opens a continuation section:
// it starts with '(', the next character is not ':' (to skip ternary
// branches like "(:"), and no further parentheses appear on the line (to
// skip ordinary parenthesized expressions).
func isContSectOpener(line []byte) bool {
	if len(line) == 0 || line[0] != '(' {
		return false
	}
	if len(line) > 1 && line[1] == ':' {
		return false
	}
	return !bytes.ContainsAny(line[1:], "()")
}

// isHotstringCompatible matches the shape ":options:" at the start of the
// line; the closing "::" is found later at scan time. isX reports the
// presence of the "x" (execute) option. Deliberately stricter than the
// interpreter, which tolerates arbitrary junk between the colons: only
// typical, non-pathological hotstrings are recognized.
func isHotstringCompatible(line []byte) (ok, isX bool) {
	if len(line) == 0 || line[0] != ':' {
		return false, false
	}
	i := 1
	for i < len(line) && isWSB(line[i]) {
		i++
	}
	for i < len(line) && isHotstringOptionChar(line[i]) {
		if line[i] == 'x' {
			isX = true
		}
		i++
	}
	for i < len(line) && isWSB(line[i]) {
		i++
	}
	ok = i < len(line) && line[i] == ':' && (i+1 >= len(line) || line[i+1] != ':')
	return ok, isX
}

// skipHotkeyModifiers drops leading modifier characters, keeping the last
// character of the key intact so that modifier symbols can name themselves.
func skipHotkeyModifiers(s []byte) []byte {
	for len(s) >= 2 && isHotkeyModifier(s[0]) && s[1] != ' ' {
		s = s[1:]
	}
	return s
}

// isValidKey reports whether s names a key. With namedKeys nil it
// validates a hotkey label, where any identifier-character run is accepted
// (the interpreter treats such lines as hotkeys regardless and reports its
// own error). With namedKeys set it validates a remap target, which must
// be a single character, a vkNN/scNNN hex form, or a listed key name.
func isValidKey(s []byte, namedKeys *lexilla.WordList) bool {
	if len(s) == 0 {
		return false
	}
	if len(s) == 1 {
		return true
	}
	if namedKeys == nil {
		for _, b := range s {
			if !isIDByte(b, true) {
				return false
			}
		}
		return true
	}

	isVKSC := false
	t := s
	if len(t) >= 3 && t[0] == 'v' && t[1] == 'k' && isHexNumericB(t[2]) {
		isVKSC = true
		t = t[3:]
		for len(t) > 0 && isHexNumericB(t[0]) {
			t = t[1:]
		}
	}
	if len(t) >= 3 && t[0] == 's' && t[1] == 'c' && isHexNumericB(t[2]) {
		isVKSC = true
		t = t[3:]
		for len(t) > 0 && isHexNumericB(t[0]) {
			t = t[1:]
		}
	}
	if isVKSC {
		return len(t) == 0
	}
	return namedKeys.Contains(string(s))
}

// isHotkeyCompatible reports whether the line is a hotkey definition and,
// if so, whether its action is a remap (a bare key name forwarded to the
// send-keys primitive rather than code). The line must be non-empty with
// no leading or trailing whitespace.
func isHotkeyCompatible(line []byte, namedKeys *lexilla.WordList) (ok, isRemap bool) {
	// Search from index 1 so that ":::" reads as a colon hotkey.
	sep := bytes.Index(line[1:], []byte("::"))
	if sep < 0 {
		return false, false
	}
	sep++

	target := bytes.TrimLeft(line[sep+2:], " \t")
	key := bytes.TrimRight(line[:sep], " \t")

	// Strip a trailing "up" modifier.
	if n := len(key); n >= 3 && key[n-1] == 'p' && key[n-2] == 'u' && isWSB(key[n-3]) {
		key = bytes.TrimRight(key[:n-2], " \t")
	}

	if amp := bytes.Index(key, []byte(" & ")); amp >= 0 {
		// Composite "A & B" hotkey. Only the '~' modifier is allowed on
		// the first key.
		first := bytes.TrimRight(key[:amp], " \t")
		second := bytes.TrimLeft(key[amp+3:], " \t")
		if len(first) > 0 && first[0] == '~' {
			first = bytes.TrimLeft(first[1:], " \t")
			if len(first) == 0 {
				return false, false
			}
		}
		ok = isValidKey(first, nil) && isValidKey(second, nil)
	} else {
		ok = isValidKey(skipHotkeyModifiers(key), nil)
	}

	if ok && len(target) > 0 && target[0] != '{' {
		// "`{" escapes a literal brace as a remap destination.
		if len(target) >= 2 && target[0] == '`' && target[1] == '{' {
			target = target[1:]
		}
		// "pause" is a built-in command first, a key name second.
		if string(target) != "pause" {
			isRemap = isValidKey(skipHotkeyModifiers(target), namedKeys)
		}
	}
	return ok, isRemap
}

// isAccessorCompatible matches a standalone "get" or "set", optionally
// followed by '{' or '=>' (a property accessor line).
func isAccessorCompatible(line []byte) bool {
	if len(line) < 3 {
		return false
	}
	if (line[0] != 'g' && line[0] != 's') || line[1] != 'e' || line[2] != 't' {
		return false
	}
	rest := line[3:]
	if len(rest) == 0 {
		return true
	}
	if isIDByte(rest[0], true) {
		return false
	}
	rest = bytes.TrimLeft(rest, " \t")
	if len(rest) == 0 {
		return false
	}
	return rest[0] == '{' || (len(rest) >= 2 && rest[0] == '=' && rest[1] == '>')
}

// isLabelCompatible matches an identifier followed by a single trailing
// colon. Lines that are really ternary continuations of the previous
// expression can match too; that is an accepted approximation, since
// telling them apart would require tracking full block state across lines.
func isLabelCompatible(line []byte) bool {
	n := len(line)
	if n < 2 || line[n-1] != ':' {
		return false
	}
	for i := 0; i < n-1; i++ {
		if !isIDByte(line[i], i > 0) {
			return false
		}
	}
	return true
}
