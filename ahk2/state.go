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
	"sort"

	"github.com/fincs/lexilla-s4ahk/lexilla"
)

// StringFlags refine a pending string beyond its terminator character.
type StringFlags uint8

const (
	// StrNoEnd marks a string that runs to the end of the line with no
	// terminator character.
	StrNoEnd StringFlags = 1 << iota
	// StrDoubleColon marks a string terminated by "::" rather than a
	// single colon.
	StrDoubleColon
	// StrHotstringX records the hotstring "X" (execute) option.
	StrHotstringX
)

// StringState describes a string in progress: the terminator character it
// is waiting for (0 for none) plus the flags above.
type StringState struct {
	End   byte
	Flags StringFlags
}

// IsZero reports whether no string is pending.
func (s StringState) IsZero() bool { return s.End == 0 && s.Flags == 0 }

// ContFlags describe a continuation section in progress.
type ContFlags uint8

const (
	// ContInside is set while scanning inside a continuation section.
	ContInside ContFlags = 1 << iota
	// ContString marks a string continuation section (the whole body is
	// one string), as opposed to a code one.
	ContString
	// ContComments re-enables same-line comments inside the section.
	ContComments
	// ContNoEscape suppresses escape sequences inside the section.
	ContNoEscape
)

// ParserState is what one line hands to the next: the last substantive
// token that ended on the line, the string it may have left open, and the
// continuation-section flags. The state after line N depends only on line
// N's text and the state after line N-1, which is what makes re-lexing
// from any line sound once later entries are discarded.
type ParserState struct {
	FinalToken lexilla.Style
	Str        StringState
	Cont       ContFlags
}

// InContSect reports whether the state is inside a continuation section.
func (p ParserState) InContSect() bool { return p.Cont&ContInside != 0 }

// InStringContSect reports whether the section is a string continuation.
func (p ParserState) InStringContSect() bool { return p.Cont&ContString != 0 }

// AllowLineComments reports whether same-line comments may start here.
func (p ParserState) AllowLineComments() bool {
	return !p.InContSect() || p.Cont&ContComments != 0
}

// AllowStringEscape reports whether backtick escapes are recognized here.
func (p ParserState) AllowStringEscape() bool { return p.Cont&ContNoEscape == 0 }

type stateEntry struct {
	line  int
	state ParserState
}

// A StateStore maps line indices to the ParserState recorded when each
// line's scan completed. It is the only state shared between Lex calls.
type StateStore struct {
	entries []stateEntry
}

func (s *StateStore) search(line int) int {
	return sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].line >= line
	})
}

// Get returns the state recorded for line.
func (s *StateStore) Get(line int) (ParserState, bool) {
	i := s.search(line)
	if i < len(s.entries) && s.entries[i].line == line {
		return s.entries[i].state, true
	}
	return ParserState{}, false
}

// Set records the state for line, overwriting any previous entry.
func (s *StateStore) Set(line int, state ParserState) {
	i := s.search(line)
	if i < len(s.entries) && s.entries[i].line == line {
		s.entries[i].state = state
		return
	}
	s.entries = append(s.entries, stateEntry{})
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = stateEntry{line: line, state: state}
}

// Truncate discards every entry at or after line. Lex calls this before
// scanning so stale states can never leak into classification decisions.
func (s *StateStore) Truncate(line int) {
	s.entries = s.entries[:s.search(line)]
}

// Len returns the number of recorded lines.
func (s *StateStore) Len() int { return len(s.entries) }
