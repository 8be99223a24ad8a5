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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParserStatePredicates(t *testing.T) {
	var ps ParserState
	assert.False(t, ps.InContSect())
	assert.True(t, ps.AllowLineComments())
	assert.True(t, ps.AllowStringEscape())

	ps.Cont = ContInside
	assert.True(t, ps.InContSect())
	assert.False(t, ps.InStringContSect())
	assert.False(t, ps.AllowLineComments())

	ps.Cont |= ContComments
	assert.True(t, ps.AllowLineComments())

	ps.Cont |= ContString
	assert.True(t, ps.InStringContSect())

	ps.Cont |= ContNoEscape
	assert.False(t, ps.AllowStringEscape())
}

func TestStringStateIsZero(t *testing.T) {
	assert.True(t, StringState{}.IsZero())
	assert.False(t, StringState{End: '"'}.IsZero())
	assert.False(t, StringState{Flags: StrNoEnd}.IsZero())
}

func TestStateStore(t *testing.T) {
	var s StateStore

	_, ok := s.Get(0)
	assert.False(t, ok)

	s.Set(2, ParserState{Cont: ContInside})
	s.Set(0, ParserState{FinalToken: String})
	s.Set(5, ParserState{Cont: ContString})
	assert.Equal(t, 3, s.Len())

	st, ok := s.Get(0)
	assert.True(t, ok)
	assert.Equal(t, String, st.FinalToken)

	st, ok = s.Get(2)
	assert.True(t, ok)
	assert.Equal(t, ContInside, st.Cont)

	_, ok = s.Get(1)
	assert.False(t, ok)

	// Overwrite keeps a single entry per line.
	s.Set(2, ParserState{Cont: ContInside | ContComments})
	assert.Equal(t, 3, s.Len())
	st, _ = s.Get(2)
	assert.Equal(t, ContInside|ContComments, st.Cont)

	s.Truncate(2)
	assert.Equal(t, 1, s.Len())
	_, ok = s.Get(2)
	assert.False(t, ok)
	_, ok = s.Get(5)
	assert.False(t, ok)
	_, ok = s.Get(0)
	assert.True(t, ok)

	s.Truncate(0)
	assert.Equal(t, 0, s.Len())
}

func TestOptionsSetProperty(t *testing.T) {
	var o Options

	assert.NoError(t, o.SetProperty("fold", "1"))
	assert.True(t, o.Fold)
	assert.NoError(t, o.SetProperty("fold.comment", "true"))
	assert.True(t, o.FoldComment)
	assert.NoError(t, o.SetProperty("fold.compact", "0"))
	assert.False(t, o.FoldCompact)

	assert.Error(t, o.SetProperty("fold", "maybe"))
	assert.Error(t, o.SetProperty("tabwidth", "4"))
}
