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

	"github.com/fincs/lexilla-s4ahk/lexilla"
)

func TestExtractLineRTrim(t *testing.T) {
	tests := []struct {
		name, text, want string
	}{
		{"plain", "MsgBox", "msgbox"},
		{"trailing space", "x := 1  \t", "x := 1"},
		{"comment stripped", "x := 1 ; note", "x := 1"},
		{"comment needs space", "x:=1;note", "x:=1;note"},
		{"leading comment", "; note", ""},
		{"non ascii placeholder", "héllo", "h\x80llo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := lexilla.NewDocument([]byte(tt.text))
			got := extractLineRTrim(doc, 0, doc.LineEnd(0))
			assert.Equal(t, tt.want, string(got))
		})
	}

	// Empty range yields nil.
	doc := lexilla.NewDocument([]byte("x"))
	assert.Nil(t, extractLineRTrim(doc, 1, 1))
}

func TestIsContSectOpener(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"(", true},
		{"(expr", true},
		{"( join`n ltrim", true},
		{"( comments", true},
		{"(: x", false},   // ternary branch
		{"(a)(b)", false}, // expression line
		{"(a + b)", false},
		{"x(", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isContSectOpener([]byte(tt.line)), "%q", tt.line)
	}
}

func TestIsContSectCommentFlag(t *testing.T) {
	assert.True(t, isContSectCommentFlag([]byte("c")))
	assert.True(t, isContSectCommentFlag([]byte("com")))
	assert.True(t, isContSectCommentFlag([]byte("comments")))
	assert.False(t, isContSectCommentFlag([]byte("commentsx")))
	assert.False(t, isContSectCommentFlag([]byte("x")))
	assert.False(t, isContSectCommentFlag(nil))
}

func TestIsHotstringCompatible(t *testing.T) {
	tests := []struct {
		line     string
		ok, isX  bool
	}{
		{"::btw::by the way", true, false},
		{":*:lol::laugh", true, false},
		{":x:btw::send", true, true},
		{":: x", true, false},
		{"a:b", false, false},
		{"x := y ? 1 : 2", false, false},
		{"", false, false},
	}
	for _, tt := range tests {
		ok, isX := isHotstringCompatible([]byte(tt.line))
		assert.Equal(t, tt.ok, ok, "%q", tt.line)
		assert.Equal(t, tt.isX, isX, "%q isX", tt.line)
	}
}

func TestIsHotkeyCompatible(t *testing.T) {
	keys := lexilla.NewWordList("a b c f1 enter space pause ctrl lbutton")

	tests := []struct {
		line      string
		ok, remap bool
	}{
		{"f1::msgbox", true, false},
		{"a::b", true, true},
		{"a::enter", true, true},
		{"a::pause", true, false}, // Pause the command, not the key
		{"^!s::save()", true, false},
		{"a up::b", true, true},
		{"ctrl & a::b", true, true},
		{"~x & y::fn", true, false},
		{"vk1e::c", true, true},
		{"a::vk42", true, true},
		{"a::{blind}b", true, false}, // braced action is never a remap
		{"a::`{", true, true},        // escaped literal brace
		{":::", true, false},         // the ':' key
		{"no separator", false, false},
		{"x := y", false, false},
	}
	for _, tt := range tests {
		ok, remap := isHotkeyCompatible([]byte(tt.line), &keys)
		assert.Equal(t, tt.ok, ok, "%q", tt.line)
		assert.Equal(t, tt.remap, remap, "%q remap", tt.line)
	}
}

func TestIsValidKey(t *testing.T) {
	keys := lexilla.NewWordList("enter space")

	// Label flavor: any identifier run.
	assert.True(t, isValidKey([]byte("q"), nil))
	assert.True(t, isValidKey([]byte("numpadenter"), nil))
	assert.False(t, isValidKey([]byte("a b"), nil))
	assert.False(t, isValidKey(nil, nil))

	// Remap-target flavor: single char, vk/sc hex, or a listed name.
	assert.True(t, isValidKey([]byte("z"), &keys))
	assert.True(t, isValidKey([]byte("enter"), &keys))
	assert.False(t, isValidKey([]byte("bogus"), &keys))
	assert.True(t, isValidKey([]byte("vk42"), &keys))
	assert.True(t, isValidKey([]byte("sc01d"), &keys))
	assert.True(t, isValidKey([]byte("vk1esc01d"), &keys))
	assert.False(t, isValidKey([]byte("vk"), &keys))
	assert.False(t, isValidKey([]byte("vk42x"), &keys))
}

func TestIsAccessorCompatible(t *testing.T) {
	assert.True(t, isAccessorCompatible([]byte("get")))
	assert.True(t, isAccessorCompatible([]byte("set {")))
	assert.True(t, isAccessorCompatible([]byte("get => value")))
	assert.False(t, isAccessorCompatible([]byte("getter")))
	assert.False(t, isAccessorCompatible([]byte("get value")))
	assert.False(t, isAccessorCompatible([]byte("ge")))
	assert.False(t, isAccessorCompatible([]byte("put {")))
}

func TestIsLabelCompatible(t *testing.T) {
	assert.True(t, isLabelCompatible([]byte("mylabel:")))
	assert.True(t, isLabelCompatible([]byte("x1:")))
	assert.False(t, isLabelCompatible([]byte("1x:")))  // leading digit
	assert.False(t, isLabelCompatible([]byte("a b:"))) // space
	assert.False(t, isLabelCompatible([]byte("a::")))
	assert.False(t, isLabelCompatible([]byte(":")))
	assert.False(t, isLabelCompatible([]byte("abc")))
}
