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

package lexilla

// A Style identifies the token kind assigned to a byte of the document.
// Each lexer defines its own set of Style constants; values at or above
// SubStyleFirst are reserved for identifier sub-styles.
type Style int

// Sub-style id space shared by all lexers.
const (
	SubStyleFirst Style = 0x80 // first allocatable sub-style id
	SubStyleSpace       = 0x40 // number of allocatable sub-style ids
)

// A FoldLevel is the per-line fold word: the nesting level at the start of
// the line in the low 12 bits, the level at the start of the next line
// shifted left by 16, plus the flag bits below.
type FoldLevel int

// Fold word layout.
const (
	FoldLevelBase       FoldLevel = 0x400  // level of top-level code
	FoldLevelNumberMask FoldLevel = 0x0fff // mask for the level number
	FoldLevelWhiteFlag  FoldLevel = 0x1000 // line contains only whitespace
	FoldLevelHeaderFlag FoldLevel = 0x2000 // line is a fold header
	foldLevelNextShift            = 16
)

// Pack builds a fold word from the level at the start of this line and the
// level at the start of the next one.
func Pack(current, next FoldLevel) FoldLevel {
	return current | next<<foldLevelNextShift
}

// Number returns the level number at the start of the line, flags stripped.
func (l FoldLevel) Number() FoldLevel {
	return l & FoldLevelNumberMask
}

// Next returns the level at the start of the following line, flags stripped.
func (l FoldLevel) Next() FoldLevel {
	return (l >> foldLevelNextShift) & FoldLevelNumberMask
}

// IsHeader reports whether the line opens a fold region.
func (l FoldLevel) IsHeader() bool {
	return l&FoldLevelHeaderFlag != 0
}

// IsWhite reports whether the line holds only whitespace.
func (l FoldLevel) IsWhite() bool {
	return l&FoldLevelWhiteFlag != 0
}
