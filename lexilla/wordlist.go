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

import (
	"strings"

	"golang.org/x/text/cases"
)

// A WordList is a set of keywords matched case-insensitively by exact
// text. Lists are built once per document session and never change during
// a scan.
type WordList struct {
	words map[string]struct{}
}

// NewWordList returns a WordList holding the whitespace-separated words in
// list.
func NewWordList(list string) WordList {
	var w WordList
	w.Set(list)
	return w
}

// Set replaces the list contents with the whitespace-separated words in
// list.
func (w *WordList) Set(list string) {
	folder := cases.Fold()
	w.words = make(map[string]struct{})
	for _, word := range strings.Fields(list) {
		w.words[folder.String(word)] = struct{}{}
	}
}

// Contains reports whether word is in the list, ignoring case.
func (w *WordList) Contains(word string) bool {
	if len(w.words) == 0 {
		return false
	}
	_, ok := w.words[cases.Fold().String(word)]
	return ok
}

// Len returns the number of words in the list.
func (w *WordList) Len() int { return len(w.words) }
