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
	"fmt"

	"golang.org/x/text/cases"
)

// subStyleBlock is the sub-style allocation for one base style: a
// contiguous id range plus the identifier-to-id mapping inside it.
type subStyleBlock struct {
	base   Style
	first  Style
	length int
	idents map[string]Style
}

// SubStyles manages identifier sub-styles: host-allocated blocks of style
// ids refining a fixed set of base styles, each with a case-insensitive
// identifier map. Consulted only after keyword classification fails.
type SubStyles struct {
	blocks []subStyleBlock
	first  Style
	space  int
	next   Style
}

// NewSubStyles returns a SubStyles allocating ids from first within space
// ids, for the given base styles.
func NewSubStyles(bases []Style, first Style, space int) *SubStyles {
	s := &SubStyles{first: first, space: space, next: first}
	for _, b := range bases {
		s.blocks = append(s.blocks, subStyleBlock{base: b})
	}
	return s
}

func (s *SubStyles) blockFor(base Style) *subStyleBlock {
	for i := range s.blocks {
		if s.blocks[i].base == base {
			return &s.blocks[i]
		}
	}
	return nil
}

// Allocate reserves n sub-style ids for base and returns the first id.
func (s *SubStyles) Allocate(base Style, n int) (Style, error) {
	blk := s.blockFor(base)
	if blk == nil {
		return 0, fmt.Errorf("lexilla: style %d has no sub-styles", base)
	}
	if n <= 0 || int(s.next-s.first)+n > s.space {
		return 0, fmt.Errorf("lexilla: cannot allocate %d sub-styles", n)
	}
	blk.first = s.next
	blk.length = n
	blk.idents = make(map[string]Style)
	s.next += Style(n)
	return blk.first, nil
}

// Start returns the first sub-style id allocated for base, or -1.
func (s *SubStyles) Start(base Style) Style {
	if blk := s.blockFor(base); blk != nil && blk.length > 0 {
		return blk.first
	}
	return -1
}

// Length returns the number of sub-styles allocated for base.
func (s *SubStyles) Length(base Style) int {
	if blk := s.blockFor(base); blk != nil {
		return blk.length
	}
	return 0
}

// BaseStyle returns the base style a sub-style id refines; unallocated ids
// map to themselves.
func (s *SubStyles) BaseStyle(sub Style) Style {
	for i := range s.blocks {
		blk := &s.blocks[i]
		if blk.length > 0 && sub >= blk.first && sub < blk.first+Style(blk.length) {
			return blk.base
		}
	}
	return sub
}

// SetIdentifiers assigns the whitespace-separated identifiers in idents to
// the sub-style id style.
func (s *SubStyles) SetIdentifiers(style Style, idents string) error {
	for i := range s.blocks {
		blk := &s.blocks[i]
		if blk.length > 0 && style >= blk.first && style < blk.first+Style(blk.length) {
			var list WordList
			list.Set(idents)
			for word := range list.words {
				blk.idents[word] = style
			}
			return nil
		}
	}
	return fmt.Errorf("lexilla: style %d is not an allocated sub-style", style)
}

// ValueFor looks up the sub-style assigned to word under base.
func (s *SubStyles) ValueFor(base Style, word string) (Style, bool) {
	blk := s.blockFor(base)
	if blk == nil || blk.length == 0 {
		return 0, false
	}
	st, ok := blk.idents[cases.Fold().String(word)]
	return st, ok
}

// Free releases all allocated blocks and their identifier maps.
func (s *SubStyles) Free() {
	s.next = s.first
	for i := range s.blocks {
		s.blocks[i].first = 0
		s.blocks[i].length = 0
		s.blocks[i].idents = nil
	}
}
