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
	"strconv"
)

// Options control the fold pass. Tokenization has no options.
type Options struct {
	Fold        bool // enable fold computation
	FoldComment bool // fold comment blocks and ;{ ;} markers
	FoldCompact bool // flag whitespace-only lines in the fold word
}

// SetProperty sets a boolean option by its property name: "fold",
// "fold.comment" or "fold.compact". Values are parsed as booleans
// ("1"/"0"/"true"/"false").
func (o *Options) SetProperty(key, val string) error {
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fmt.Errorf("ahk2: property %q: %w", key, err)
	}
	switch key {
	case "fold":
		o.Fold = b
	case "fold.comment":
		o.FoldComment = b
	case "fold.compact":
		o.FoldCompact = b
	default:
		return fmt.Errorf("ahk2: unknown property %q", key)
	}
	return nil
}
