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

// Command s4ahk lexes an AutoHotkey script and prints the result, either
// as ANSI-colored source, a styled span listing, or a fold outline. It
// exists as a host for the lexers outside an editor, mostly for debugging
// word lists and fold behavior.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/fincs/lexilla-s4ahk/ahk1"
	"github.com/fincs/lexilla-s4ahk/ahk2"
	"github.com/fincs/lexilla-s4ahk/lexilla"
)

// scriptLexer is the surface both generations share.
type scriptLexer interface {
	Lex(doc lexilla.Buffer, startPos, length int, initStyle lexilla.Style)
	Fold(doc lexilla.Buffer, startPos, length int, initStyle lexilla.Style)
	SetProperty(key, value string) error
	SetWordList(n int, words string) error
}

type stringList []string

func (s *stringList) String() string     { return strings.Join(*s, ",") }
func (s *stringList) Set(v string) error { *s = append(*s, v); return nil }

func main() {
	legacy := flag.Bool("legacy", false, "use the legacy (v1) lexer")
	verbose := flag.Bool("v", false, "verbose logging")
	fold := flag.Bool("fold", false, "compute fold levels and print the fold outline")
	spans := flag.Bool("spans", false, "print styled spans instead of colored source")
	dump := flag.Bool("dump", false, "dump spans and lexer state verbatim")
	var props stringList
	flag.Var(&props, "prop", "lexer property key=value (repeatable)")
	var lists stringList
	flag.Var(&lists, "wl", "word list override slot:words (repeatable)")
	flag.Parse()

	var err error
	var l *zap.Logger
	if *verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zap.ReplaceGlobals(l)
	defer l.Sync() //nolint:errcheck

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: s4ahk [flags] script.ahk")
		flag.PrintDefaults()
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		l.Fatal("read script", zap.String("path", flag.Arg(0)), zap.Error(err))
	}

	var lx scriptLexer
	var v2 *ahk2.Lexer
	var cerr error
	if *legacy {
		lx = newLegacyLexer(&cerr)
	} else {
		v2 = newLexerV2(&cerr)
		lx = v2
	}

	for _, p := range props {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			cerr = multierr.Append(cerr, fmt.Errorf("malformed -prop %q", p))
			continue
		}
		cerr = multierr.Append(cerr, lx.SetProperty(k, v))
	}
	for _, wl := range lists {
		slot, words, ok := strings.Cut(wl, ":")
		if !ok {
			cerr = multierr.Append(cerr, fmt.Errorf("malformed -wl %q", wl))
			continue
		}
		n, err := strconv.Atoi(slot)
		if err != nil {
			cerr = multierr.Append(cerr, fmt.Errorf("malformed -wl slot %q: %w", slot, err))
			continue
		}
		cerr = multierr.Append(cerr, lx.SetWordList(n, words))
	}
	if *fold {
		cerr = multierr.Append(cerr, lx.SetProperty("fold", "true"))
		cerr = multierr.Append(cerr, lx.SetProperty("fold.comment", "true"))
	}
	if cerr != nil {
		l.Fatal("configure lexer", zap.Error(cerr))
	}

	doc := lexilla.NewDocument(data)
	lx.Lex(doc, 0, doc.Len(), 0)
	if *fold {
		lx.Fold(doc, 0, doc.Len(), 0)
	}
	l.Info("lexed",
		zap.Int("bytes", doc.Len()),
		zap.Int("lines", doc.LineCount()),
		zap.Bool("legacy", *legacy))

	name, palette := ahk2.StyleName, ahk2Palette
	if *legacy {
		name, palette = ahk1.StyleName, ahk1Palette
	}
	switch {
	case *dump:
		spew.Dump(styleSpans(doc))
		if v2 != nil {
			spew.Dump(v2.States())
		}
	case *spans:
		renderSpans(os.Stdout, doc, name)
	case *fold:
		renderFolds(os.Stdout, doc)
	default:
		renderANSI(os.Stdout, doc, palette)
	}
}

func newLexerV2(cerr *error) *ahk2.Lexer {
	lx := ahk2.NewLexer()
	*cerr = multierr.Combine(*cerr,
		lx.SetWordList(ahk2.WLDirectivesExpr, ahk2DirectivesExpr),
		lx.SetWordList(ahk2.WLDirectivesStr, ahk2DirectivesStr),
		lx.SetWordList(ahk2.WLControlFlow, ahk2ControlFlow),
		lx.SetWordList(ahk2.WLReservedWords, ahk2Reserved),
		lx.SetWordList(ahk2.WLNamedKeys, namedKeys),
	)
	return lx
}

func newLegacyLexer(cerr *error) *ahk1.Lexer {
	lx := ahk1.NewLexer()
	*cerr = multierr.Combine(*cerr,
		lx.SetWordList(ahk1.WLControlFlow, ahk1ControlFlow),
		lx.SetWordList(ahk1.WLCommands, ahk1Commands),
		lx.SetWordList(ahk1.WLFunctions, ahk1Functions),
		lx.SetWordList(ahk1.WLDirectives, ahk1Directives),
		lx.SetWordList(ahk1.WLKeysButtons, namedKeys),
		lx.SetWordList(ahk1.WLVariables, ahk1Variables),
		lx.SetWordList(ahk1.WLSpecialParams, ahk1SpecialParams),
	)
	return lx
}
