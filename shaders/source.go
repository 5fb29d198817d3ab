// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: shaders/source.go
// Summary: Syntax highlighting of an effect's shader source for the expanded view.
// Usage: Highlight returns coloured spans per line; the gallery maps them to cell styles.

package shaders

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
)

const defaultSourceStyle = "catppuccin-mocha"

// Span is a run of text sharing one token style.
type Span struct {
	Text    string
	R, G, B uint8
	HasFG   bool
	Bold    bool
	Italic  bool
}

// Language guesses the language of the effect source from its file name and content.
func (e *Effect) Language() string {
	if e == nil || e.Source == "" {
		return ""
	}
	return enry.GetLanguage(e.SourceName, []byte(e.Source))
}

// Highlight tokenises the effect source and returns one span slice per line.
// An unknown style name falls back to the default style.
func Highlight(e *Effect, styleName string) [][]Span {
	if e == nil || e.Source == "" {
		return nil
	}
	if styleName == "" {
		styleName = defaultSourceStyle
	}
	style := styles.Get(styleName)

	lexer := lexerFor(e)
	iter, err := chroma.Coalesce(lexer).Tokenise(nil, e.Source)
	if err != nil {
		return plainLines(e.Source)
	}

	lines := [][]Span{nil}
	for _, tok := range iter.Tokens() {
		entry := style.Get(tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, nil)
			}
			if part == "" {
				continue
			}
			lines[len(lines)-1] = append(lines[len(lines)-1], spanFor(part, entry))
		}
	}
	// Source text ends with a newline; drop the empty trailing line.
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	return lines
}

func lexerFor(e *Effect) chroma.Lexer {
	if lang := e.Language(); lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if l := lexers.Match(e.SourceName); l != nil {
		return l
	}
	if l := lexers.Analyse(e.Source); l != nil {
		return l
	}
	return lexers.Fallback
}

func spanFor(text string, entry chroma.StyleEntry) Span {
	sp := Span{
		Text:   text,
		Bold:   entry.Bold == chroma.Yes,
		Italic: entry.Italic == chroma.Yes,
	}
	if entry.Colour.IsSet() {
		sp.HasFG = true
		sp.R, sp.G, sp.B = entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()
	}
	return sp
}

func plainLines(src string) [][]Span {
	raw := strings.Split(strings.TrimSuffix(src, "\n"), "\n")
	out := make([][]Span, len(raw))
	for i, line := range raw {
		if line != "" {
			out[i] = []Span{{Text: line}}
		}
	}
	return out
}
