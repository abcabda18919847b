// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: syntax/highlight.go
// Summary: Source highlighting emitted as SGR-annotated text.
// Usage: Output is fed straight to term.Terminal.Write, which interprets
// the truecolor escapes with its own parser.

package syntax

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"

	"github.com/framegrace/termkit/term"
)

const defaultStyleName = "catppuccin-mocha"

// DetectLanguage names the language of contents, using the filename as
// a hint. Returns "" when detection fails.
func DetectLanguage(filename string, contents []byte) string {
	return enry.GetLanguage(filename, contents)
}

// chromaStyle resolves a style name to a Chroma style, falling back to
// the default.
func chromaStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	return styles.Get(name)
}

// Highlight tokenizes source with the named lexer and returns the text
// annotated with truecolor SGR sequences. Unknown languages fall back to
// the plaintext lexer, so the text always comes back intact.
func Highlight(source, language, styleName string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	style := chromaStyle(styleName)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("tokenise: %w", err)
	}

	var sb strings.Builder
	for tok := it(); tok != chroma.EOF; tok = it() {
		entry := style.Get(tok.Type)
		seq := sgrFor(entry)
		if seq != "" {
			sb.WriteString(seq)
			sb.WriteString(tok.Value)
			sb.WriteString("\x1b[0m")
		} else {
			sb.WriteString(tok.Value)
		}
	}
	return sb.String(), nil
}

// WriteSource detects the language of source, highlights it and writes
// the result to the terminal.
func WriteSource(t *term.Terminal, filename, source, styleName string) error {
	lang := DetectLanguage(filename, []byte(source))
	highlighted, err := Highlight(source, lang, styleName)
	if err != nil {
		return err
	}
	t.Write(highlighted)
	return nil
}

// sgrFor renders a style entry as an SGR sequence, or "" when the entry
// carries nothing to apply.
func sgrFor(entry chroma.StyleEntry) string {
	var codes []string
	if entry.Bold == chroma.Yes {
		codes = append(codes, "1")
	}
	if entry.Italic == chroma.Yes {
		codes = append(codes, "3")
	}
	if entry.Underline == chroma.Yes {
		codes = append(codes, "4")
	}
	if entry.Colour.IsSet() {
		codes = append(codes, fmt.Sprintf("38;2;%d;%d;%d",
			entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
	}
	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}
