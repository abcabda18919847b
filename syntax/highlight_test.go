// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package syntax

import (
	"strings"
	"testing"

	"github.com/framegrace/termkit/term"
)

const goSample = `package main

import "fmt"

func main() {
    fmt.Println("hello")
}
`

func TestDetectLanguage(t *testing.T) {
	if got := DetectLanguage("main.go", []byte(goSample)); got != "Go" {
		t.Errorf("DetectLanguage = %q, want %q", got, "Go")
	}
}

func TestHighlightEmitsEscapes(t *testing.T) {
	out, err := Highlight(goSample, "Go", "")
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Error("highlighted Go source contains no SGR sequences")
	}
}

func TestHighlightRoundTripsThroughTerminal(t *testing.T) {
	out, err := Highlight(goSample, "Go", "")
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}

	// Feeding the highlighted stream to the widget must reproduce the
	// plain text exactly: escapes style, never echo.
	tm := term.New(120, 40)
	tm.Write(out)

	var sb strings.Builder
	buf := tm.Buffer()
	for i := 0; i < buf.Len(); i++ {
		for _, c := range buf.LineAt(i) {
			sb.WriteRune(c.Rune)
		}
		if i < buf.Len()-1 {
			sb.WriteByte('\n')
		}
	}
	if got := sb.String(); got != goSample {
		t.Errorf("round-tripped text differs from source:\n%q\nwant:\n%q", got, goSample)
	}
}

func TestHighlightUnknownLanguageFallsBack(t *testing.T) {
	src := "just some words"
	out, err := Highlight(src, "", "")
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if !strings.Contains(out, "just some words") {
		t.Errorf("fallback output lost the text: %q", out)
	}
}
