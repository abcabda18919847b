// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: core/painter.go
// Summary: Clipped cell-drawing surface used by all widgets.

package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ContentSink receives styled cell writes. tcell.Screen satisfies this
// interface directly; tests use CellGrid.
type ContentSink interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Painter draws styled cells into a ContentSink, bounded by a clip rect.
// Widgets never write outside their painter's clip.
type Painter struct {
	sink ContentSink
	clip Rect
}

// NewPainter creates a painter over sink covering the given area.
func NewPainter(sink ContentSink, area Rect) *Painter {
	return &Painter{sink: sink, clip: area}
}

// Clip returns the painter's current clip rectangle.
func (p *Painter) Clip() Rect { return p.clip }

// WithClip returns a painter restricted to the intersection of the
// current clip and r.
func (p *Painter) WithClip(r Rect) *Painter {
	return &Painter{sink: p.sink, clip: p.clip.Intersect(r)}
}

// SetCell writes one glyph at (x, y) if it falls inside the clip.
// Wide glyphs occupy two columns; the shadow column is blanked so stale
// content never shows through the right half.
func (p *Painter) SetCell(x, y int, r rune, style tcell.Style) {
	if !p.clip.Contains(x, y) {
		return
	}
	p.sink.SetContent(x, y, r, nil, style)
	if runewidth.RuneWidth(r) == 2 && p.clip.Contains(x+1, y) {
		p.sink.SetContent(x+1, y, ' ', nil, style)
	}
}

// Fill covers rect (clipped) with the given rune and style.
func (p *Painter) Fill(rect Rect, r rune, style tcell.Style) {
	area := p.clip.Intersect(rect)
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			p.sink.SetContent(x, y, r, nil, style)
		}
	}
}

// DrawText writes a string starting at (x, y), clipped horizontally.
// Returns the x position after the last written glyph.
func (p *Painter) DrawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		p.SetCell(x, y, r, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}
