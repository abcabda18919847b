// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/palette.go
// Summary: xterm 256-color palette and Color → tcell.Color resolution.

package term

import "github.com/gdamore/tcell/v2"

// Palette slots 0-255 hold the xterm colors; 256 and 257 hold the
// default foreground and background.
const (
	paletteDefaultFG = 256
	paletteDefaultBG = 257
)

// Palette resolves terminal colors to concrete RGB values. Each terminal
// instance owns one, so hosts can retheme without touching cell data.
type Palette struct {
	colors [258]tcell.Color
}

// NewPalette returns the standard xterm 256-color palette with a white
// default foreground and black default background.
func NewPalette() *Palette {
	var p Palette

	// First 16 ANSI colors
	p.colors[0] = tcell.NewRGBColor(0, 0, 0)        // Black
	p.colors[1] = tcell.NewRGBColor(128, 0, 0)      // Maroon
	p.colors[2] = tcell.NewRGBColor(0, 128, 0)      // Green
	p.colors[3] = tcell.NewRGBColor(128, 128, 0)    // Olive
	p.colors[4] = tcell.NewRGBColor(0, 0, 128)      // Navy
	p.colors[5] = tcell.NewRGBColor(128, 0, 128)    // Purple
	p.colors[6] = tcell.NewRGBColor(0, 128, 128)    // Teal
	p.colors[7] = tcell.NewRGBColor(192, 192, 192)  // Silver
	p.colors[8] = tcell.NewRGBColor(128, 128, 128)  // Grey
	p.colors[9] = tcell.NewRGBColor(255, 0, 0)      // Red
	p.colors[10] = tcell.NewRGBColor(0, 255, 0)     // Lime
	p.colors[11] = tcell.NewRGBColor(255, 255, 0)   // Yellow
	p.colors[12] = tcell.NewRGBColor(0, 0, 255)     // Blue
	p.colors[13] = tcell.NewRGBColor(255, 0, 255)   // Fuchsia
	p.colors[14] = tcell.NewRGBColor(0, 255, 255)   // Aqua
	p.colors[15] = tcell.NewRGBColor(255, 255, 255) // White

	// 6x6x6 color cube
	levels := []int32{0, 95, 135, 175, 215, 255}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p.colors[i] = tcell.NewRGBColor(levels[r], levels[g], levels[b])
				i++
			}
		}
	}

	// Grayscale ramp
	for j := 0; j < 24; j++ {
		gray := int32(8 + j*10)
		p.colors[i] = tcell.NewRGBColor(gray, gray, gray)
		i++
	}

	p.colors[paletteDefaultFG] = p.colors[15]
	p.colors[paletteDefaultBG] = p.colors[0]

	return &p
}

// SetDefaults overrides the default foreground and background slots.
func (p *Palette) SetDefaults(fg, bg tcell.Color) {
	p.colors[paletteDefaultFG] = fg
	p.colors[paletteDefaultBG] = bg
}

// Foreground resolves c as a foreground color.
func (p *Palette) Foreground(c Color) tcell.Color {
	return p.resolve(c, paletteDefaultFG)
}

// Background resolves c as a background color.
func (p *Palette) Background(c Color) tcell.Color {
	return p.resolve(c, paletteDefaultBG)
}

func (p *Palette) resolve(c Color, defaultSlot int) tcell.Color {
	switch c.Mode {
	case ColorModeDefault:
		return p.colors[defaultSlot]
	case ColorModeNamed:
		return p.colors[c.Value&0x0f]
	case ColorModeIndexed:
		return p.colors[c.Value]
	case ColorModeRGB:
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	default:
		return tcell.ColorDefault
	}
}
