// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/cell.go
// Summary: Cell, Line, Color and Attribute value types for the terminal widget.
// Notes: Keeps the data model isolated from parsing and rendering.

package term

import "fmt"

// Attribute holds the independently toggleable style flags of a cell.
type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	AttrItalic
	AttrUnderline
)

// String returns a human-readable representation of the attribute flags.
func (a Attribute) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a&AttrBold != 0 {
		parts = append(parts, "bold")
	}
	if a&AttrItalic != 0 {
		parts = append(parts, "italic")
	}
	if a&AttrUnderline != 0 {
		parts = append(parts, "underline")
	}
	if len(parts) == 0 {
		return "unknown"
	}
	result := parts[0]
	for i := 1; i < len(parts); i++ {
		result += "|" + parts[i]
	}
	return result
}

// ColorMode defines the type of color stored.
type ColorMode int

const (
	ColorModeDefault ColorMode = iota // Default terminal color
	ColorModeNamed                    // The 16 standard/bright ANSI colors
	ColorModeIndexed                  // 256-color palette
	ColorModeRGB                      // 24-bit "true" color
)

// Color represents a color in one of several modes. Colors are pure
// values compared by structural equality.
type Color struct {
	Mode    ColorMode
	Value   uint8 // Holds the color code for Named (0-15) and Indexed (0-255)
	R, G, B uint8 // Holds the channels for RGB mode
}

// Predefined default colors for convenience.
var (
	DefaultFG = Color{Mode: ColorModeDefault}
	DefaultBG = Color{Mode: ColorModeDefault}
)

// Named returns one of the 16 standard/bright ANSI colors.
func Named(n uint8) Color { return Color{Mode: ColorModeNamed, Value: n & 0x0f} }

// Indexed returns a 256-color palette entry.
func Indexed(n uint8) Color { return Color{Mode: ColorModeIndexed, Value: n} }

// RGB returns a 24-bit truecolor value.
func RGB(r, g, b uint8) Color { return Color{Mode: ColorModeRGB, R: r, G: g, B: b} }

func (c Color) String() string {
	switch c.Mode {
	case ColorModeDefault:
		return "Default"
	case ColorModeNamed:
		return fmt.Sprintf("Ansi#%d", c.Value)
	case ColorModeIndexed:
		return fmt.Sprintf("Palette#%d", c.Value)
	case ColorModeRGB:
		return fmt.Sprintf("rgb:%02x/%02x/%02x", c.R, c.G, c.B)
	}
	return "Invalid"
}

// Names for the 16 ANSI colors, usable as Named(...) values.
const (
	AnsiBlack uint8 = iota
	AnsiRed
	AnsiGreen
	AnsiYellow
	AnsiBlue
	AnsiMagenta
	AnsiCyan
	AnsiWhite
	AnsiBrightBlack
	AnsiBrightRed
	AnsiBrightGreen
	AnsiBrightYellow
	AnsiBrightBlue
	AnsiBrightMagenta
	AnsiBrightCyan
	AnsiBrightWhite
)

// Cell records one glyph as it was printed: rune plus the style that was
// active at write time. Cells are never edited in place afterwards.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
	Attr Attribute
	Wide bool // True if this cell holds a wide (2-column) glyph
}

// Line is an ordered sequence of cells, grown one cell at a time as
// characters are written. Lines carry no implicit padding.
type Line []Cell
