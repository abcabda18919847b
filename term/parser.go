// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/parser.go
// Summary: Incremental SGR escape-sequence parser feeding the buffer.
// Notes: Only the CSI ... 'm' (SGR) family is interpreted; anything else
// aborts silently back to ground so malformed input never corrupts output.

package term

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

type parserState int

const (
	stateGround parserState = iota
	stateEscape
	stateCSI
)

// Parser consumes a byte stream mixing text with SGR escape sequences.
// Printable runes are appended to the buffer styled with the current
// attribute register; escape sequences mutate the register as a side
// effect. Parser state survives across Feed calls, so a sequence split
// over two writes resumes correctly.
type Parser struct {
	buf   *Buffer
	state parserState

	params []int
	cur    int

	fg   Color
	bg   Color
	attr Attribute
}

// NewParser creates a parser writing into buf with default colors.
func NewParser(buf *Buffer) *Parser {
	return &Parser{
		buf:    buf,
		params: make([]int, 0, 16),
		fg:     DefaultFG,
		bg:     DefaultBG,
	}
}

// Style returns the active style register.
func (p *Parser) Style() (fg, bg Color, attr Attribute) {
	return p.fg, p.bg, p.attr
}

// Feed processes text in its entirety. Escape sequences update the
// style register; everything else is written to the buffer.
func (p *Parser) Feed(text string) {
	for i := 0; i < len(text); {
		b := text[i]
		size := 1

		switch p.state {
		case stateGround:
			switch {
			case b == 0x1b:
				p.state = stateEscape
			case b == '\n':
				p.buf.NewLine()
			case b == '\t':
				p.tab()
			case b < ' ':
				// Other control bytes are not part of the grammar
			default:
				var r rune
				r, size = utf8.DecodeRuneInString(text[i:])
				p.writeRune(r)
			}
		case stateEscape:
			if b == '[' {
				p.state = stateCSI
				p.params = p.params[:0]
				p.cur = 0
			} else {
				// Not a CSI introducer: drop the sequence
				p.state = stateGround
			}
		case stateCSI:
			switch {
			case b >= '0' && b <= '9':
				p.cur = p.cur*10 + int(b-'0')
			case b == ';':
				p.params = append(p.params, p.cur)
				p.cur = 0
			case b == 'm':
				p.params = append(p.params, p.cur)
				p.applySGR(p.params)
				p.state = stateGround
			default:
				// Unsupported or malformed sequence: drop it
				p.state = stateGround
			}
		}

		i += size
	}
}

// tab pads with spaces to the next 8-column stop.
func (p *Parser) tab() {
	_, col := p.buf.Cursor()
	n := 8 - col%8
	for i := 0; i < n; i++ {
		p.writeRune(' ')
	}
}

// writeRune appends one printable rune styled with the active register.
func (p *Parser) writeRune(r rune) {
	p.buf.WriteCell(Cell{
		Rune: r,
		FG:   p.fg,
		BG:   p.bg,
		Attr: p.attr,
		Wide: runewidth.RuneWidth(r) == 2,
	})
}

// applySGR processes an SGR parameter list. Later codes override earlier
// ones within the same sequence.
func (p *Parser) applySGR(params []int) {
	i := 0
	if len(params) == 0 {
		params = []int{0}
	}
	for i < len(params) {
		v := params[i]
		switch {
		case v == 0:
			p.fg = DefaultFG
			p.bg = DefaultBG
			p.attr = 0
		case v == 1:
			p.attr |= AttrBold
		case v == 3:
			p.attr |= AttrItalic
		case v == 4:
			p.attr |= AttrUnderline
		case v == 22:
			p.attr &^= AttrBold
		case v == 23:
			p.attr &^= AttrItalic
		case v == 24:
			p.attr &^= AttrUnderline
		case v >= 30 && v <= 37:
			p.fg = Named(uint8(v - 30))
		case v == 39:
			p.fg = DefaultFG
		case v >= 40 && v <= 47:
			p.bg = Named(uint8(v - 40))
		case v == 49:
			p.bg = DefaultBG
		case v == 38: // Set extended foreground color
			if i+2 < len(params) && params[i+1] == 5 { // 256-color palette
				p.fg = Indexed(uint8(params[i+2]))
				i += 2
			} else if i+4 < len(params) && params[i+1] == 2 { // RGB true-color
				p.fg = RGB(uint8(params[i+2]), uint8(params[i+3]), uint8(params[i+4]))
				i += 4
			}
		case v == 48: // Set extended background color
			if i+2 < len(params) && params[i+1] == 5 { // 256-color palette
				p.bg = Indexed(uint8(params[i+2]))
				i += 2
			} else if i+4 < len(params) && params[i+1] == 2 { // RGB true-color
				p.bg = RGB(uint8(params[i+2]), uint8(params[i+3]), uint8(params[i+4]))
				i += 4
			}
		case v >= 90 && v <= 97: // Bright foreground
			p.fg = Named(uint8(v - 90 + 8))
		case v >= 100 && v <= 107: // Bright background
			p.bg = Named(uint8(v - 100 + 8))
		}
		i++
	}
}
