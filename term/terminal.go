// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/terminal.go
// Summary: Terminal widget aggregating parser, buffer, scroll state and
// the prompt-line editor.
// Usage: Hosts call Write/Writeln with raw output, forward key events,
// and Draw once per frame; Draw is a pure read.

package term

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/termkit/core"
	"github.com/framegrace/termkit/theme"
)

// Overflow indicator glyphs, shown at the right edge when content
// continues beyond the window.
const (
	indicatorUp   = '▲'
	indicatorDown = '▼'
)

// historyLoadLimit caps how many persisted entries seed the editor.
const historyLoadLimit = 1000

// Terminal is a scrolling log with an optional live prompt line below
// it. Output (Write/Writeln) and input (HandleKey) are two independent
// channels: writing never touches editor state and vice versa.
type Terminal struct {
	core.BaseWidget

	buf     *Buffer
	parser  *Parser
	scroll  ScrollState
	editor  *Editor
	palette *Palette
	store   HistoryStore

	prompt        string
	promptEnabled bool

	style          tcell.Style // background fill + default cell base
	promptStyle    tcell.Style
	indicatorStyle tcell.Style
}

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// WithMaxLines caps scrollback at n lines (0 = unbounded).
func WithMaxLines(n int) Option {
	return func(t *Terminal) { t.buf = NewBuffer(n) }
}

// WithPalette overrides the color palette.
func WithPalette(p *Palette) Option {
	return func(t *Terminal) { t.palette = p }
}

// WithPrompt enables the prompt row with the given prompt text.
func WithPrompt(prompt string) Option {
	return func(t *Terminal) {
		t.prompt = prompt
		t.promptEnabled = true
	}
}

// WithHistoryStore attaches persistent input history. Recent entries are
// loaded into the editor; submissions are appended as they happen.
func WithHistoryStore(s HistoryStore) Option {
	return func(t *Terminal) { t.store = s }
}

// New creates a terminal widget with the given viewport size.
func New(width, height int, opts ...Option) *Terminal {
	t := &Terminal{
		buf:     NewBuffer(0),
		palette: NewPalette(),
	}
	t.Resize(width, height)
	t.SetFocusable(true)

	tm := theme.Get()
	fg := tm.GetColor("terminal", "fg", tcell.ColorDefault)
	bg := tm.GetColor("terminal", "bg", tcell.ColorDefault)
	t.style = tcell.StyleDefault.Foreground(fg).Background(bg)
	t.promptStyle = tcell.StyleDefault.
		Foreground(tm.GetColor("terminal", "prompt_fg", tcell.ColorGreen)).
		Background(bg)
	t.indicatorStyle = tcell.StyleDefault.
		Foreground(tm.GetColor("terminal", "indicator_fg", tcell.ColorGray)).
		Background(bg)

	for _, opt := range opts {
		opt(t)
	}
	t.parser = NewParser(t.buf)
	t.editor = NewEditor()
	t.scroll.Viewport = t.outputHeight()

	if t.store != nil {
		entries, err := t.store.Recent(historyLoadLimit)
		if err != nil {
			log.Printf("Terminal: failed to load input history: %v", err)
		} else {
			t.editor.LoadHistory(entries)
		}
	}
	return t
}

// outputHeight is the viewport height available to the scrollback
// window; the prompt row, when enabled, takes the bottom line.
func (t *Terminal) outputHeight() int {
	h := t.Rect.H
	if t.promptEnabled {
		h--
	}
	if h < 0 {
		h = 0
	}
	return h
}

// Resize updates the viewport and re-clamps the scroll offset.
func (t *Terminal) Resize(w, h int) {
	t.BaseWidget.Resize(w, h)
	t.scroll.Viewport = t.outputHeight()
	if t.buf != nil {
		t.scroll.Clamp(t.buf.Len())
	}
}

// Write feeds raw output (text mixed with SGR escapes) to the buffer.
func (t *Terminal) Write(text string) {
	t.parser.Feed(text)
	t.scroll.Clamp(t.buf.Len())
}

// Writeln feeds text, then commits the line and moves the cursor to the
// start of a fresh one.
func (t *Terminal) Writeln(text string) {
	t.parser.Feed(text)
	t.buf.NewLine()
	t.scroll.Clamp(t.buf.Len())
}

// Clear discards all output and resets cursor and scroll position.
func (t *Terminal) Clear() {
	t.buf.Clear()
	t.scroll.ScrollToBottom()
}

// Buffer exposes the scrollback for read-only inspection.
func (t *Terminal) Buffer() *Buffer { return t.buf }

// Input returns the current prompt-line text.
func (t *Terminal) Input() string { return t.editor.Input() }

// InputCursor returns the caret position within the prompt line.
func (t *Terminal) InputCursor() int { return t.editor.Cursor() }

// History returns the submitted input log, oldest first.
func (t *Terminal) History() []string { return t.editor.History() }

// ScrollUp moves the view n lines toward older output.
func (t *Terminal) ScrollUp(n int) { t.scroll.ScrollUp(n, t.buf.Len()) }

// ScrollDown moves the view n lines toward newer output.
func (t *Terminal) ScrollDown(n int) { t.scroll.ScrollDown(n) }

// ScrollToBottom pins the view to the newest output.
func (t *Terminal) ScrollToBottom() { t.scroll.ScrollToBottom() }

// ScrollOffset returns the current distance from the tail, in lines.
func (t *Terminal) ScrollOffset() int { return t.scroll.Offset }

// HandleKeyAction applies one key event and returns the resulting
// action. Page keys scroll the output window; everything else goes to
// the prompt editor. Submissions are mirrored to the history store.
func (t *Terminal) HandleKeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyPgUp:
		t.ScrollUp(t.outputHeight())
		return Action{Type: ActionNone}
	case tcell.KeyPgDn:
		t.ScrollDown(t.outputHeight())
		return Action{Type: ActionNone}
	case tcell.KeyEnd:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			t.ScrollToBottom()
			return Action{Type: ActionNone}
		}
	}

	act := t.editor.HandleKey(ev)
	if act.Type == ActionSubmit && act.Text != "" && t.store != nil {
		if err := t.store.Append(act.Text); err != nil {
			log.Printf("Terminal: failed to persist input history: %v", err)
		}
	}
	return act
}

// HandleKey implements core.Widget. It reports whether the key had a
// defined transition.
func (t *Terminal) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune, tcell.KeyEnter,
		tcell.KeyBackspace, tcell.KeyBackspace2,
		tcell.KeyLeft, tcell.KeyRight, tcell.KeyUp, tcell.KeyDown,
		tcell.KeyPgUp, tcell.KeyPgDn, tcell.KeyEnd:
		t.HandleKeyAction(ev)
		return true
	}
	return false
}

// cellStyle resolves a cell's recorded style through the palette.
func (t *Terminal) cellStyle(c Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(t.palette.Foreground(c.FG)).
		Background(t.palette.Background(c.BG)).
		Bold(c.Attr&AttrBold != 0).
		Italic(c.Attr&AttrItalic != 0).
		Underline(c.Attr&AttrUnderline != 0)
}

// Draw renders the visible output window and, when enabled, the prompt
// row with a reverse-video caret. Draw mutates nothing and may be called
// once per frame.
func (t *Terminal) Draw(p *core.Painter) {
	area := t.Rect
	if area.Empty() {
		return
	}
	p.Fill(area, ' ', t.style)

	total := t.buf.Len()
	start, end := t.scroll.Window(total)
	for i, row := start, 0; i < end; i, row = i+1, row+1 {
		x := area.X
		for _, c := range t.buf.LineAt(i) {
			if x >= area.X+area.W {
				break
			}
			p.SetCell(x, area.Y+row, c.Rune, t.cellStyle(c))
			if c.Wide {
				x += 2
			} else {
				x++
			}
		}
	}

	outH := t.outputHeight()
	if outH > 0 {
		edge := area.X + area.W - 1
		if t.scroll.CanScrollUp(total) {
			p.SetCell(edge, area.Y, indicatorUp, t.indicatorStyle)
		}
		if t.scroll.CanScrollDown() {
			p.SetCell(edge, area.Y+outH-1, indicatorDown, t.indicatorStyle)
		}
	}

	if t.promptEnabled && area.H > 0 {
		t.drawPrompt(p)
	}
}

// drawPrompt renders the input line on the bottom row.
func (t *Terminal) drawPrompt(p *core.Painter) {
	area := t.Rect
	y := area.Y + area.H - 1
	x := p.DrawText(area.X, y, t.prompt, t.promptStyle)

	input := []rune(t.editor.Input())
	for i, r := range input {
		style := t.style
		if i == t.editor.Cursor() {
			style = reverseVideo(style)
		}
		p.SetCell(x, y, r, style)
		x++
	}
	// Caret sits past the last rune when the cursor is at the end.
	if t.editor.Cursor() == len(input) {
		p.SetCell(x, y, ' ', reverseVideo(t.style))
	}
}

// reverseVideo swaps a style's foreground and background.
func reverseVideo(s tcell.Style) tcell.Style {
	fg, bg, attr := s.Decompose()
	return tcell.StyleDefault.Foreground(bg).Background(fg).Attributes(attr)
}
