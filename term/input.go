// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/input.go
// Summary: Prompt-line editor with submit history and a browse cursor.

package term

import "github.com/gdamore/tcell/v2"

// ActionType tags the result of a key event.
type ActionType int

const (
	// ActionNone means the key had no user-visible effect beyond
	// internal state.
	ActionNone ActionType = iota
	// ActionSubmit means Enter was pressed on the input line.
	ActionSubmit
)

// Action is the tagged result of a key event. Text carries the submitted
// input when Type is ActionSubmit.
type Action struct {
	Type ActionType
	Text string
}

// Editor is a single-line text editor with shell-style history. History
// entries are an append-only log of submitted strings, oldest first;
// browsing never mutates them. histIdx == -1 means the live buffer is
// being edited; otherwise history[histIdx] is on display.
type Editor struct {
	buf    []rune
	cursor int // 0..len(buf)

	history []string
	histIdx int
	pending []rune // live text stashed while browsing history
}

// NewEditor creates an empty editor with no history.
func NewEditor() *Editor {
	return &Editor{histIdx: -1}
}

// Input returns exactly the text Enter would submit now.
func (e *Editor) Input() string { return string(e.buf) }

// Cursor returns the caret position within the input, 0..len.
func (e *Editor) Cursor() int { return e.cursor }

// History returns the submitted entries, oldest first. The returned
// slice is the editor's own log and must not be mutated.
func (e *Editor) History() []string { return e.history }

// LoadHistory seeds the history log, e.g. from a persistent store.
// Entries are taken oldest-first. Any browse in progress is abandoned.
func (e *Editor) LoadHistory(entries []string) {
	e.history = append(e.history[:0:0], entries...)
	e.histIdx = -1
	e.pending = nil
}

// HandleKey applies one key event. It never fails: keys with no defined
// transition return ActionNone, and no input state can make it panic.
func (e *Editor) HandleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyRune:
		e.insertRune(ev.Rune())
		return Action{Type: ActionNone}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if e.cursor > 0 {
			e.buf = append(e.buf[:e.cursor-1], e.buf[e.cursor:]...)
			e.cursor--
		}
		return Action{Type: ActionNone}

	case tcell.KeyLeft:
		if e.cursor > 0 {
			e.cursor--
		}
		return Action{Type: ActionNone}

	case tcell.KeyRight:
		if e.cursor < len(e.buf) {
			e.cursor++
		}
		return Action{Type: ActionNone}

	case tcell.KeyUp:
		e.browseOlder()
		return Action{Type: ActionNone}

	case tcell.KeyDown:
		e.browseNewer()
		return Action{Type: ActionNone}

	case tcell.KeyEnter:
		return e.submit()
	}

	return Action{Type: ActionNone}
}

// insertRune inserts at the caret and leaves history-browsing mode; the
// recalled text being edited becomes the live buffer.
func (e *Editor) insertRune(r rune) {
	e.buf = append(e.buf[:e.cursor], append([]rune{r}, e.buf[e.cursor:]...)...)
	e.cursor++
	e.histIdx = -1
	e.pending = nil
}

// browseOlder steps toward older entries. The first press recalls the
// most recent submission, stashing the live buffer for restore.
func (e *Editor) browseOlder() {
	if len(e.history) == 0 {
		return
	}
	if e.histIdx == -1 {
		e.pending = e.buf
		e.histIdx = len(e.history) - 1
	} else if e.histIdx > 0 {
		e.histIdx--
	}
	e.buf = []rune(e.history[e.histIdx])
	e.cursor = len(e.buf)
}

// browseNewer steps toward newer entries; moving past the newest
// restores the stashed live buffer.
func (e *Editor) browseNewer() {
	if e.histIdx == -1 {
		return
	}
	if e.histIdx < len(e.history)-1 {
		e.histIdx++
		e.buf = []rune(e.history[e.histIdx])
	} else {
		e.histIdx = -1
		e.buf = e.pending
		e.pending = nil
	}
	e.cursor = len(e.buf)
}

// submit pushes the current input onto the history log and clears the
// line. Empty submissions are returned to the caller but not recorded.
func (e *Editor) submit() Action {
	text := string(e.buf)
	if text != "" {
		e.history = append(e.history, text)
	}
	e.buf = nil
	e.cursor = 0
	e.histIdx = -1
	e.pending = nil
	return Action{Type: ActionSubmit, Text: text}
}
