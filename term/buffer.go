// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/buffer.go
// Summary: Append-only styled-line scrollback buffer with write cursor.

package term

// Buffer stores the terminal's output as an ordered sequence of lines.
// Lines are only ever appended (never inserted mid-sequence) and cells
// are never edited after being written; Clear is the single exception
// that discards everything.
type Buffer struct {
	lines     []Line
	cursorRow int // always a valid index into lines
	cursorCol int // next write column in lines[cursorRow]

	// maxLines caps retained history; 0 means unbounded. When the cap
	// is exceeded the oldest lines are discarded.
	maxLines int
}

// NewBuffer creates a buffer holding exactly one empty line.
func NewBuffer(maxLines int) *Buffer {
	if maxLines < 0 {
		maxLines = 0
	}
	return &Buffer{
		lines:    []Line{nil},
		maxLines: maxLines,
	}
}

// Len returns the number of lines, including the line being written.
func (b *Buffer) Len() int { return len(b.lines) }

// Cursor returns the write position as (row, col).
func (b *Buffer) Cursor() (row, col int) { return b.cursorRow, b.cursorCol }

// LineAt returns the line at the given index, or nil if out of bounds.
func (b *Buffer) LineAt(index int) Line {
	if index < 0 || index >= len(b.lines) {
		return nil
	}
	return b.lines[index]
}

// WriteCell appends a cell at the cursor and advances the write column.
func (b *Buffer) WriteCell(c Cell) {
	b.lines[b.cursorRow] = append(b.lines[b.cursorRow], c)
	b.cursorCol++
}

// NewLine commits the current line and opens a fresh empty one below it.
func (b *Buffer) NewLine() {
	b.lines = append(b.lines, nil)
	b.cursorRow++
	b.cursorCol = 0
	b.trim()
}

// Clear discards all content, leaving exactly one empty line with the
// cursor at the origin.
func (b *Buffer) Clear() {
	b.lines = []Line{nil}
	b.cursorRow = 0
	b.cursorCol = 0
}

// trim drops the oldest lines once the capacity is exceeded. The cursor
// row shifts with the surviving lines; the line being written is always
// retained.
func (b *Buffer) trim() {
	if b.maxLines <= 0 || len(b.lines) <= b.maxLines {
		return
	}
	excess := len(b.lines) - b.maxLines
	// Help GC by clearing references
	for i := 0; i < excess; i++ {
		b.lines[i] = nil
	}
	b.lines = b.lines[excess:]
	b.cursorRow -= excess
	if b.cursorRow < 0 {
		b.cursorRow = 0
	}
}
