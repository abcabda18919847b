// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: term/scroll.go
// Summary: Clamped scroll state mapping an offset from the buffer tail
// onto a visible line window.

package term

// ScrollState tracks how far the view is scrolled back from the newest
// output. Offset 0 means pinned to the tail (follow mode). All mutations
// clamp, so the offset can never go negative or past the buffer start.
type ScrollState struct {
	Offset   int // lines back from the tail
	Viewport int // visible height in lines
}

// maxOffset is the furthest back the view can scroll for the given
// total line count.
func (s *ScrollState) maxOffset(total int) int {
	m := total - s.Viewport
	if m < 0 {
		m = 0
	}
	return m
}

// ScrollUp moves the view n lines toward older content.
func (s *ScrollState) ScrollUp(n, total int) {
	if n < 0 {
		n = 0
	}
	s.Offset += n
	if m := s.maxOffset(total); s.Offset > m {
		s.Offset = m
	}
}

// ScrollDown moves the view n lines toward newer content.
func (s *ScrollState) ScrollDown(n int) {
	if n < 0 {
		n = 0
	}
	s.Offset -= n
	if s.Offset < 0 {
		s.Offset = 0
	}
}

// ScrollToBottom pins the view back to the newest output.
func (s *ScrollState) ScrollToBottom() { s.Offset = 0 }

// Clamp re-applies the offset invariant after the buffer or viewport
// changed size.
func (s *ScrollState) Clamp(total int) {
	if m := s.maxOffset(total); s.Offset > m {
		s.Offset = m
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}

// Window returns the half-open line range [start, end) visible at the
// current offset. The window ends at total−Offset and never starts
// below line 0 when the buffer is shorter than the viewport.
func (s *ScrollState) Window(total int) (start, end int) {
	end = total - s.Offset
	if end > total {
		end = total
	}
	if end < 0 {
		end = 0
	}
	start = end - s.Viewport
	if start < 0 {
		start = 0
	}
	return start, end
}

// CanScrollUp reports whether older content exists above the window.
func (s *ScrollState) CanScrollUp(total int) bool {
	return s.Offset < s.maxOffset(total)
}

// CanScrollDown reports whether the view is scrolled back at all.
func (s *ScrollState) CanScrollDown() bool {
	return s.Offset > 0
}
