// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import "testing"

func TestScrollUpClampsToBufferStart(t *testing.T) {
	s := ScrollState{Viewport: 10}
	s.ScrollUp(1<<20, 25)
	if got, want := s.Offset, 15; got != want {
		t.Errorf("Offset = %d, want %d", got, want)
	}
}

func TestScrollDownSaturatesAtZero(t *testing.T) {
	s := ScrollState{Viewport: 10, Offset: 5}
	s.ScrollDown(1 << 20)
	if s.Offset != 0 {
		t.Errorf("Offset = %d, want 0", s.Offset)
	}
}

func TestScrollUpThenDownReturnsToZero(t *testing.T) {
	for _, total := range []int{0, 1, 5, 10, 100, 100000} {
		s := ScrollState{Viewport: 24}
		s.ScrollUp(1<<30, total)
		s.ScrollDown(1 << 30)
		if s.Offset != 0 {
			t.Errorf("total=%d: Offset = %d, want 0", total, s.Offset)
		}
	}
}

func TestScrollNoOpOnShortBuffer(t *testing.T) {
	s := ScrollState{Viewport: 24}
	s.ScrollUp(10, 5) // fewer lines than the viewport
	if s.Offset != 0 {
		t.Errorf("Offset = %d, want 0 (nothing to scroll)", s.Offset)
	}
	if s.CanScrollUp(5) {
		t.Error("CanScrollUp should be false on a short buffer")
	}
	if s.CanScrollDown() {
		t.Error("CanScrollDown should be false at offset 0")
	}
}

func TestWindowEndsAtTotalMinusOffset(t *testing.T) {
	tests := []struct {
		name               string
		total, offset      int
		viewport           int
		wantStart, wantEnd int
	}{
		{"pinned to tail", 100, 0, 24, 76, 100},
		{"scrolled back", 100, 30, 24, 46, 70},
		{"fully scrolled", 100, 76, 24, 0, 24},
		{"short buffer", 5, 0, 24, 0, 5},
		{"empty buffer", 0, 0, 24, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := ScrollState{Viewport: tt.viewport, Offset: tt.offset}
			start, end := s.Window(tt.total)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Window(%d) = [%d,%d), want [%d,%d)",
					tt.total, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestScrollToBottom(t *testing.T) {
	s := ScrollState{Viewport: 10, Offset: 42}
	s.ScrollToBottom()
	if s.Offset != 0 {
		t.Errorf("Offset = %d, want 0", s.Offset)
	}
}

func TestClampAfterShrink(t *testing.T) {
	s := ScrollState{Viewport: 10, Offset: 90}
	s.Clamp(50) // buffer shrank (e.g. cleared)
	if got, want := s.Offset, 40; got != want {
		t.Errorf("Offset = %d, want %d", got, want)
	}
	s.Clamp(5)
	if s.Offset != 0 {
		t.Errorf("Offset = %d, want 0", s.Offset)
	}
}

func TestCanScrollIndicators(t *testing.T) {
	s := ScrollState{Viewport: 10, Offset: 5}
	if !s.CanScrollUp(100) {
		t.Error("CanScrollUp should be true mid-buffer")
	}
	if !s.CanScrollDown() {
		t.Error("CanScrollDown should be true when scrolled back")
	}
	s.Offset = 90
	if s.CanScrollUp(100) {
		t.Error("CanScrollUp should be false at the oldest line")
	}
}
