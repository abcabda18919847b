// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package term

import (
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func openTestStore(t *testing.T) *SQLiteHistoryStore {
	t.Helper()
	s, err := OpenHistoryStore(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenHistoryStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHistoryStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)

	for _, line := range []string{"first", "second", "third"} {
		if err := s.Append(line); err != nil {
			t.Fatalf("Append(%q): %v", line, err)
		}
	}

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(entries) != len(want) {
		t.Fatalf("Recent returned %d entries, want %d", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %q, want %q (oldest first)", i, entries[i], want[i])
		}
	}
}

func TestHistoryStoreRecentLimit(t *testing.T) {
	s := openTestStore(t)
	for _, line := range []string{"a", "b", "c", "d"} {
		if err := s.Append(line); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	entries, err := s.Recent(2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 || entries[0] != "c" || entries[1] != "d" {
		t.Errorf("Recent(2) = %v, want [c d] (newest two, oldest first)", entries)
	}
}

func TestHistoryStoreEmptyAndZeroLimit(t *testing.T) {
	s := openTestStore(t)

	entries, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent on empty store: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Recent on empty store = %v, want none", entries)
	}

	if entries, err := s.Recent(0); err != nil || entries != nil {
		t.Errorf("Recent(0) = (%v, %v), want (nil, nil)", entries, err)
	}
}

func TestTerminalWiresHistoryStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := OpenHistoryStore(path)
	if err != nil {
		t.Fatalf("OpenHistoryStore: %v", err)
	}

	tm := New(80, 24, WithPrompt("> "), WithHistoryStore(s))
	typeString(tm.editor, "remembered")
	tm.HandleKeyAction(key(tcell.KeyEnter))
	s.Close()

	// A fresh terminal over the same file sees the entry.
	s2, err := OpenHistoryStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	tm2 := New(80, 24, WithPrompt("> "), WithHistoryStore(s2))
	if got := tm2.History(); len(got) != 1 || got[0] != "remembered" {
		t.Errorf("reloaded history = %v, want [remembered]", got)
	}
}
