// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestGetColorFallbacks(t *testing.T) {
	th := Theme{
		"terminal": {
			"fg":     "#ff8040",
			"bad":    "not-a-color",
			"prompt": "green",
		},
	}

	if got := th.GetColor("terminal", "fg", tcell.ColorBlack); got != tcell.GetColor("#ff8040") {
		t.Errorf("hex color = %v, want #ff8040", got)
	}
	if got := th.GetColor("terminal", "prompt", tcell.ColorBlack); got != tcell.ColorGreen {
		t.Errorf("named color = %v, want green", got)
	}
	if got := th.GetColor("terminal", "bad", tcell.ColorBlue); got != tcell.ColorBlue {
		t.Errorf("unparseable value should fall back, got %v", got)
	}
	if got := th.GetColor("terminal", "missing", tcell.ColorRed); got != tcell.ColorRed {
		t.Errorf("missing key should fall back, got %v", got)
	}
	if got := th.GetColor("nosection", "fg", tcell.ColorYellow); got != tcell.ColorYellow {
		t.Errorf("missing section should fall back, got %v", got)
	}
}

func TestSetReplacesTheme(t *testing.T) {
	orig := Get()
	defer Set(orig)

	Set(Theme{"x": {"y": "red"}})
	if got := Get().GetColor("x", "y", tcell.ColorDefault); got != tcell.ColorRed {
		t.Errorf("after Set, color = %v, want red", got)
	}
}
