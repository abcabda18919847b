// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/termkit-repl/main.go
// Summary: Demo REPL on top of the Terminal widget: prompt-line editing,
// persistent history and syntax-highlighted file display.

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/termkit/core"
	"github.com/framegrace/termkit/syntax"
	"github.com/framegrace/termkit/term"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("termkit-repl: %v", err)
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termkit", "history.db")
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	opts := []term.Option{
		term.WithPrompt("> "),
		term.WithMaxLines(5000),
	}
	if path := historyPath(); path != "" {
		store, err := term.OpenHistoryStore(path)
		if err != nil {
			log.Printf("termkit-repl: history disabled: %v", err)
		} else {
			defer store.Close()
			opts = append(opts, term.WithHistoryStore(store))
		}
	}

	w, h := screen.Size()
	terminal := term.New(w, h, opts...)
	terminal.Writeln("termkit repl — :show <file> highlights a file, :clear clears, :quit exits")

	draw := func() {
		screen.Clear()
		p := core.NewPainter(screen, core.Rect{W: w, H: h})
		terminal.Draw(p)
		screen.Show()
	}
	draw()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch e := ev.(type) {
		case *tcell.EventResize:
			w, h = e.Size()
			terminal.Resize(w, h)
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if e.Key() == tcell.KeyCtrlC {
				return nil
			}
			act := terminal.HandleKeyAction(e)
			if act.Type == term.ActionSubmit {
				if quit := execute(terminal, act.Text); quit {
					return nil
				}
			}
			draw()
		}
	}
}

// execute runs one submitted line. Returns true when the REPL should
// exit.
func execute(t *term.Terminal, line string) bool {
	t.Writeln("\x1b[90m> " + line + "\x1b[0m")

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case ":quit", ":q":
		return true
	case ":clear":
		t.Clear()
	case ":show":
		if len(fields) < 2 {
			t.Writeln("\x1b[31musage: :show <file>\x1b[0m")
			return false
		}
		showFile(t, fields[1])
	default:
		t.Writeln(line)
	}
	return false
}

func showFile(t *term.Terminal, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		t.Writeln(fmt.Sprintf("\x1b[31m%v\x1b[0m", err))
		return
	}
	if err := syntax.WriteSource(t, path, string(data), ""); err != nil {
		t.Writeln(fmt.Sprintf("\x1b[31mhighlight: %v\x1b[0m", err))
	}
}
