// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/termkit-shell/main.go
// Summary: Demo host running a shell under a pty inside the Terminal
// widget. The widget never touches the real tty; this binary owns it.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"

	"github.com/creack/pty"
	"github.com/gdamore/tcell/v2"
	xterm "golang.org/x/term"

	"github.com/framegrace/termkit/core"
	"github.com/framegrace/termkit/term"
)

func main() {
	shell := flag.String("shell", defaultShell(), "command to run")
	flag.Parse()

	if !xterm.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "termkit-shell: stdout is not a terminal")
		os.Exit(1)
	}

	if err := run(*shell); err != nil {
		log.Fatalf("termkit-shell: %v", err)
	}
}

func defaultShell() string {
	if s := os.Getenv("SHELL"); s != "" {
		return s
	}
	return "/bin/sh"
}

func run(shell string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	w, h := screen.Size()
	terminal := term.New(w, h, term.WithMaxLines(10000))

	cmd := exec.Command(shell)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("start %s: %w", shell, err)
	}
	defer ptmx.Close()
	pty.Setsize(ptmx, &pty.Winsize{Cols: uint16(w), Rows: uint16(h)})

	var mu sync.Mutex
	refresh := make(chan bool, 1)
	notify := func() {
		select {
		case refresh <- true:
		default:
		}
	}

	// Reader goroutine: pty output feeds the widget.
	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				mu.Lock()
				terminal.Write(string(buf[:n]))
				mu.Unlock()
				notify()
			}
			if err != nil {
				if err != io.EOF {
					log.Printf("termkit-shell: pty read: %v", err)
				}
				return
			}
		}
	}()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	draw := func() {
		mu.Lock()
		screen.Clear()
		p := core.NewPainter(screen, core.Rect{W: w, H: h})
		terminal.Draw(p)
		mu.Unlock()
		screen.Show()
	}
	draw()

	for {
		select {
		case <-done:
			return nil
		case <-refresh:
			draw()
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				w, h = e.Size()
				mu.Lock()
				terminal.Resize(w, h)
				mu.Unlock()
				pty.Setsize(ptmx, &pty.Winsize{Cols: uint16(w), Rows: uint16(h)})
				screen.Sync()
				draw()
			case *tcell.EventKey:
				if e.Key() == tcell.KeyCtrlQ {
					return nil
				}
				if e.Key() == tcell.KeyPgUp || e.Key() == tcell.KeyPgDn {
					mu.Lock()
					terminal.HandleKey(e)
					mu.Unlock()
					draw()
					continue
				}
				if b := keyBytes(e); len(b) > 0 {
					ptmx.Write(b)
				}
			}
		}
	}
}

// keyBytes translates a key event to the byte sequence a terminal
// client would send.
func keyBytes(ev *tcell.EventKey) []byte {
	switch ev.Key() {
	case tcell.KeyRune:
		return []byte(string(ev.Rune()))
	case tcell.KeyEnter:
		return []byte{'\r'}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []byte{0x7f}
	case tcell.KeyTab:
		return []byte{'\t'}
	case tcell.KeyEsc:
		return []byte{0x1b}
	case tcell.KeyUp:
		return []byte("\x1b[A")
	case tcell.KeyDown:
		return []byte("\x1b[B")
	case tcell.KeyRight:
		return []byte("\x1b[C")
	case tcell.KeyLeft:
		return []byte("\x1b[D")
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return []byte{byte(ev.Key())}
	}
	return nil
}
