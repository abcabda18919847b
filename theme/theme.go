// Copyright © 2025 termkit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/theme.go
// Summary: JSON-backed color theme used for widget defaults.

package theme

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

const themeFileName = "theme.json"

// Theme stores color sections as string→string maps. Values are tcell
// color names or "#rrggbb" hex.
type Theme map[string]map[string]string

var (
	mu      sync.RWMutex
	once    sync.Once
	current Theme
)

// Get returns the active theme, loading it on first use.
func Get() Theme {
	once.Do(load)
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active theme. Intended for hosts and tests.
func Set(t Theme) {
	once.Do(load)
	mu.Lock()
	defer mu.Unlock()
	current = t
}

// GetColor resolves a color from a theme section, returning fallback
// when the section or key is absent or the value does not parse.
func (t Theme) GetColor(section, key string, fallback tcell.Color) tcell.Color {
	sec, ok := t[section]
	if !ok {
		return fallback
	}
	val, ok := sec[key]
	if !ok || val == "" {
		return fallback
	}
	c := tcell.GetColor(strings.ToLower(val))
	if c == tcell.ColorDefault && strings.ToLower(val) != "default" {
		return fallback
	}
	return c
}

func load() {
	current = Theme{}

	path, err := themePath()
	if err != nil {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Theme: failed to read %s: %v", path, err)
		}
		return
	}
	var t Theme
	if err := json.Unmarshal(data, &t); err != nil {
		log.Printf("Theme: failed to parse %s: %v", path, err)
		return
	}
	mu.Lock()
	current = t
	mu.Unlock()
}

func themePath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "termkit", themeFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "termkit", themeFileName), nil
}
