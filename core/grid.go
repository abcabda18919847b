package core

import "github.com/gdamore/tcell/v2"

// GridCell is one stored cell in a CellGrid.
type GridCell struct {
	Rune  rune
	Style tcell.Style
}

// CellGrid is an in-memory ContentSink. It backs headless rendering and
// widget tests, where no real tcell.Screen exists.
type CellGrid struct {
	W, H  int
	cells [][]GridCell
}

// NewCellGrid creates a grid of the given size filled with spaces.
func NewCellGrid(w, h int) *CellGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &CellGrid{W: w, H: h, cells: make([][]GridCell, h)}
	for y := range g.cells {
		g.cells[y] = make([]GridCell, w)
		for x := range g.cells[y] {
			g.cells[y][x] = GridCell{Rune: ' ', Style: tcell.StyleDefault}
		}
	}
	return g
}

// SetContent implements ContentSink.
func (g *CellGrid) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return
	}
	g.cells[y][x] = GridCell{Rune: primary, Style: style}
}

// At returns the cell at (x, y). Out-of-bounds reads return a space.
func (g *CellGrid) At(x, y int) GridCell {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return GridCell{Rune: ' ', Style: tcell.StyleDefault}
	}
	return g.cells[y][x]
}

// Row returns the runes of row y as a string, without trailing spaces.
func (g *CellGrid) Row(y int) string {
	if y < 0 || y >= g.H {
		return ""
	}
	runes := make([]rune, 0, g.W)
	for x := 0; x < g.W; x++ {
		runes = append(runes, g.cells[y][x].Rune)
	}
	end := len(runes)
	for end > 0 && runes[end-1] == ' ' {
		end--
	}
	return string(runes[:end])
}
