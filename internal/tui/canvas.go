package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellKind decides how a cell is styled. Later kinds win when painted over
// earlier ones.
type cellKind uint8

const (
	kindNone cellKind = iota
	kindGrid
	kindFill
	kindLine
	kindSelected
	kindFocus
	kindPin
	kindText
)

// canvas is a grid of runes with a style kind per cell and an optional
// background band per column.
type canvas struct {
	w, h int
	r    [][]rune
	k    [][]cellKind
	band []bool
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, r: make([][]rune, h), k: make([][]cellKind, h), band: make([]bool, w)}
	for y := 0; y < h; y++ {
		c.r[y] = []rune(strings.Repeat(" ", w))
		c.k[y] = make([]cellKind, w)
	}
	return c
}

func (c *canvas) in(x, y int) bool { return x >= 0 && y >= 0 && x < c.w && y < c.h }

func (c *canvas) set(x, y int, r rune, k cellKind) {
	if !c.in(x, y) {
		return
	}
	c.r[y][x] = r
	c.k[y][x] = k
}

// setEmpty writes only into blank cells.
func (c *canvas) setEmpty(x, y int, r rune, k cellKind) {
	if c.in(x, y) && c.r[y][x] == ' ' {
		c.set(x, y, r, k)
	}
}

func (c *canvas) text(x, y int, s string, k cellKind) {
	for i, r := range []rune(s) {
		c.set(x+i, y, r, k)
	}
}

// render joins the rows, styling runs of cells that share kind and band.
func (c *canvas) render(styles map[cellKind]lipgloss.Style) string {
	lines := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var sb strings.Builder
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && c.k[y][x] == c.k[y][start] && c.band[x] == c.band[start] {
				continue
			}
			sb.WriteString(c.styleRun(styles, y, start, x))
			start = x
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (c *canvas) styleRun(styles map[cellKind]lipgloss.Style, y, from, to int) string {
	s := string(c.r[y][from:to])
	st, ok := styles[c.k[y][from]]
	if !ok && !c.band[from] {
		return s
	}
	if !ok {
		st = lipgloss.NewStyle()
	}
	if c.band[from] {
		st = st.Background(bandBg)
	}
	return st.Render(s)
}
