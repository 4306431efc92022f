package tui

import "elevmap/internal/profile"

// Braille microgrid: every terminal cell holds 2x4 dots. Pane sizes reported
// to the chart are in dots, so one chart pixel is one dot.
const (
	dotsX = 2
	dotsY = 4
)

// pane is a rectangular region of the screen in cells. It implements
// profile.Surface.
type pane struct {
	x, y       int
	cols, rows int

	subs map[int]func()
	next int
}

func newPane() *pane { return &pane{subs: map[int]func(){}} }

func (p *pane) Size() (float64, float64) {
	return float64(p.cols * dotsX), float64(p.rows * dotsY)
}

func (p *pane) OnResize(fn func()) func() {
	id := p.next
	p.next++
	p.subs[id] = fn
	return func() { delete(p.subs, id) }
}

// setBounds moves and resizes the pane. Subscribers run only when the size
// actually changed.
func (p *pane) setBounds(x, y, cols, rows int) {
	p.x, p.y = x, y
	if cols == p.cols && rows == p.rows {
		return
	}
	p.cols, p.rows = cols, rows
	for _, fn := range p.subs {
		fn()
	}
}

func (p *pane) contains(cx, cy int) bool {
	return cx >= p.x && cx < p.x+p.cols && cy >= p.y && cy < p.y+p.rows
}

// dotX maps a screen column to the chart pixel at the middle of that cell.
func (p *pane) dotX(cx int) float64 {
	return float64((cx-p.x)*dotsX) + dotsX/2
}

const (
	selectorMap     = "#map"
	selectorProfile = "#profile"
)

// panes is the surface registry the chart looks its selector up in.
type panes map[string]*pane

func newPanes() panes {
	return panes{selectorMap: newPane(), selectorProfile: newPane()}
}

func (ps panes) Lookup(selector string) (profile.Surface, bool) {
	p, ok := ps[selector]
	if !ok {
		return nil, false
	}
	return p, true
}
