package tui

import "math"

// brailleBuf is a dot buffer with 2x4 dots per cell.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dot bit per (column, row) inside a cell, in Unicode braille order
var brailleBits = [dotsX][dotsY]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets the dot at micro coords; out of range dots are dropped.
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/dotsX, my/dotsY
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[mx%dotsX][my%dotsY]
}

// vline sets every dot of column mx between rows y0 and y1 inclusive.
func (b *brailleBuf) vline(mx, y0, y1 int) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0 = max(y0, 0)
	y1 = min(y1, b.h*dotsY-1)
	for y := y0; y <= y1; y++ {
		b.setPixel(mx, y)
	}
}

// drawLineMicro draws a line on the microgrid using Bresenham, clipped to the
// buffer.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, b.w*dotsX, b.h*dotsY)
	if !ok {
		return
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// paint copies every non-empty cell onto c with the given kind. Cells that
// already hold a higher kind keep it but merge their dots.
func (b *brailleBuf) paint(c *canvas, kind cellKind) {
	for y := 0; y < b.h && y < c.h; y++ {
		for x := 0; x < b.w && x < c.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				continue
			}
			if old := c.r[y][x]; old >= 0x2800 && old <= 0x28FF {
				mask |= uint8(old - 0x2800)
			}
			c.r[y][x] = rune(0x2800 + int(mask))
			if kind > c.k[y][x] {
				c.k[y][x] = kind
			}
		}
	}
}

// clipLine clips a segment to the dot box [-1, w] x [-1, h] (Liang-Barsky).
// ok is false when no part of the segment is inside.
func clipLine(x0, y0, x1, y1, w, h int) (int, int, int, int, bool) {
	dx, dy := float64(x1-x0), float64(y1-y0)
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{float64(x0 + 1), float64(w - x0), float64(y0 + 1), float64(h - y0)}
	t0, t1 := 0.0, 1.0
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	cx0 := x0 + int(math.Round(t0*dx))
	cy0 := y0 + int(math.Round(t0*dy))
	cx1 := x0 + int(math.Round(t1*dx))
	cy1 := y0 + int(math.Round(t1*dy))
	return cx0, cy0, cx1, cy1, true
}

// maxDot bounds projected coordinates so integer conversion and clipping
// arithmetic cannot overflow.
const maxDot = 1 << 30

// toDot converts a projected coordinate to a dot index. ok is false for NaN,
// infinities and values beyond maxDot.
func toDot(v float64) (int, bool) {
	if math.IsNaN(v) || math.Abs(v) > maxDot {
		return 0, false
	}
	return int(math.Floor(v)), true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
