package tui

import (
	"github.com/paulmach/orb"

	"elevmap/internal/profile"
)

// mapBound is the route bound padded so a straight north-south or east-west
// route still projects onto the pane.
func (m Model) mapBound() (orb.Bound, bool) {
	if len(m.route) == 0 {
		return orb.Bound{}, false
	}
	b, ok := m.route.Bound()
	if !ok {
		b = b.Pad(1e-4)
	}
	return b, true
}

// cellToLonLat converts a map cell coordinate back to lon/lat using the bound, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	b, ok := m.mapBound()
	if !ok || w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := b.Min[0] + nx*(b.Max[0]-b.Min[0])
	lat := b.Min[1] + ny*(b.Max[1]-b.Min[1])
	return lon, lat, true
}

// screenXYMicro maps lon/lat into the 2x4 dot grid of a w x h cell pane.
// ok is false when the point does not project to a finite dot.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	b, ok := m.mapBound()
	if !ok {
		return 0, 0, false
	}
	nx := (lon - b.Min[0]) / (b.Max[0] - b.Min[0])
	ny := (lat - b.Min[1]) / (b.Max[1] - b.Min[1])
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * dotsX
	hMic := h * dotsY
	sx, okx := toDot(zx * float64(wMic-1))
	sy, oky := toDot((1.0 - zy) * float64(hMic-1))
	if !okx || !oky {
		return 0, 0, false
	}
	return sx + m.offsetX*dotsX, sy + m.offsetY*dotsY, true
}

// renderMap draws the route in plan view. The selected stretch and the
// focused point follow the profile chart.
func (m Model) renderMap(w, h int) *canvas {
	c := newCanvas(w, h)
	if len(m.route) == 0 {
		return c
	}
	from, to, hasSel := m.routeRange()

	all := newBrailleBuf(w, h)
	sel := newBrailleBuf(w, h)
	var prevX, prevY int
	havePrev := false
	for i, p := range m.route {
		mx, my, ok := m.screenXYMicro(p.Lon, p.Lat, w, h)
		if !ok {
			havePrev = false
			continue
		}
		if !havePrev {
			all.setPixel(mx, my)
		} else {
			all.drawLineMicro(prevX, prevY, mx, my)
			if hasSel && i > from && i <= to {
				sel.drawLineMicro(prevX, prevY, mx, my)
			}
		}
		prevX, prevY, havePrev = mx, my, true
	}
	all.paint(c, kindLine)
	sel.paint(c, kindSelected)

	if i, ok := m.focusIndex(); ok && m.chart != nil {
		p := m.route[profile.RouteIndex(i, len(m.route))]
		if mx, my, ok := m.screenXYMicro(p.Lon, p.Lat, w, h); ok {
			c.set(mx/dotsX, my/dotsY, '◯', kindPin)
		}
	}
	return c
}
