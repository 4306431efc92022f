package tui

import (
	"fmt"
	"math"
	"strings"

	"elevmap/internal/profile"
)

// renderProfile draws the chart into a cols x rows canvas: filled area under
// the elevation line, elevation gridlines, selection band and focus pin.
func (m Model) renderProfile(cols, rows int) *canvas {
	c := newCanvas(cols, rows)
	if m.chart == nil {
		c.text(max(0, cols/2-8), rows/2, "no route loaded", kindGrid)
		return c
	}
	s := m.chart.Series()
	sc := m.chart.Scales()
	wDots, hDots := cols*dotsX, rows*dotsY

	for _, v := range sc.Y.Ticks(sc.YTicks) {
		row := dotRow(sc.Y.Apply(v), hDots) / dotsY
		for x := 0; x < cols; x += 2 {
			c.set(x, row, '·', kindGrid)
		}
	}

	base := dotRow(sc.Y.Apply(0), hDots)
	fill := newBrailleBuf(cols, rows)
	for mx := 0; mx < wDots; mx++ {
		e, ok := s.ElevationAt(sc.X.Invert(float64(mx) + 0.5))
		if !ok {
			continue
		}
		fill.vline(mx, dotRow(sc.Y.Apply(e), hDots), base)
	}
	fill.paint(c, kindFill)

	line := newBrailleBuf(cols, rows)
	for i := 1; i < len(s); i++ {
		x0, y0, ok0 := samplePixel(sc, s[i-1])
		x1, y1, ok1 := samplePixel(sc, s[i])
		if ok0 && ok1 {
			line.drawLineMicro(x0, y0, x1, y1)
		}
	}
	line.paint(c, kindLine)

	if from, to, ok := m.bandRange(); ok {
		pa, oka := toDot(sc.X.Apply(s[from].Distance))
		pb, okb := toDot(sc.X.Apply(s[to].Distance))
		if !oka || !okb {
			pa, pb = 0, -1
		}
		for x := max(0, pa/dotsX); x <= min(cols-1, pb/dotsX); x++ {
			c.band[x] = true
			for y := 0; y < rows; y++ {
				if c.k[y][x] == kindLine {
					c.k[y][x] = kindSelected
				}
			}
		}
	}

	if i, ok := m.focusIndex(); ok && i >= 0 && i < len(s) {
		cx, cy := 0, 0
		if px, py, ok := samplePixel(sc, s[i]); ok {
			cx = min(max(px/dotsX, 0), cols-1)
			cy = min(max(py/dotsY, 0), rows-1)
			for y := 0; y < rows; y++ {
				c.setEmpty(cx, y, '┊', kindFocus)
			}
			c.set(cx, cy, '●', kindPin)
		}
		tip := " " + profile.Tooltip(s[i]) + " "
		tx := cx + 2
		if tx+len(tip) > cols {
			tx = cx - len(tip) - 1
		}
		ty := 0
		if cy == 0 {
			ty = min(1, rows-1)
		}
		c.text(max(0, tx), ty, tip, kindText)
	}
	return c
}

// bandRange is the series range to shade: the live range while dragging,
// otherwise the committed selection.
func (m Model) bandRange() (from, to int, ok bool) {
	if m.link.selecting || m.link.hasRange {
		return m.link.from, m.link.to, m.link.from != m.link.to
	}
	return 0, 0, false
}

// samplePixel places a sample on the dot grid. ok is false when either
// coordinate does not map to a finite pixel.
func samplePixel(sc profile.Scales, s profile.Sample) (int, int, bool) {
	x, okx := toDot(sc.X.Apply(s.Distance))
	y, oky := toDot(sc.Y.Apply(s.Elevation))
	return x, y, okx && oky
}

// dotRow clamps a pixel y into the rows of the pane.
func dotRow(py float64, hDots int) int {
	if math.IsNaN(py) {
		return hDots - 1
	}
	return int(math.Floor(min(max(py, 0), float64(hDots-1))))
}

// yLabels renders the elevation tick labels right-aligned in the gutter.
func (m Model) yLabels(rows int) string {
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(" ", gutterWidth)
	}
	if m.chart == nil {
		return strings.Join(lines, "\n")
	}
	sc := m.chart.Scales()
	for _, v := range sc.Y.Ticks(sc.YTicks) {
		row := dotRow(sc.Y.Apply(v), rows*dotsY) / dotsY
		lines[row] = fmt.Sprintf("%*s ", gutterWidth-1, profile.ElevationLabel(v))
	}
	return strings.Join(lines, "\n")
}

// xLabels renders the distance tick labels under the plot. Labels that would
// overlap the previous one are skipped.
func (m Model) xLabels(cols int) string {
	row := []rune(strings.Repeat(" ", gutterWidth+cols))
	if m.chart == nil {
		return string(row)
	}
	sc := m.chart.Scales()
	next := 0
	for _, v := range sc.X.Ticks(sc.XTicks) {
		label := profile.DistanceLabel(v)
		if label == "" {
			continue
		}
		px, ok := toDot(sc.X.Apply(v))
		if !ok {
			continue
		}
		col := gutterWidth + px/dotsX - len(label)/2
		if col < next || col+len(label) > len(row) {
			continue
		}
		copy(row[col:], []rune(label))
		next = col + len(label) + 1
	}
	return string(row)
}
