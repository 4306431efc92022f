package tui

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevmap/internal/config"
	"elevmap/internal/export"
	"elevmap/internal/geom"
	"elevmap/internal/profile"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	cfg.Export.Dir = t.TempDir()
	return *cfg
}

// eastRoute is n points 0.01° of longitude apart on the equator, climbing
// 10m per point from 100m.
func eastRoute(n int) geom.Route {
	r := make(geom.Route, n)
	for i := range r {
		r[i] = geom.GeoPoint{Lon: float64(i) * 0.01, Lat: 0, Ele: 100 + 10*float64(i)}
	}
	return r
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

// An 80x30 screen gives a 72x13 cell plot starting at column 8, row 14:
// 144 dots for 10 route segments, so each sample sits 14.4 dots apart.
func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewWithRoute(testConfig(t), eastRoute(11))
	require.NotNil(t, m.chart)
	return send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
}

// col returns the screen column whose dot lands on series sample i.
func col(i int) int { return 8 + int(float64(i-1)*14.4)/dotsX }

const plotRow = 20

func TestLayout(t *testing.T) {
	m := newTestModel(t)
	prof := m.panes[selectorProfile]
	assert.Equal(t, [4]int{8, 14, 72, 13}, [4]int{prof.x, prof.y, prof.cols, prof.rows})
	mp := m.panes[selectorMap]
	assert.Equal(t, [4]int{0, 1, 80, 13}, [4]int{mp.x, mp.y, mp.cols, mp.rows})

	sc := m.chart.Scales()
	assert.Equal(t, [2]float64{0, 144}, sc.X.Range)
	assert.Equal(t, [2]float64{52, 0}, sc.Y.Range)
}

func TestResizeRecomputesScales(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, float64((120-gutterWidth)*dotsX), m.chart.Scales().X.Range[1])

	m = send(t, m, key("tab"))
	assert.True(t, m.showSidebar)
	assert.Equal(t, sidebarWidth+1+gutterWidth, m.panes[selectorProfile].x)
	assert.Equal(t, float64((120-sidebarWidth-1-gutterWidth)*dotsX), m.chart.Scales().X.Range[1])
}

func TestHoverLinksMap(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, motion(col(6), plotRow))

	i, ok := m.chart.Hover()
	require.True(t, ok)
	assert.Equal(t, 6, i)
	assert.True(t, m.link.hovering)
	assert.Equal(t, 6, m.link.hover)

	focus, ok := m.focusIndex()
	require.True(t, ok)
	assert.Equal(t, 6, focus)
	assert.Contains(t, m.View(), profile.Tooltip(m.chart.Series()[6]))

	// moving onto the map ends the chart hover and hovers the map instead
	m = send(t, m, motion(40, 5))
	_, ok = m.chart.Hover()
	assert.False(t, ok)
	assert.False(t, m.link.hovering)
	assert.True(t, m.mapHovering)
	assert.True(t, m.hoverHasGeo)
	assert.Contains(t, m.View(), "lon=")

	// the map hover focuses the matching series sample
	focus, ok = m.focusIndex()
	require.True(t, ok)
	assert.Equal(t, m.mapHover+1, focus)
}

func TestDragSelect(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press(col(3), plotRow))
	assert.True(t, m.chart.Dragging())
	assert.Contains(t, m.status, "selecting from")

	m = send(t, m, motion(col(8), plotRow))
	assert.True(t, m.link.selecting)
	assert.Equal(t, [2]int{3, 8}, [2]int{m.link.from, m.link.to})
	assert.Contains(t, m.status, "selecting")

	m = send(t, m, release(col(8), plotRow))
	assert.False(t, m.chart.Dragging())
	from, to, ok := m.chart.Selection()
	require.True(t, ok)
	assert.Equal(t, [2]int{3, 8}, [2]int{from, to})
	assert.True(t, m.link.hasRange)
	assert.True(t, strings.HasPrefix(m.status, "selected "), m.status)
	assert.Contains(t, m.status, "+50m -0m")

	rf, rt, ok := m.routeRange()
	require.True(t, ok)
	assert.Equal(t, [2]int{2, 7}, [2]int{rf, rt})

	m = send(t, m, key("esc"))
	_, _, ok = m.chart.Selection()
	assert.False(t, ok)
	assert.False(t, m.link.hasRange)
	assert.Equal(t, "selection cleared", m.status)
}

func TestReverseDrag(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press(col(9), plotRow), motion(col(4), plotRow), release(col(4), plotRow))
	from, to, ok := m.chart.Selection()
	require.True(t, ok)
	assert.Equal(t, [2]int{4, 9}, [2]int{from, to})
}

func TestClickCommitsNoSelection(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press(col(5), plotRow), release(col(5), plotRow))
	_, _, ok := m.chart.Selection()
	assert.False(t, ok)
	assert.False(t, m.link.hasRange)
	assert.True(t, strings.HasPrefix(m.status, "at "), m.status)
}

func TestDragLeavingPlotCancels(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press(col(3), plotRow), motion(col(7), plotRow), motion(col(7), 3))
	assert.False(t, m.chart.Dragging())
	assert.False(t, m.link.selecting)
	from, to, ok := m.chart.Selection()
	require.True(t, ok)
	assert.Equal(t, [2]int{3, 7}, [2]int{from, to})
}

func TestStatsTable(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key("a"))
	require.True(t, m.showStats)
	rows := m.tbl.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "route", rows[0][0])
	assert.Equal(t, "+100", rows[0][4])

	m = send(t, m, press(col(3), plotRow), motion(col(8), plotRow), release(col(8), plotRow))
	rows = m.tbl.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "selection", rows[1][0])
	assert.Equal(t, "+50", rows[1][4])
	assert.Contains(t, m.View(), "selection")

	m = send(t, m, key("a"))
	assert.False(t, m.showStats)
}

func TestPasteMode(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key("p"))
	require.True(t, m.pasteMode)

	m.ta.SetValue("not wkt")
	m = send(t, m, key("enter"))
	assert.True(t, m.pasteMode)
	assert.True(t, strings.HasPrefix(m.status, "wkt error"), m.status)

	m.ta.SetValue("LINESTRING Z (0 0 10, 0.01 0 20, 0.02 0 15)")
	m = send(t, m, key("enter"))
	assert.False(t, m.pasteMode)
	assert.Len(t, m.route, 3)
	assert.Len(t, m.chart.Series(), 5)
	assert.True(t, strings.HasPrefix(m.status, "loaded: pasted WKT"), m.status)

	m = send(t, m, key("p"), key("esc"))
	assert.False(t, m.pasteMode)
	assert.Equal(t, "view mode", m.status)
}

func TestUpdateClearsSelection(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, press(col(3), plotRow), motion(col(8), plotRow), release(col(8), plotRow))
	require.True(t, m.link.hasRange)

	m = send(t, m, key("p"))
	m.ta.SetValue("LINESTRING (0 0, 0.01 0.01)")
	m = send(t, m, key("enter"))
	_, _, ok := m.chart.Selection()
	assert.False(t, ok)
	assert.False(t, m.link.hasRange)
	_, ok = m.focusIndex()
	assert.False(t, ok)
}

func TestEmptyRoute(t *testing.T) {
	m := NewWithRoute(testConfig(t), nil)
	assert.Nil(t, m.chart)
	assert.Contains(t, m.status, "load error")
	assert.Contains(t, m.status, profile.ErrEmptyRoute.Error())

	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30}, motion(40, plotRow), press(40, plotRow))
	assert.Contains(t, m.View(), "no route loaded")
}

func TestLoadFromSidebar(t *testing.T) {
	dir := t.TempDir()
	csv := "lon,lat,ele\n0,0,100\n0.01,0,120\n0.02,0,110\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ride.csv"), []byte(csv), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	m := New(testConfig(t))
	m.cwd = dir
	m.refreshDir()
	require.Len(t, m.items, 1)
	assert.Equal(t, "ride.csv", m.items[0].(fileItem).Title())

	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30}, key("tab"), key("enter"))
	require.NotNil(t, m.chart)
	assert.Len(t, m.route, 3)
	assert.Equal(t, filepath.Join(dir, "ride.csv"), m.selPath)
	assert.True(t, strings.HasPrefix(m.status, "loaded: ride.csv"), m.status)

	m.loadPath(filepath.Join(dir, "notes.txt"))
	assert.Equal(t, "load error: unsupported file: .txt", m.status)
	assert.Len(t, m.route, 3)
}

func TestExport(t *testing.T) {
	var got struct {
		sel  *export.Range
		opts export.Options
		n    int
	}
	m := newTestModel(t)
	m.export = func(s profile.Series, sel *export.Range, opts export.Options) (string, error) {
		got.sel, got.opts, got.n = sel, opts, len(s)
		return filepath.Join(opts.Dir, "profile."+string(opts.Format)), nil
	}

	m = send(t, m, key("e"))
	assert.Nil(t, got.sel)
	assert.Equal(t, export.PNG, got.opts.Format)
	assert.Equal(t, 13, got.n)
	assert.Equal(t, "exported: "+filepath.Join(m.cfg.Export.Dir, "profile.png"), m.status)

	m = send(t, m, press(col(3), plotRow), motion(col(8), plotRow), release(col(8), plotRow), key("E"))
	require.NotNil(t, got.sel)
	assert.Equal(t, export.Range{From: 3, To: 8}, *got.sel)
	assert.Equal(t, export.SVG, got.opts.Format)

	m.export = func(profile.Series, *export.Range, export.Options) (string, error) {
		return "", errors.New("disk full")
	}
	m = send(t, m, key("e"))
	assert.Equal(t, "export error: disk full", m.status)
}

func TestExportWritesFile(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, key("e"))
	require.True(t, strings.HasPrefix(m.status, "exported: "), m.status)
	path := strings.TrimPrefix(m.status, "exported: ")
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestKeys(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, key("h"))
	assert.False(t, m.helpVisible)
	assert.NotContains(t, m.View(), "q quit")
	m = send(t, m, key("h"))
	assert.Contains(t, m.View(), "q quit")

	m = send(t, m, key("+"))
	assert.InDelta(t, 1.2, m.zoom, 1e-9)
	m = send(t, m, key("-"))
	assert.InDelta(t, 1.0, m.zoom, 1e-9)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewRendersAxes(t *testing.T) {
	m := newTestModel(t)
	v := m.View()
	assert.Contains(t, v, "elevmap")
	assert.Contains(t, v, "km")
	assert.Contains(t, v, "200m")
	assert.Contains(t, v, "loaded: route")
}

// returnsWithin fails the test when fn is still running after d.
func returnsWithin(t *testing.T, d time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("did not return within %s", d)
	}
}

func TestNonFiniteRoutesRender(t *testing.T) {
	tests := []struct {
		name string
		edit func(p *geom.GeoPoint)
	}{
		{"nan lon", func(p *geom.GeoPoint) { p.Lon = math.NaN() }},
		{"nan lat", func(p *geom.GeoPoint) { p.Lat = math.NaN() }},
		{"inf lon", func(p *geom.GeoPoint) { p.Lon = math.Inf(1) }},
		{"nan ele", func(p *geom.GeoPoint) { p.Ele = math.NaN() }},
		{"+inf ele", func(p *geom.GeoPoint) { p.Ele = math.Inf(1) }},
		{"-inf ele", func(p *geom.GeoPoint) { p.Ele = math.Inf(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := eastRoute(5)
			tt.edit(&r[2])
			m := NewWithRoute(testConfig(t), r)
			require.NotNil(t, m.chart)

			returnsWithin(t, 5*time.Second, func() {
				m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
				assert.Contains(t, m.View(), "elevmap")

				m = send(t, m, motion(30, plotRow))
				assert.NotEmpty(t, m.View())

				m = send(t, m, motion(40, 5))
				assert.NotEmpty(t, m.View())

				m = send(t, m, press(20, plotRow), motion(60, plotRow), release(60, plotRow))
				assert.NotEmpty(t, m.View())

				m = send(t, m, key("+"), key("+"), key("+"))
				assert.NotEmpty(t, m.View())
			})
		})
	}
}

func TestNorthSouthRouteDrawsOnMap(t *testing.T) {
	r := geom.Route{{Lon: 3, Lat: 0, Ele: 10}, {Lon: 3, Lat: 0.05, Ele: 20}, {Lon: 3, Lat: 0.1, Ele: 30}}
	m := send(t, NewWithRoute(testConfig(t), r), tea.WindowSizeMsg{Width: 80, Height: 30})

	c := m.renderMap(80, 13)
	drawn := 0
	for y := range c.r {
		for _, ch := range c.r[y] {
			if ch >= 0x2800 && ch <= 0x28FF {
				drawn++
			}
		}
	}
	assert.Positive(t, drawn)
}
