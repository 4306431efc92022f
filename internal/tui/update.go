package tui

import (
	"fmt"
	"log/slog"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"elevmap/internal/geom"
	"elevmap/internal/profile"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lo := m.applyLayout()
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, lo.contentH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			if m.chart != nil {
				m.chart.Close()
			}
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("map zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("map zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			lo := m.applyLayout()
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, lo.contentH-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showStats = !m.showStats
			if m.showStats {
				m.refreshStats()
			}
		case "e", "E":
			m.runExport(msg.String() == "E")
		case "esc":
			if m.chart != nil && !m.chart.Dragging() {
				m.chart.ClearSelection()
				m.link.hasRange = false
				m.status = "selection cleared"
				if m.showStats {
					m.refreshStats()
				}
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.status = "paste: empty"
			return m, nil
		}
		route, err := geom.ParseWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		if m.setRoute(route, "pasted WKT") {
			m.pasteMode = false
			m.ta.Blur()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// handleMouse routes pointer events: the profile pane drives the chart's
// hover and drag gestures, the map pane drives the map-side highlight.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	prof := m.panes[selectorProfile]
	mp := m.panes[selectorMap]
	inProfile := prof.contains(msg.X, msg.Y)

	if m.chart != nil {
		px := prof.dotX(msg.X)
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && inProfile:
			m.chart.DragStart(px)
		case msg.Action == tea.MouseActionRelease && m.chart.Dragging():
			m.chart.DragEnd(px)
		case m.chart.Dragging():
			if inProfile {
				m.chart.DragMove(px)
			} else {
				m.chart.PointerLeave()
			}
		case inProfile:
			m.chart.PointerMove(px)
		default:
			m.chart.PointerLeave()
		}
		if s, ok := m.link.takeStatus(); ok {
			m.status = s
			if m.showStats && !m.link.selecting {
				m.refreshStats()
			}
		}
	}

	if mp.contains(msg.X, msg.Y) && len(m.route) > 0 {
		m.hoverMap(msg.X-mp.x, msg.Y-mp.y, mp.cols, mp.rows)
	} else {
		m.mapHovering = false
		m.hoverHasGeo = false
	}
}

// hoverMap finds the route point nearest to the pointer on the map pane.
func (m *Model) hoverMap(cx, cy, w, h int) {
	if lon, lat, ok := m.cellToLonLat(cx, cy, w, h); ok {
		m.hoverHasGeo = true
		m.hoverLon = lon
		m.hoverLat = lat
	} else {
		m.hoverHasGeo = false
	}
	hxMic := cx * dotsX
	hyMic := cy * dotsY
	best := 1<<31 - 1
	bestIdx := -1
	for i, p := range m.route {
		mx, my, ok := m.screenXYMicro(p.Lon, p.Lat, w, h)
		if !ok {
			continue
		}
		dx := mx - hxMic
		dy := my - hyMic
		d := dx*dx + dy*dy
		if d < best {
			best = d
			bestIdx = i
		}
	}
	m.mapHovering = bestIdx >= 0
	m.mapHover = bestIdx
	if m.mapHovering {
		p := m.route[bestIdx]
		slog.Debug("map hover", "index", bestIdx, "lon", p.Lon, "lat", p.Lat)
	}
}

// focusIndex is the series index to mark on both panes: the chart hover
// wins over the map hover.
func (m Model) focusIndex() (int, bool) {
	if m.link.hovering {
		return m.link.hover, true
	}
	if m.mapHovering && m.chart != nil {
		return m.mapHover + 1, true
	}
	return 0, false
}

func fmtCounts(points int, km float64) string {
	return fmt.Sprintf("  points=%d  %.2fkm", points, km)
}

// routeRange converts the linked series range into route indices.
func (m Model) routeRange() (from, to int, ok bool) {
	if !m.link.hasRange || len(m.route) == 0 {
		return 0, 0, false
	}
	return profile.RouteIndex(m.link.from, len(m.route)), profile.RouteIndex(m.link.to, len(m.route)), true
}
