package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()
	styles := newChartStyles(m.cfg.Chart.Color, m.cfg.Chart.Fill, m.cfg.Chart.PinColor)

	// Header
	header := titleStyle.Render(" elevmap ─ terminal elevation profile ")
	header = lipgloss.NewStyle().Width(lo.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(sidebarWidth).Height(lo.contentH).Render(m.l.View())
	}

	// Map viewport, or the stats table / paste box in its place
	var mapView string
	switch {
	case m.pasteMode:
		ta := m.ta
		ta.SetWidth(lo.bodyW)
		ta.SetHeight(min(lo.mapH, 12))
		mapView = ta.View()
	case m.showStats:
		tbl := m.tbl
		w := min(lo.bodyW-4, statsWidth())
		tbl.SetWidth(w)
		box := boxStyle.Render(tbl.View())
		mapView = lipgloss.Place(lo.bodyW, lo.mapH, lipgloss.Center, lipgloss.Center, box)
	default:
		mapView = m.renderMap(lo.bodyW, lo.mapH).render(styles)
	}
	mapView = lipgloss.NewStyle().Width(lo.bodyW).Height(lo.mapH).MaxHeight(lo.mapH).Render(mapView)

	// Profile with its axes
	plotW := lo.bodyW - gutterWidth
	plot := m.renderProfile(plotW, lo.profH).render(styles)
	profView := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, dimStyle.Render(m.yLabels(lo.profH)), plot),
		dimStyle.Render(m.xLabels(plotW)),
	)

	right := lipgloss.JoinVertical(lipgloss.Left, mapView, profView)
	body := right
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", right)
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	// mouse coords at bottom-right
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  lon=%.5f lat=%.5f  ", m.hoverLon, m.hoverLat))
	}
	spacerW := max(0, lo.contentW-lipgloss.Width(status)-lipgloss.Width(coords))
	statusLine := lipgloss.NewStyle().MaxWidth(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, strings.Repeat(" ", spacerW), coords))
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinVertical(lipgloss.Left, statusLine, help))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"q quit",
		"h help",
		"drag select",
		"Esc clear",
		"a stats",
		"e/E export",
		"Tab sidebar",
		"Enter open",
		"p paste",
		"+/- zoom",
		"↑↓←→ pan",
	}
	return dimStyle.MaxWidth(max(10, m.width)).Render("  " + strings.Join(keys, "  "))
}
