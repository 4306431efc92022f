package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"elevmap/internal/config"
	"elevmap/internal/geom"
	"elevmap/internal/profile"
)

type Model struct {
	cfg config.Config

	width  int
	height int

	showSidebar bool
	helpVisible bool

	// map pane zoom and pan
	zoom    float64
	offsetX int
	offsetY int

	status string

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	route geom.Route
	chart *profile.Chart
	link  *link
	panes panes

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// selection statistics table
	showStats bool
	tbl       table.Model

	// map hover state
	mapHovering bool
	mapHover    int // route index
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// export writes the current profile; swapped in tests
	export exportFunc
}

func New(cfg config.Config) Model {
	m := Model{
		cfg:         cfg,
		showSidebar: false,
		helpVisible: true,
		zoom:        1.0,
		status:      "elevmap ready",
		link:        &link{},
		panes:       newPanes(),
		export:      exportProfile,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Routes"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (LINESTRING Z (lon lat ele, ...)). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(false))
	m.tbl.SetHeight(4)
	m.refreshDir()
	return m
}

// NewWithPath preloads a route file at launch.
func NewWithPath(cfg config.Config, path string) Model {
	m := New(cfg)
	m.loadPath(path)
	return m
}

// NewWithRoute preloads an in-memory route.
func NewWithRoute(cfg config.Config, route geom.Route) Model {
	m := New(cfg)
	m.setRoute(route, "route")
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// chartOptions maps configuration onto the chart. Tick thresholds are given
// in screen pixels and converted to dots using the configured cell size.
func (m Model) chartOptions() profile.Options {
	c := m.cfg.Chart
	t := c.Ticks
	return profile.Options{
		Selector: selectorProfile,
		Color:    c.Color,
		Fill:     c.Fill,
		PinColor: c.PinColor,
		Padding:  c.Padding,
		Ticks: profile.TickPolicy{
			WideWidth:  t.WideWidth * dotsX / c.CellWidth,
			TallHeight: t.TallHeight * dotsY / c.CellHeight,
			NarrowX:    t.NarrowX,
			WideX:      t.WideX,
			ShortY:     t.ShortY,
			TallY:      t.TallY,
		},
		Handlers: m.link.handlers(),
	}
}

// setRoute installs a new route: the first one creates the chart, later ones
// go through Chart.Update so in-flight hover and selection are cleared.
func (m *Model) setRoute(route geom.Route, name string) bool {
	if m.chart == nil {
		c, err := profile.New(route, m.panes, m.chartOptions())
		if err != nil {
			m.status = "load error: " + err.Error()
			return false
		}
		m.chart = c
		m.link.chart = c
	} else if err := m.chart.Update(route); err != nil {
		m.status = "load error: " + err.Error()
		return false
	}
	m.link.takeStatus()
	m.link.reset()
	m.route = route.Clone()
	m.mapHovering = false
	m.zoom, m.offsetX, m.offsetY = 1.0, 0, 0
	s := m.chart.Series()
	m.status = "loaded: " + name + fmtCounts(len(route), s.MaxDistance())
	if m.showStats {
		m.refreshStats()
	}
	return true
}
