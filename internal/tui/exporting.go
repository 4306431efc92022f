package tui

import (
	"log/slog"
	"path/filepath"

	"elevmap/internal/export"
	"elevmap/internal/profile"
)

// exportFunc writes the profile and returns the file path.
type exportFunc func(s profile.Series, sel *export.Range, opts export.Options) (string, error)

var exportProfile exportFunc = export.Profile

func (m *Model) runExport(svg bool) {
	if m.chart == nil {
		m.status = "export: no route loaded"
		return
	}
	c := m.cfg
	opts := export.Options{
		Dir:      c.Export.Dir,
		WidthIn:  c.Export.WidthIn,
		HeightIn: c.Export.HeightIn,
		Color:    c.Chart.Color,
		Fill:     c.Chart.Fill,
		Format:   export.PNG,
		Title:    "route",
	}
	if svg {
		opts.Format = export.SVG
	}
	if m.selPath != "" {
		opts.Title = filepath.Base(m.selPath)
	}
	var sel *export.Range
	if from, to, ok := m.chart.Selection(); ok {
		sel = &export.Range{From: from, To: to}
	}
	path, err := m.export(m.chart.Series(), sel, opts)
	if err != nil {
		slog.Warn("export failed", "error", err)
		m.status = "export error: " + err.Error()
		return
	}
	m.status = "exported: " + path
}
