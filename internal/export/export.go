// Package export renders an elevation profile to an image file.
package export

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"elevmap/internal/profile"
)

// Format is the output image format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// Options controls one export.
type Options struct {
	Dir      string
	WidthIn  float64
	HeightIn float64
	Color    string // line color, #rrggbb
	Fill     string // area color, #rrggbb
	Format   Format
	Title    string
	Now      func() time.Time
}

// Range is an ordered series index range to shade.
type Range struct {
	From, To int
}

var ErrNoData = errors.New("export: profile has fewer than two samples")

// seriesXY adapts a profile series to plotter.XYer.
type seriesXY profile.Series

func (s seriesXY) Len() int                { return len(s) }
func (s seriesXY) XY(i int) (x, y float64) { return s[i].Distance, s[i].Elevation }

// Profile writes the series as a filled area with its line on top. A non-nil
// sel is shaded. The written file path is returned.
func Profile(s profile.Series, sel *Range, opts Options) (string, error) {
	if len(s) < 2 {
		return "", ErrNoData
	}
	lineColor, err := parseColor(opts.Color)
	if err != nil {
		return "", err
	}
	fillColor, err := parseColor(opts.Fill)
	if err != nil {
		return "", err
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "distance (km)"
	p.Y.Label.Text = "elevation (m)"
	p.Add(plotter.NewGrid())

	area, err := plotter.NewLine(seriesXY(s))
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	area.LineStyle.Width = 0
	area.FillColor = fillColor
	p.Add(area)

	if sel != nil && sel.From < sel.To && sel.From >= 0 && sel.To < len(s) {
		band, err := plotter.NewLine(seriesXY(s[sel.From : sel.To+1]))
		if err != nil {
			return "", fmt.Errorf("export: %w", err)
		}
		band.LineStyle.Width = 0
		band.FillColor = withAlpha(lineColor, 0x80)
		p.Add(band)
	}

	line, err := plotter.NewLine(seriesXY(s))
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	line.LineStyle.Color = lineColor
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	format := opts.Format
	if format == "" {
		format = PNG
	}
	name := fmt.Sprintf("profile-%s.%s", now().Format("20060102-150405"), format)
	path := filepath.Join(opts.Dir, name)
	if err := p.Save(vg.Length(opts.WidthIn)*vg.Inch, vg.Length(opts.HeightIn)*vg.Inch, path); err != nil {
		return "", fmt.Errorf("export: save %s: %w", path, err)
	}
	slog.Debug("profile exported", "path", path, "samples", len(s))
	return path, nil
}

func parseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(expandHex(hex))
	if err != nil {
		return nil, fmt.Errorf("export: color %q: %w", hex, err)
	}
	return c, nil
}

// expandHex turns #rgb into #rrggbb.
func expandHex(s string) string {
	if len(s) != 4 || s[0] != '#' {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

func withAlpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}
