package profile

import (
	"errors"
	"fmt"
	"log/slog"

	"elevmap/internal/geom"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("configuration error")
	// ErrEmptyRoute is returned when a route has no points.
	ErrEmptyRoute = errors.New("route has no points")
)

// ConfigurationError reports a selector that resolves to no surface.
type ConfigurationError struct {
	Selector string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("profile: no surface for selector %q", e.Selector)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// Surface is the drawing area a chart is attached to. Sizes are in pixels.
type Surface interface {
	Size() (width, height float64)
	// OnResize registers fn to run after every size change and returns a
	// function that removes it.
	OnResize(fn func()) (unsubscribe func())
}

// SurfaceLocator finds a surface by selector.
type SurfaceLocator interface {
	Lookup(selector string) (Surface, bool)
}

// Options configure a Chart. Colors are passed through to the renderer.
type Options struct {
	Selector string
	Color    string
	Fill     string
	PinColor string
	Padding  float64
	// Ticks defaults to DefaultTickPolicy when left zero.
	Ticks TickPolicy
	// Distance defaults to geom.Distance.
	Distance geom.DistanceFunc
	Handlers
}

// Chart owns the Series, Scales and selection state of one elevation
// profile. All methods run on the caller's event loop; none block. Series and
// Scales are replaced wholesale, never modified in place, so values returned
// by the accessors stay consistent. Callers must not modify them.
type Chart struct {
	opts        Options
	surface     Surface
	unsubscribe func()

	series Series
	scales Scales

	sel      Selection
	hovering bool
	hover    int
}

// New builds the chart for route and attaches it to the surface named by
// opts.Selector. route is not retained or modified.
func New(route geom.Route, loc SurfaceLocator, opts Options) (*Chart, error) {
	if loc == nil {
		return nil, &ConfigurationError{Selector: opts.Selector}
	}
	surface, ok := loc.Lookup(opts.Selector)
	if !ok || surface == nil {
		return nil, &ConfigurationError{Selector: opts.Selector}
	}
	if len(route) == 0 {
		return nil, ErrEmptyRoute
	}
	if opts.Ticks == (TickPolicy{}) {
		opts.Ticks = DefaultTickPolicy
	}
	c := &Chart{opts: opts, surface: surface}
	c.series = Build(route, opts.Distance)
	c.scales = c.compute(c.series)
	c.unsubscribe = surface.OnResize(c.Resize)
	slog.Debug("profile chart created", "selector", opts.Selector, "samples", len(c.series))
	return c, nil
}

func (c *Chart) compute(s Series) Scales {
	w, h := c.surface.Size()
	return Compute(s, w, h, c.opts.Padding, c.opts.Ticks)
}

// Update replaces the route. An empty route is rejected and the chart keeps
// its current data. Before the new data is installed, an active drag is
// finished against the old series (OnSelectEnd fires), an active hover is
// ended (OnHoverEnd fires) and any committed range is dropped.
func (c *Chart) Update(route geom.Route) error {
	if len(route) == 0 {
		return ErrEmptyRoute
	}
	series := Build(route, c.opts.Distance)
	scales := c.compute(series)

	if c.sel.State() == Dragging {
		c.sel.Cancel(c.series, c.scales.X, c.opts.Handlers)
	}
	c.sel.Clear()
	c.endHover()

	c.series, c.scales = series, scales
	slog.Debug("profile chart updated", "samples", len(series), "km", series.MaxDistance())
	return nil
}

// Resize recomputes the scales from the current surface size.
func (c *Chart) Resize() {
	c.scales = c.compute(c.series)
}

// Close detaches the chart from its surface's resize notifications.
func (c *Chart) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// PointerMove handles a pointer at surface pixel x. It resolves the hovered
// sample and emits OnHover unless a drag is active.
func (c *Chart) PointerMove(px float64) {
	if c.sel.State() == Dragging {
		return
	}
	i := Resolve(c.series, c.scales.X, px)
	c.hovering, c.hover = true, i
	c.opts.hover(c.series[i], i)
}

// PointerLeave handles the pointer leaving the surface. An active drag is
// finished at the last known position and the hover is ended.
func (c *Chart) PointerLeave() {
	if c.sel.State() == Dragging {
		c.sel.Cancel(c.series, c.scales.X, c.opts.Handlers)
	}
	c.endHover()
}

func (c *Chart) endHover() {
	if !c.hovering {
		return
	}
	c.hovering = false
	c.opts.hoverEnd()
}

// DragStart begins a range selection at pixel x.
func (c *Chart) DragStart(px float64) {
	c.sel.Start(c.series, c.scales.X, px, c.opts.Handlers)
}

// DragMove extends the active selection from its anchor to pixel x.
func (c *Chart) DragMove(px float64) {
	c.sel.Move(c.series, c.scales.X, c.sel.Anchor(), px, c.opts.Handlers)
}

// DragEnd finishes the active selection at pixel x.
func (c *Chart) DragEnd(px float64) {
	if c.sel.State() != Dragging {
		return
	}
	c.sel.End(c.series, c.scales.X, c.sel.Anchor(), px, c.opts.Handlers)
	if from, to, ok := c.sel.Range(); ok {
		slog.Debug("profile selection", "from", from, "to", to)
	}
}

// ClearSelection drops the committed range.
func (c *Chart) ClearSelection() { c.sel.Clear() }

// Series returns the current series.
func (c *Chart) Series() Series { return c.series }

// Scales returns the current scales.
func (c *Chart) Scales() Scales { return c.scales }

// Options returns the options the chart was built with.
func (c *Chart) Options() Options { return c.opts }

// Hover returns the hovered sample index, if any.
func (c *Chart) Hover() (int, bool) { return c.hover, c.hovering }

// Selection returns the selected index range, if any. During a drag it is
// the range reported by the latest OnSelectMove.
func (c *Chart) Selection() (from, to int, ok bool) { return c.sel.Range() }

// Dragging reports whether a drag is in progress.
func (c *Chart) Dragging() bool { return c.sel.State() == Dragging }
