package profile

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elevmap/internal/geom"
)

type fakeSurface struct {
	w, h float64
	subs map[int]func()
	next int
}

func newFakeSurface(w, h float64) *fakeSurface {
	return &fakeSurface{w: w, h: h, subs: map[int]func(){}}
}

func (s *fakeSurface) Size() (float64, float64) { return s.w, s.h }

func (s *fakeSurface) OnResize(fn func()) func() {
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *fakeSurface) resize(w, h float64) {
	s.w, s.h = w, h
	for _, fn := range s.subs {
		fn()
	}
}

type locator map[string]Surface

func (l locator) Lookup(sel string) (Surface, bool) {
	s, ok := l[sel]
	return s, ok
}

// recorder logs every notification as a string.
type recorder struct {
	events []string
}

func (r *recorder) handlers() Handlers {
	return Handlers{
		OnHover:       func(s Sample, i int) { r.add("hover(%d,%g)", i, s.Elevation) },
		OnHoverEnd:    func() { r.add("hoverEnd") },
		OnSelectStart: func(i int) { r.add("start(%d)", i) },
		OnSelectMove:  func(a, b int) { r.add("move(%d,%d)", a, b) },
		OnSelectEnd:   func(i int) { r.add("end(%d)", i) },
	}
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) take() []string {
	ev := r.events
	r.events = nil
	return ev
}

// newTestChart attaches a 13 point route to a 400x200 surface with padding 20.
// Pixel 50 resolves to sample 2 and pixel 200 to sample 7.
func newTestChart(t *testing.T) (*Chart, *fakeSurface, *recorder) {
	t.Helper()
	surf := newFakeSurface(400, 200)
	rec := &recorder{}
	c, err := New(lineRoute(13), locator{"#profile": surf}, Options{
		Selector: "#profile",
		Padding:  20,
		Distance: lonKm,
		Handlers: rec.handlers(),
	})
	require.NoError(t, err)
	return c, surf, rec
}

func TestNewConfigurationError(t *testing.T) {
	_, err := New(lineRoute(3), locator{"#profile": newFakeSurface(1, 1)}, Options{Selector: "#missing"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfiguration))
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "#missing", ce.Selector)

	_, err = New(lineRoute(3), nil, Options{Selector: "#profile"})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNewEmptyRoute(t *testing.T) {
	_, err := New(nil, locator{"#p": newFakeSurface(1, 1)}, Options{Selector: "#p"})
	assert.ErrorIs(t, err, ErrEmptyRoute)
}

func TestNewDefaults(t *testing.T) {
	c, _, _ := newTestChart(t)
	assert.Equal(t, DefaultTickPolicy, c.Options().Ticks)
	assert.Len(t, c.Series(), 15)
	assert.Equal(t, [2]float64{20, 400}, c.Scales().X.Range)
	assert.Equal(t, [2]float64{200, 20}, c.Scales().Y.Range)
}

func TestDragExample(t *testing.T) {
	c, _, rec := newTestChart(t)

	c.DragStart(50)
	assert.True(t, c.Dragging())
	c.DragMove(120)
	c.DragMove(200)
	c.DragEnd(200)
	assert.False(t, c.Dragging())

	ev := rec.take()
	require.NotEmpty(t, ev)
	assert.Equal(t, "start(2)", ev[0])
	assert.Equal(t, "end(7)", ev[len(ev)-1])
	assert.Contains(t, ev, "move(2,7)")
	starts, ends := 0, 0
	for _, e := range ev {
		switch e[:3] {
		case "sta":
			starts++
		case "end":
			ends++
		}
	}
	assert.Equal(t, 1, starts)
	assert.Equal(t, 1, ends)

	from, to, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, 2, from)
	assert.Equal(t, 7, to)
}

func TestDragRightToLeftIsOrdered(t *testing.T) {
	c, _, rec := newTestChart(t)

	c.DragStart(200)
	c.DragMove(50)
	c.DragEnd(50)

	assert.Equal(t, []string{"start(7)", "move(2,7)", "end(7)"}, rec.take())
	from, to, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, 2, from)
	assert.Equal(t, 7, to)
}

func TestClickWithoutMotionSelectsNothing(t *testing.T) {
	c, _, rec := newTestChart(t)

	c.DragStart(50)
	c.DragEnd(50)

	assert.Equal(t, []string{"start(2)", "end(2)"}, rec.take())
	_, _, ok := c.Selection()
	assert.False(t, ok)
}

func TestDragEventsOutsideDragAreIgnored(t *testing.T) {
	c, _, rec := newTestChart(t)
	c.DragMove(100)
	c.DragEnd(100)
	assert.Empty(t, rec.take())
}

func TestHover(t *testing.T) {
	c, _, rec := newTestChart(t)

	c.PointerMove(200)
	i, ok := c.Hover()
	require.True(t, ok)
	assert.Equal(t, 7, i)

	c.PointerLeave()
	_, ok = c.Hover()
	assert.False(t, ok)
	c.PointerLeave()

	assert.Equal(t, []string{"hover(7,160)", "hoverEnd"}, rec.take())
}

func TestHoverIgnoredWhileDragging(t *testing.T) {
	c, _, rec := newTestChart(t)
	c.DragStart(50)
	c.PointerMove(200)
	assert.Equal(t, []string{"start(2)"}, rec.take())
}

func TestPointerLeaveCancelsDrag(t *testing.T) {
	c, _, rec := newTestChart(t)

	c.PointerMove(40)
	c.DragStart(50)
	c.DragMove(200)
	c.PointerLeave()

	assert.False(t, c.Dragging())
	assert.Equal(t, []string{"hover(2,110)", "start(2)", "move(2,7)", "end(7)", "hoverEnd"}, rec.take())
	from, to, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, [2]int{2, 7}, [2]int{from, to})
}

func TestNoHandlersRegistered(t *testing.T) {
	surf := newFakeSurface(400, 200)
	c, err := New(lineRoute(13), locator{"#p": surf}, Options{Selector: "#p", Padding: 20, Distance: lonKm})
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		c.PointerMove(100)
		c.DragStart(50)
		c.DragMove(200)
		c.DragEnd(200)
		c.PointerLeave()
		require.NoError(t, c.Update(lineRoute(4)))
	})
}

func TestUpdateClearsInFlightState(t *testing.T) {
	c, _, rec := newTestChart(t)

	c.PointerMove(100)
	c.DragStart(50)
	c.DragMove(200)
	rec.take()

	require.NoError(t, c.Update(lineRoute(4)))

	assert.Equal(t, []string{"end(7)", "hoverEnd"}, rec.take())
	assert.False(t, c.Dragging())
	_, ok := c.Hover()
	assert.False(t, ok)
	_, _, ok = c.Selection()
	assert.False(t, ok)
	assert.Len(t, c.Series(), 6)
	assert.Equal(t, [2]float64{0, 3}, c.Scales().X.Domain)
}

func TestUpdateDropsCommittedSelection(t *testing.T) {
	c, _, rec := newTestChart(t)
	c.DragStart(50)
	c.DragMove(200)
	c.DragEnd(200)
	rec.take()

	require.NoError(t, c.Update(lineRoute(13)))
	assert.Empty(t, rec.take())
	_, _, ok := c.Selection()
	assert.False(t, ok)
}

func TestUpdateEmptyRouteKeepsData(t *testing.T) {
	c, _, _ := newTestChart(t)
	before, scales := c.Series(), c.Scales()

	err := c.Update(geom.Route{})
	assert.ErrorIs(t, err, ErrEmptyRoute)
	assert.Equal(t, before, c.Series())
	assert.Equal(t, scales, c.Scales())
}

func TestUpdateReplacesSeries(t *testing.T) {
	c, _, _ := newTestChart(t)
	old := c.Series()
	oldCopy := append(Series(nil), old...)

	route := lineRoute(3)
	routeCopy := route.Clone()
	require.NoError(t, c.Update(route))

	assert.Equal(t, oldCopy, old, "previous snapshot is untouched")
	assert.Equal(t, routeCopy, route, "caller's route is untouched")
}

func TestResizeSubscription(t *testing.T) {
	c, surf, _ := newTestChart(t)
	require.Len(t, surf.subs, 1)

	surf.resize(1024, 400)
	sc := c.Scales()
	assert.Equal(t, [2]float64{20, 1024}, sc.X.Range)
	assert.Equal(t, [2]float64{400, 20}, sc.Y.Range)
	assert.Equal(t, 12, sc.XTicks)
	assert.Equal(t, 12, sc.YTicks)

	c.Close()
	assert.Empty(t, surf.subs)
	c.Close()

	surf.resize(300, 100)
	assert.Equal(t, sc, c.Scales(), "closed chart ignores resizes")
}

func TestClearSelection(t *testing.T) {
	c, _, _ := newTestChart(t)
	c.DragStart(50)
	c.DragMove(200)

	c.ClearSelection()
	_, _, ok := c.Selection()
	assert.True(t, ok, "an active drag keeps its range")

	c.DragEnd(200)
	c.ClearSelection()
	_, _, ok = c.Selection()
	assert.False(t, ok)
}
