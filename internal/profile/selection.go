package profile

// Handlers are the optional notifications a host can register. A nil field
// means the notification is not emitted.
type Handlers struct {
	OnHover       func(s Sample, index int)
	OnHoverEnd    func()
	OnSelectStart func(index int)
	OnSelectMove  func(from, to int)
	OnSelectEnd   func(index int)
}

func (h Handlers) hover(s Sample, i int) {
	if h.OnHover != nil {
		h.OnHover(s, i)
	}
}

func (h Handlers) hoverEnd() {
	if h.OnHoverEnd != nil {
		h.OnHoverEnd()
	}
}

func (h Handlers) selectStart(i int) {
	if h.OnSelectStart != nil {
		h.OnSelectStart(i)
	}
}

func (h Handlers) selectMove(from, to int) {
	if h.OnSelectMove != nil {
		h.OnSelectMove(from, to)
	}
}

func (h Handlers) selectEnd(i int) {
	if h.OnSelectEnd != nil {
		h.OnSelectEnd(i)
	}
}

// SelectionState is the drag state.
type SelectionState int

const (
	Idle SelectionState = iota
	Dragging
)

func (s SelectionState) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Selection tracks one drag gesture in pixel space and reports it in sample
// index space. The zero value is Idle with nothing selected.
type Selection struct {
	state  SelectionState
	anchor float64 // px where the drag started
	last   float64 // px of the latest drag event

	// committed range, kept after the drag ends until cleared
	from, to int
	has      bool
}

// State returns Idle or Dragging.
func (s *Selection) State() SelectionState { return s.state }

// Range returns the last reported index range, ordered.
func (s *Selection) Range() (from, to int, ok bool) {
	return s.from, s.to, s.has
}

// Clear drops the committed range. It does not affect an active drag.
func (s *Selection) Clear() {
	if s.state == Idle {
		s.has = false
	}
}

// Start begins a drag at px, replacing any earlier drag or range.
func (s *Selection) Start(series Series, x Linear, px float64, h Handlers) {
	s.state = Dragging
	s.anchor, s.last = px, px
	i := Resolve(series, x, px)
	s.from, s.to, s.has = i, i, false
	h.selectStart(i)
}

// Move reports the pixel range [pa, pb] in either order. It is ignored
// unless a drag is active.
func (s *Selection) Move(series Series, x Linear, pa, pb float64, h Handlers) {
	if s.state != Dragging {
		return
	}
	s.last = pb
	s.from, s.to = ordered(Resolve(series, x, pa), Resolve(series, x, pb))
	s.has = true
	h.selectMove(s.from, s.to)
}

// End finishes the drag on the pixel range [pa, pb] and reports the sample
// under the right-hand end of the range. A range with no width leaves
// nothing selected.
func (s *Selection) End(series Series, x Linear, pa, pb float64, h Handlers) {
	if s.state != Dragging {
		return
	}
	s.state = Idle
	ia, ib := Resolve(series, x, pa), Resolve(series, x, pb)
	s.from, s.to = ordered(ia, ib)
	s.has = pa != pb
	if pa > pb {
		ib = ia
	}
	h.selectEnd(ib)
}

// Cancel ends an active drag at the last known pointer position. For the
// host it looks exactly like End.
func (s *Selection) Cancel(series Series, x Linear, h Handlers) {
	s.End(series, x, s.anchor, s.last, h)
}

// Anchor is the pixel where the active drag started.
func (s *Selection) Anchor() float64 { return s.anchor }

func ordered(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
