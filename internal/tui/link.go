package tui

import (
	"fmt"
	"log/slog"

	"elevmap/internal/profile"
)

// link carries chart notifications over to the route map and the footer.
// The chart calls its handlers synchronously from Update, so the model reads
// the result right after the call that caused it.
type link struct {
	chart *profile.Chart

	hovering bool
	hover    int // series index

	selecting bool
	from, to  int // series indices, ordered
	hasRange  bool

	status string
}

func (l *link) handlers() profile.Handlers {
	return profile.Handlers{
		OnHover: func(s profile.Sample, i int) {
			l.hovering, l.hover = true, i
		},
		OnHoverEnd: func() {
			l.hovering = false
		},
		OnSelectStart: func(i int) {
			l.selecting, l.hasRange = true, false
			l.from, l.to = i, i
			l.status = fmt.Sprintf("selecting from %.2fkm", l.distance(i))
		},
		OnSelectMove: func(from, to int) {
			l.from, l.to, l.hasRange = from, to, true
			l.status = fmt.Sprintf("selecting %.2f–%.2fkm", l.distance(from), l.distance(to))
		},
		OnSelectEnd: func(i int) {
			l.selecting = false
			if l.chart == nil {
				return
			}
			from, to, ok := l.chart.Selection()
			l.hasRange = ok
			if !ok {
				l.status = fmt.Sprintf("at %.2fkm", l.distance(i))
				return
			}
			l.from, l.to = from, to
			st := l.chart.Series().Stats(from, to)
			l.status = fmt.Sprintf("selected %.2f–%.2fkm  %.2fkm  +%.0fm -%.0fm",
				st.StartDistance, st.EndDistance, st.Distance, st.Ascent, st.Descent)
			slog.Debug("selection finished", "from", from, "to", to, "km", st.Distance)
		},
	}
}

func (l *link) distance(i int) float64 {
	if l.chart == nil {
		return 0
	}
	s := l.chart.Series()
	if i < 0 || i >= len(s) {
		return 0
	}
	return s[i].Distance
}

// takeStatus returns and clears the latest status message.
func (l *link) takeStatus() (string, bool) {
	s := l.status
	l.status = ""
	return s, s != ""
}

// reset forgets everything after the chart dropped its state.
func (l *link) reset() {
	l.hovering, l.selecting, l.hasRange = false, false, false
}
