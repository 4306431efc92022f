package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"elevmap/internal/profile"
)

var statsColumns = []table.Column{
	{Title: "range", Width: 9},
	{Title: "from", Width: 7},
	{Title: "to", Width: 7},
	{Title: "km", Width: 7},
	{Title: "ascent", Width: 7},
	{Title: "descent", Width: 7},
	{Title: "min", Width: 7},
	{Title: "max", Width: 7},
}

func statsRow(label string, st profile.Stats) table.Row {
	return table.Row{
		label,
		fmt.Sprintf("%.2f", st.StartDistance),
		fmt.Sprintf("%.2f", st.EndDistance),
		fmt.Sprintf("%.2f", st.Distance),
		fmt.Sprintf("+%.0f", st.Ascent),
		fmt.Sprintf("-%.0f", st.Descent),
		fmt.Sprintf("%.0f", st.MinElevation),
		fmt.Sprintf("%.0f", st.MaxElevation),
	}
}

// refreshStats rebuilds the statistics table: the whole route, plus the
// committed selection when there is one.
func (m *Model) refreshStats() {
	if m.chart == nil {
		m.showStats = false
		m.status = "no route loaded"
		return
	}
	s := m.chart.Series()
	rows := []table.Row{statsRow("route", s.Stats(0, len(s)-1))}
	if from, to, ok := m.chart.Selection(); ok {
		rows = append(rows, statsRow("selection", s.Stats(from, to)))
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(statsColumns)
	m.tbl.SetRows(rows)
	m.tbl.SetHeight(len(rows) + 1)
}

func statsWidth() int {
	w := 0
	for _, c := range statsColumns {
		w += c.Width + 2
	}
	return w
}
