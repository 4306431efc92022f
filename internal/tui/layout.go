package tui

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
	gutterWidth  = 8 // elevation labels left of the profile
	axisHeight   = 1 // distance labels under the profile
)

// layout is the screen geometry shared by View and mouse hit testing.
type layout struct {
	contentW, contentH int
	bodyX, bodyW       int
	mapY, mapH         int
	profY, profH       int // plot rows, axis row excluded
}

func (m Model) layout() layout {
	var lo layout
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	if m.showSidebar {
		lo.bodyX = sidebarWidth + 1
	}
	lo.bodyW = max(gutterWidth+4, lo.contentW-lo.bodyX)

	lo.mapY = headerHeight
	lo.mapH = max(1, int(float64(lo.contentH)*m.cfg.Map.HeightRatio))
	lo.profY = lo.mapY + lo.mapH
	lo.profH = max(1, lo.contentH-lo.mapH-axisHeight)
	return lo
}

// applyLayout pushes the current geometry into the panes; the chart hears
// about size changes through its resize subscription.
func (m Model) applyLayout() layout {
	lo := m.layout()
	m.panes[selectorMap].setBounds(lo.bodyX, lo.mapY, lo.bodyW, lo.mapH)
	m.panes[selectorProfile].setBounds(lo.bodyX+gutterWidth, lo.profY, lo.bodyW-gutterWidth, lo.profH)
	return lo
}
