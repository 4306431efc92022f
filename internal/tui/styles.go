package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	subtleBg  = lipgloss.Color("#0B0F14")
	bandBg    = lipgloss.Color("#1E2A3A")
	borderCol = lipgloss.Color("#243141")

	appStyle     = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(baseDimFg)
	tooltipStyle = lipgloss.NewStyle().Foreground(baseFg).Background(subtleBg)
)

// chartStyles colors one render pass from the chart's configured colors.
type chartStyles map[cellKind]lipgloss.Style

func newChartStyles(color, fill, pin string) chartStyles {
	return chartStyles{
		kindLine:     lipgloss.NewStyle().Foreground(lipgloss.Color(color)),
		kindFill:     lipgloss.NewStyle().Foreground(lipgloss.Color(fill)),
		kindSelected: lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true),
		kindGrid:     dimStyle,
		kindFocus:    dimStyle,
		kindPin:      lipgloss.NewStyle().Foreground(lipgloss.Color(pin)).Bold(true),
		kindText:     tooltipStyle,
	}
}
