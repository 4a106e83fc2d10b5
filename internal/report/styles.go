package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/cinematicwebworks/seokit/internal/model"
)

// Color palette.
var (
	colorPrimary = lipgloss.Color("39")  // Blue
	colorSuccess = lipgloss.Color("34")  // Green
	colorWarning = lipgloss.Color("214") // Orange
	colorError   = lipgloss.Color("196") // Red
	colorMuted   = lipgloss.Color("240") // Dark gray
)

// Console markers, matching the Markdown indicators.
const (
	markPass  = "✅"
	markWarn  = "⚠️ "
	markFail  = "❌"
	markFile  = "📄"
	markChart = "📊"
)

// styles are bound to one output so color is only emitted to terminals.
type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(output io.Writer) styles {
	r := lipgloss.NewRenderer(output)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorPrimary),
		heading: r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(colorSuccess),
		warning: r.NewStyle().Foreground(colorWarning),
		failure: r.NewStyle().Foreground(colorError),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

// score renders text in the color of its threshold indicator.
func (s styles) score(ind model.Indicator, text string) string {
	switch ind {
	case model.IndicatorPass:
		return s.success.Render(text)
	case model.IndicatorNear:
		return s.warning.Render(text)
	default:
		return s.failure.Render(text)
	}
}
