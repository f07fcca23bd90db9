package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/younsl/lbghost/internal/models"
)

// Color palette
const (
	ColorHeader  = "141"
	ColorGhost   = "213"
	ColorWarning = "214"
	ColorError   = "196"
	ColorSuccess = "82"
	ColorInfo    = "81"
	ColorMuted   = "245"
)

const (
	bannerWidth = 79
	separator   = "═"
)

// Shared styles
var (
	HeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHeader))
	GhostStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorGhost))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorInfo))
	MutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))

	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(ColorHeader)).
			Foreground(lipgloss.Color(ColorHeader)).
			Bold(true).
			Align(lipgloss.Center).
			Width(bannerWidth - 2)
)

var statusEmoji = map[models.GhostStatus]string{
	models.StatusDefiniteGhost:  "👻",
	models.StatusLikelyGhost:    "🔍",
	models.StatusSuspicious:     "⚠️",
	models.StatusReviewNeeded:   "📊",
	models.StatusActive:         "✅",
	models.StatusAnalysisFailed: "❌",
}

// DisplayStatus returns the status label with its console emoji
func DisplayStatus(status models.GhostStatus) string {
	if emoji, ok := statusEmoji[status]; ok {
		return emoji + " " + string(status)
	}
	return string(status)
}

// StatusStyle returns the style used to highlight a status tier
func StatusStyle(status models.GhostStatus) lipgloss.Style {
	switch status {
	case models.StatusDefiniteGhost, models.StatusLikelyGhost:
		return GhostStyle
	case models.StatusSuspicious, models.StatusReviewNeeded:
		return WarningStyle
	case models.StatusAnalysisFailed:
		return ErrorStyle
	default:
		return SuccessStyle
	}
}
