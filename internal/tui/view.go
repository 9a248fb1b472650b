package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	horizontalPadding = 2
	verticalPadding   = 1
	meterSegments     = 5
)

// StyleSet contains all TUI styles.
type StyleSet struct {
	Title       lipgloss.Style
	Input       lipgloss.Style
	Status      lipgloss.Style
	Warning     lipgloss.Style
	Suggestion  lipgloss.Style
	Help        lipgloss.Style
	ScoreStyles [5]lipgloss.Style
}

// NewStyleSet creates the meter's lipgloss styles.
func NewStyleSet() StyleSet {
	return StyleSet{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Padding(0, verticalPadding),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, verticalPadding).
			Margin(0, verticalPadding),
		Status: lipgloss.NewStyle().
			Padding(verticalPadding, horizontalPadding).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")).
			Padding(0, horizontalPadding),
		Suggestion: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Padding(0, horizontalPadding),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(verticalPadding, horizontalPadding),
		ScoreStyles: [5]lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true),
		},
	}
}

// View implements the Bubble Tea Model interface.
func (m Model) View() string {
	if m.showHelp {
		return m.helpView()
	}

	var parts []string

	parts = append(parts, m.styles.Title.Render("passcheck meter"))
	parts = append(parts, "")
	parts = append(parts, m.styles.Input.Render(m.input.View()))
	parts = append(parts, "")
	parts = append(parts, m.renderStatus())

	if m.result.WarningText != "" {
		parts = append(parts, m.styles.Warning.Render("! "+m.result.WarningText))
	}

	for _, s := range m.result.SuggestionsText {
		parts = append(parts, m.styles.Suggestion.Render("- "+s))
	}

	parts = append(parts, "")
	parts = append(parts, m.help.View(m.keys))

	return strings.Join(parts, "\n")
}

// renderStatus renders the score meter and crack-time line.
func (m Model) renderStatus() string {
	score := m.result.Score
	style := m.styles.ScoreStyles[0]
	if score >= 0 && score < len(m.styles.ScoreStyles) {
		style = m.styles.ScoreStyles[score]
	}

	filled := score + 1
	if filled > meterSegments {
		filled = meterSegments
	}
	if filled < 0 {
		filled = 0
	}

	bar := style.Render(strings.Repeat("■", filled) + strings.Repeat("□", meterSegments-filled))

	status := fmt.Sprintf("%s %d/4  %s  |  crack time (offline, slow hash): %s",
		bar, score, style.Render(m.result.ScoreText), m.result.CrackTimeDisplayOfflineSlowHash)

	return m.styles.Status.Render(status)
}

// helpView renders the full help screen.
func (m Model) helpView() string {
	var parts []string

	parts = append(parts, m.styles.Title.Render("passcheck meter - help"))
	parts = append(parts, "")
	parts = append(parts, m.help.View(m.keys))
	parts = append(parts, "")
	parts = append(parts, m.styles.Help.Render(
		"Type a password to see its live strength. Nothing typed here is "+
			"ever written to disk or sent over the network.\n\nPress ? again to return."))

	return strings.Join(parts, "\n")
}
