package styles

import "github.com/charmbracelet/lipgloss"

var (
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Styles is the rendered style set for one theme. Screens receive a
// *Styles from the root instead of reaching for package globals.
type Styles struct {
	Theme Theme

	// Title style for headings
	Title lipgloss.Style

	// Subtitle style
	Subtitle lipgloss.Style

	// Normal text
	Text lipgloss.Style

	// Muted/dimmed text
	Muted lipgloss.Style

	// Card style
	Card lipgloss.Style

	// Active/focused card
	ActiveCard lipgloss.Style

	// Status styles
	StatusPending  lipgloss.Style
	StatusResolved lipgloss.Style
	StatusFailed   lipgloss.Style

	// Price emphasis
	Price lipgloss.Style

	// Tab styles
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style

	// Help text
	Help lipgloss.Style

	// Input field
	Input        lipgloss.Style
	FocusedInput lipgloss.Style
}

// New builds the style set for a theme.
func New(t Theme) *Styles {
	return &Styles{
		Theme: t,

		Title: lipgloss.NewStyle().
			Foreground(t.Tint).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),

		Text: lipgloss.NewStyle().
			Foreground(t.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(t.Muted),

		Card: lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(t.Border).
			Padding(1, 2).
			MarginBottom(1),

		ActiveCard: lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(t.Tint).
			Padding(1, 2).
			MarginBottom(1),

		StatusPending: lipgloss.NewStyle().
			Foreground(t.Info).
			Bold(true),

		StatusResolved: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),

		StatusFailed: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		Price: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Bold(true),

		ActiveTab: lipgloss.NewStyle().
			Foreground(t.Tint).
			Padding(0, 2).
			Bold(true),

		InactiveTab: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 2),

		Help: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true).
			MarginTop(1),

		Input: lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(t.Border).
			Padding(0, 1),

		FocusedInput: lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(t.Tint).
			Padding(0, 1),
	}
}

// Status maps a scan record status to its style.
func (s *Styles) Status(status string) lipgloss.Style {
	switch status {
	case "pending", "processing":
		return s.StatusPending
	case "resolved", "complete":
		return s.StatusResolved
	case "failed", "error":
		return s.StatusFailed
	default:
		return s.Muted
	}
}
