package styles

import "github.com/charmbracelet/lipgloss"

// Theme is a flat palette. Exactly one theme is active at a time; it is
// chosen at the application root and passed down to every screen, never
// read from global state.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Tint       lipgloss.Color
	TintText   lipgloss.Color
	Border     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Info       lipgloss.Color
}

var themes = map[string]Theme{
	"light": {
		Name:       "Light",
		Background: lipgloss.Color("#FFFFFF"),
		Foreground: lipgloss.Color("#000000"),
		Muted:      lipgloss.Color("#7A7A7A"),
		Tint:       lipgloss.Color("#0281FF"),
		TintText:   lipgloss.Color("#FFFFFF"),
		Border:     lipgloss.Color("#D9D9D9"),
		Success:    lipgloss.Color("#10B981"),
		Warning:    lipgloss.Color("#F59E0B"),
		Error:      lipgloss.Color("#EF4444"),
		Info:       lipgloss.Color("#0281FF"),
	},
	"dark": {
		Name:       "Dark",
		Background: lipgloss.Color("#000000"),
		Foreground: lipgloss.Color("#FFFFFF"),
		Muted:      lipgloss.Color("#8C8C8C"),
		Tint:       lipgloss.Color("#0281FF"),
		TintText:   lipgloss.Color("#FFFFFF"),
		Border:     lipgloss.Color("#333333"),
		Success:    lipgloss.Color("#10B981"),
		Warning:    lipgloss.Color("#F59E0B"),
		Error:      lipgloss.Color("#EF4444"),
		Info:       lipgloss.Color("#82AAFF"),
	},
	"miami": {
		Name:       "Miami",
		Background: lipgloss.Color("#231F20"),
		Foreground: lipgloss.Color("#FFFFFF"),
		Muted:      lipgloss.Color("#8C8C8C"),
		Tint:       lipgloss.Color("#F7B5CD"),
		TintText:   lipgloss.Color("#231F20"),
		Border:     lipgloss.Color("#3A3536"),
		Success:    lipgloss.Color("#10B981"),
		Warning:    lipgloss.Color("#F59E0B"),
		Error:      lipgloss.Color("#EF4444"),
		Info:       lipgloss.Color("#F7B5CD"),
	},
	"vercel": {
		Name:       "Vercel",
		Background: lipgloss.Color("#000000"),
		Foreground: lipgloss.Color("#FFFFFF"),
		Muted:      lipgloss.Color("#8C8C8C"),
		Tint:       lipgloss.Color("#171717"),
		TintText:   lipgloss.Color("#FFFFFF"),
		Border:     lipgloss.Color("#333333"),
		Success:    lipgloss.Color("#10B981"),
		Warning:    lipgloss.Color("#F59E0B"),
		Error:      lipgloss.Color("#EF4444"),
		Info:       lipgloss.Color("#FFFFFF"),
	},
	"hackernews": {
		Name:       "Hacker News",
		Background: lipgloss.Color("#E4E4E4"),
		Foreground: lipgloss.Color("#000000"),
		Muted:      lipgloss.Color("#7A7A7A"),
		Tint:       lipgloss.Color("#ED702D"),
		TintText:   lipgloss.Color("#FFFFFF"),
		Border:     lipgloss.Color("#C9C9C9"),
		Success:    lipgloss.Color("#10B981"),
		Warning:    lipgloss.Color("#F59E0B"),
		Error:      lipgloss.Color("#EF4444"),
		Info:       lipgloss.Color("#ED702D"),
	},
	"wizards": {
		Name:       "Wizards",
		Background: lipgloss.Color("#000000"),
		Foreground: lipgloss.Color("#FFFFFF"),
		Muted:      lipgloss.Color("#8C8C8C"),
		Tint:       lipgloss.Color("#73EC8B"),
		TintText:   lipgloss.Color("#000000"),
		Border:     lipgloss.Color("#333333"),
		Success:    lipgloss.Color("#73EC8B"),
		Warning:    lipgloss.Color("#F59E0B"),
		Error:      lipgloss.Color("#EF4444"),
		Info:       lipgloss.Color("#73EC8B"),
	},
}

// Named returns the theme for a config label, falling back to dark.
func Named(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["dark"]
}

// Names lists the available theme labels.
func Names() []string {
	out := make([]string, 0, len(themes))
	for name := range themes {
		out = append(out, name)
	}
	return out
}
