package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gradeit/gradeit/pkg/app/components"
	"github.com/gradeit/gradeit/pkg/app/styles"
	"github.com/gradeit/gradeit/pkg/charts"
	"github.com/gradeit/gradeit/pkg/data"
)

// StoreScreen is the seller profile: level and XP, verification ring,
// revenue sparkline and active listings.
type StoreScreen struct {
	repo        *data.Repository
	styles      *styles.Styles
	stats       *data.StoreStats
	sales       []*data.Listing
	listings    []*data.Listing
	selected    int
	vaultedOnly bool
	width       int
	height      int
	err         error
}

func NewStoreScreen(repo *data.Repository, s *styles.Styles) *StoreScreen {
	return &StoreScreen{repo: repo, styles: s}
}

func (s *StoreScreen) Init() tea.Cmd {
	return s.loadStore
}

func (s *StoreScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.listings)-1 {
				s.selected++
			}
		case "v":
			s.vaultedOnly = !s.vaultedOnly
			return s, s.loadStore
		case "r":
			return s, s.loadStore
		}

	case storeLoadedMsg:
		s.stats = msg.stats
		s.sales = msg.sales
		s.listings = msg.listings
		s.err = msg.err
		if s.selected >= len(s.listings) {
			s.selected = 0
		}
	}

	return s, nil
}

func (s *StoreScreen) View() string {
	if s.width == 0 || s.stats == nil {
		return "Loading..."
	}

	header := s.styles.Title.Render("🏪 My Store")

	var errorMsg string
	if s.err != nil {
		errorMsg = s.styles.StatusFailed.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	stats := s.renderStats()
	graph := s.renderPortfolio()
	listings := s.renderListings()

	help := s.styles.Help.Render(
		"↑/k ↓/j: navigate • v: vaulted only • r: refresh • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s\n%s\n%s\n%s",
		header, errorMsg, stats, graph, listings, help)
}

func (s *StoreScreen) renderStats() string {
	level := s.styles.Title.Render(fmt.Sprintf("Lv %d", s.stats.Level))
	ring := components.RingBadge(s.stats.SalesCount)

	xpBar := renderXPBar(s.stats.CurrentXP, s.stats.XPToNextLevel, 24)
	xp := s.styles.Muted.Render(fmt.Sprintf("%d / %d XP", s.stats.CurrentXP, s.stats.XPToNextLevel))

	totals := s.styles.Text.Render(fmt.Sprintf("%d sales • %s revenue",
		s.stats.SalesCount, data.FormatPrice(s.stats.TotalRevenue)))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, level, "  ", ring),
		xpBar+"  "+xp,
		totals,
	)
	return s.styles.Card.Width(s.width - 4).Render(content)
}

func (s *StoreScreen) renderPortfolio() string {
	if len(s.sales) == 0 {
		return s.styles.Muted.Render("No sales yet")
	}

	points := make([]charts.Point, len(s.sales))
	total := 0.0
	values := make([]float64, len(s.sales))
	for i, sale := range s.sales {
		total += sale.Price
		points[i] = charts.Point{X: float64(i), Y: total}
		values[i] = total
	}

	change := charts.ChangePercent(points)
	arrow := "▲"
	changeStyle := s.styles.StatusResolved
	if change < 0 {
		arrow = "▼"
		changeStyle = s.styles.StatusFailed
	}

	title := s.styles.Subtitle.Render("Portfolio Growth")
	line := s.styles.Text.Render(charts.Sparkline(values))
	summary := s.styles.Price.Render(data.FormatPrice(total)) + "  " +
		changeStyle.Render(fmt.Sprintf("%s %.1f%%", arrow, abs(change)))

	content := lipgloss.JoinVertical(lipgloss.Left, title, line, summary)
	return s.styles.Card.Width(s.width - 4).Render(content)
}

func (s *StoreScreen) renderListings() string {
	if len(s.listings) == 0 {
		return s.styles.Muted.Render("No active listings")
	}

	var b strings.Builder
	b.WriteString(s.styles.Subtitle.Render(fmt.Sprintf("Listings (%d):", len(s.listings))))
	b.WriteString("\n")

	for i, l := range s.listings {
		vault := "○"
		vaultStyle := s.styles.Muted
		if l.VaultingStatus == "vaulted" {
			vault = "●"
			vaultStyle = s.styles.StatusResolved
		}

		line := fmt.Sprintf("%s %s — %s", vault, l.CardName, data.FormatPrice(l.Price))
		if l.BidCount > 0 {
			line += fmt.Sprintf("  (bid %s × %d)", data.FormatPrice(l.CurrentBid), l.BidCount)
		}

		if i == s.selected {
			b.WriteString(s.styles.ActiveTab.Render(line))
		} else {
			b.WriteString(vaultStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderXPBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}
	filled := current * width / total
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Messages
type storeLoadedMsg struct {
	stats    *data.StoreStats
	sales    []*data.Listing
	listings []*data.Listing
	err      error
}

// Commands
func (s *StoreScreen) loadStore() tea.Msg {
	stats, err := s.repo.StoreStats()
	if err != nil {
		return storeLoadedMsg{err: err}
	}
	sales, err := s.repo.Sales()
	if err != nil {
		return storeLoadedMsg{stats: stats, err: err}
	}
	listings, err := s.repo.ListListings(s.vaultedOnly)
	if err != nil {
		return storeLoadedMsg{stats: stats, sales: sales, err: err}
	}
	return storeLoadedMsg{stats: stats, sales: sales, listings: listings}
}
