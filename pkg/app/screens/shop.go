package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gradeit/gradeit/pkg/app/styles"
	"github.com/gradeit/gradeit/pkg/data"
	"github.com/gradeit/gradeit/pkg/pokedata"
)

// ShopScreen searches the card catalog and shows live marketplace
// pricing for a selected result.
type ShopScreen struct {
	catalog   pokedata.Catalog
	styles    *styles.Styles
	input     textinput.Model
	results   []data.Card
	prices    map[string][2]string // card id -> (ebay, tcg), formatted
	selected  int
	searching bool
	width     int
	height    int
	err       error
}

func NewShopScreen(catalog pokedata.Catalog, s *styles.Styles) *ShopScreen {
	ti := textinput.New()
	ti.Placeholder = "Search cards..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return &ShopScreen{
		catalog: catalog,
		styles:  s,
		input:   ti,
		results: []data.Card{},
		prices:  map[string][2]string{},
	}
}

func (s *ShopScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *ShopScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.searching {
			return s, nil
		}

		switch msg.String() {
		case "enter":
			if s.input.Focused() {
				query := s.input.Value()
				if query != "" {
					s.searching = true
					return s, s.performSearch(query)
				}
			} else if len(s.results) > 0 {
				card := s.results[s.selected]
				return s, s.fetchPricing(card.ID)
			}

		case "esc":
			if s.input.Focused() {
				s.input.Blur()
			} else {
				s.input.Focus()
				cmd = textinput.Blink
			}

		case "up", "k":
			if !s.input.Focused() && len(s.results) > 0 {
				s.selected--
				if s.selected < 0 {
					s.selected = len(s.results) - 1
				}
			}

		case "down", "j":
			if !s.input.Focused() && len(s.results) > 0 {
				s.selected++
				if s.selected >= len(s.results) {
					s.selected = 0
				}
			}
		}

	case shopResultsMsg:
		s.searching = false
		s.results = msg.results
		s.selected = 0
		s.prices = map[string][2]string{}
		s.err = msg.err
		if len(s.results) > 0 {
			s.input.Blur()
		}

	case pricingMsg:
		if msg.err != nil {
			s.err = msg.err
		} else {
			s.prices[msg.cardID] = [2]string{msg.ebay, msg.tcg}
		}
	}

	if s.input.Focused() {
		s.input, cmd = s.input.Update(msg)
	}

	return s, cmd
}

func (s *ShopScreen) InputFocused() bool {
	return s.input.Focused()
}

func (s *ShopScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := s.styles.Title.Render("🛍 Shop")

	inputStyle := s.styles.Input
	if s.input.Focused() {
		inputStyle = s.styles.FocusedInput
	}
	inputView := inputStyle.Render(s.input.View())

	var errorMsg string
	if s.err != nil {
		errorMsg = s.styles.StatusFailed.Render(fmt.Sprintf("Error: %s", s.err))
		errorMsg += "\n\n"
	}

	var resultsView string
	if s.searching {
		resultsView = s.styles.StatusPending.Render("Searching...")
	} else if len(s.results) > 0 {
		resultsView = s.renderResults()
	} else if s.input.Value() != "" && !s.searching {
		resultsView = s.styles.Muted.Render("No results found")
	}

	help := s.styles.Help.Render(
		"enter: search/get pricing • esc: switch focus • ↑/k ↓/j: navigate • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s%s\n\n%s",
		header, inputView, errorMsg, resultsView, help)
}

func (s *ShopScreen) renderResults() string {
	var result string
	result += s.styles.Subtitle.Render(fmt.Sprintf("Found %d results:", len(s.results)))
	result += "\n\n"

	for i, card := range s.results {
		cardStyle := s.styles.Card
		if i == s.selected && !s.input.Focused() {
			cardStyle = s.styles.ActiveCard
		}

		title := s.styles.Title.Render(card.Name)
		id := s.styles.Muted.Render(fmt.Sprintf("ID: %s", card.ID))

		lines := []string{title}
		if card.Number != "" {
			lines = append(lines, s.styles.Muted.Render(fmt.Sprintf("#%s", card.Number)))
		}
		lines = append(lines, id)

		if p, ok := s.prices[card.ID]; ok {
			lines = append(lines,
				s.styles.Muted.Render("eBay Last Sold: ")+s.styles.Price.Render(p[0])+
					s.styles.Muted.Render("   TCG Price: ")+s.styles.Price.Render(p[1]))
		}

		cardContent := lipgloss.JoinVertical(lipgloss.Left, lines...)
		result += cardStyle.Width(s.width - 6).Render(cardContent) + "\n"
	}

	return result
}

// Messages
type shopResultsMsg struct {
	results []data.Card
	err     error
}

type pricingMsg struct {
	cardID string
	ebay   string
	tcg    string
	err    error
}

// Commands
func (s *ShopScreen) performSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := s.catalog.Search(query)
		return shopResultsMsg{results: results, err: err}
	}
}

func (s *ShopScreen) fetchPricing(cardID string) tea.Cmd {
	return func() tea.Msg {
		prices, err := s.catalog.Pricing(cardID)
		if err != nil {
			return pricingMsg{cardID: cardID, err: err}
		}
		return pricingMsg{
			cardID: cardID,
			ebay:   data.FormatPrice(prices[data.MarketplaceEbayRaw]),
			tcg:    data.FormatPrice(prices[data.MarketplaceTCGPlayer]),
		}
	}
}
