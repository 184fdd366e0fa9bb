package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gradeit/gradeit/pkg/app/styles"
	"github.com/gradeit/gradeit/pkg/data"
)

// CardList renders the ordered scan records: a loading placeholder while
// a record is pending, full details once resolved, the failure sentinel
// otherwise.
type CardList struct {
	Items         []data.ScanRecord
	SelectedIndex int
	Width         int
	Height        int

	styles *styles.Styles
}

func NewCardList(s *styles.Styles) *CardList {
	return &CardList{
		Items:  []data.ScanRecord{},
		Width:  80,
		Height: 20,
		styles: s,
	}
}

// SetItems replaces the list contents, clamping the selection.
func (c *CardList) SetItems(items []data.ScanRecord) {
	c.Items = items
	if c.SelectedIndex >= len(items) && len(items) > 0 {
		c.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		c.SelectedIndex = 0
	}
}

func (c *CardList) Next() {
	if len(c.Items) == 0 {
		return
	}
	c.SelectedIndex++
	if c.SelectedIndex >= len(c.Items) {
		c.SelectedIndex = 0
	}
}

func (c *CardList) Prev() {
	if len(c.Items) == 0 {
		return
	}
	c.SelectedIndex--
	if c.SelectedIndex < 0 {
		c.SelectedIndex = len(c.Items) - 1
	}
}

// SelectLast moves the selection to the newest record, so a fresh scan
// scrolls into view.
func (c *CardList) SelectLast() {
	if len(c.Items) > 0 {
		c.SelectedIndex = len(c.Items) - 1
	}
}

func (c *CardList) Selected() *data.ScanRecord {
	if len(c.Items) == 0 || c.SelectedIndex >= len(c.Items) {
		return nil
	}
	return &c.Items[c.SelectedIndex]
}

func (c *CardList) View() string {
	if len(c.Items) == 0 {
		emptyMsg := c.styles.Muted.Render("No cards scanned yet")
		return lipgloss.Place(c.Width, c.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	for i, rec := range c.Items {
		cardStyle := c.styles.Card
		if i == c.SelectedIndex {
			cardStyle = c.styles.ActiveCard
		}

		header := c.styles.Title.Render(fmt.Sprintf("Card %d", i+1))
		date := c.styles.Muted.Render(rec.ScannedAt.Format("Jan 2, 2006 15:04"))

		var body string
		switch rec.Status {
		case data.StatusPending:
			body = c.styles.StatusPending.Render("Processing card...")
		case data.StatusFailed:
			body = c.styles.StatusFailed.Render(rec.CardName)
		default:
			body = c.renderDetails(rec)
		}

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			date,
			"",
			body,
		)

		card := cardStyle.Width(c.Width - 4).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}

func (c *CardList) renderDetails(rec data.ScanRecord) string {
	name := c.styles.Text.Render(rec.CardName)
	if rec.CardNumber != "" {
		name += c.styles.Muted.Render(fmt.Sprintf("  #%s", rec.CardNumber))
	}

	grade := c.styles.Muted.Render("AI Grade: not available")
	if rec.AIGrade != nil {
		grade = c.styles.StatusResolved.Render(fmt.Sprintf("★ AI Grade: %g", *rec.AIGrade))
	}

	prices := c.styles.Muted.Render("eBay Last Sold: ") + c.styles.Price.Render(rec.EbayPrice) +
		c.styles.Muted.Render("   TCG Price: ") + c.styles.Price.Render(rec.TCGPrice)

	link := c.styles.Muted.Render(rec.PortfolioLink)

	return lipgloss.JoinVertical(lipgloss.Left, name, grade, prices, link)
}
