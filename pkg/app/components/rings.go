package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/gradeit/gradeit/pkg/data"
)

// RingBadge renders the seller's verification ring for a sales count.
// Below the bronze threshold there is no ring at all.
func RingBadge(salesCount int) string {
	tier, ok := data.TierFor(salesCount)
	if !ok {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(tier.Color)).Bold(true)
	return style.Render(fmt.Sprintf("◎ %s seller", tier.Name))
}
