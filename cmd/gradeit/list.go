package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/gradeit/gradeit/pkg/config"
	"github.com/gradeit/gradeit/pkg/data"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cards in your collection",
	Long:  "Display all saved cards in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		repo := data.NewDuckDBRepository(config.Load().DBPath)
		cards, err := repo.ListCards()
		if err != nil {
			cobra.CheckErr(err)
		}

		if len(cards) == 0 {
			fmt.Println("🃏 No cards in collection. Use 'gradeit scan --save' to add one.")
			return
		}

		// Create table columns
		columns := []table.Column{
			{Title: "Name", Width: 32},
			{Title: "No.", Width: 6},
			{Title: "Grade", Width: 7},
			{Title: "eBay Raw", Width: 10},
			{Title: "TCGPlayer", Width: 10},
			{Title: "Scanned", Width: 12},
		}

		rows := []table.Row{}
		for _, card := range cards {
			grade := "—"
			if card.AIGrade != nil {
				grade = fmt.Sprintf("%g", *card.AIGrade)
			}

			rows = append(rows, table.Row{
				truncateString(card.CardName, 30),
				card.CardNumber,
				grade,
				card.EbayPrice,
				card.TCGPrice,
				card.ScannedAt.Format("2006-01-02"),
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n🃏 Collection (%d cards)\n\n", len(cards))
		fmt.Println(t.View())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
