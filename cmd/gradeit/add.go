package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gradeit/gradeit/pkg/config"
	"github.com/gradeit/gradeit/pkg/data"
	"github.com/gradeit/gradeit/pkg/pokedata"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [card-name]",
	Short: "Add a card to your collection",
	Long:  "Search the catalog for a card and add the best match to your collection with current prices",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		cfg := config.Load()
		catalog := pokedata.NewClient(cfg.APIBaseURL)
		repo := data.NewDuckDBRepository(cfg.DBPath)

		fmt.Printf("🔍 Searching for '%s'...\n", query)

		results, err := catalog.Search(query)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("search failed: %w", err))
		}

		if len(results) == 0 {
			fmt.Println("❌ No results found.")
			return
		}

		// Take the first result
		card := results[0]
		fmt.Printf("✅ Found: %s (ID: %s)\n", card.Name, card.ID)

		prices, err := catalog.Pricing(card.ID)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to get pricing: %w", err))
		}

		rec := data.ScanRecord{
			ID:            uuid.NewString(),
			CardName:      card.Name,
			CardNumber:    card.Number,
			EbayPrice:     data.FormatPrice(prices[data.MarketplaceEbayRaw]),
			TCGPrice:      data.FormatPrice(prices[data.MarketplaceTCGPlayer]),
			PortfolioLink: fmt.Sprintf("%s/portfolio/%s", cfg.PortfolioBaseURL, card.ID),
			ScannedAt:     time.Now(),
			Status:        data.StatusResolved,
		}
		if err := repo.SaveCard(&rec); err != nil {
			cobra.CheckErr(fmt.Errorf("failed to save card: %w", err))
		}

		fmt.Printf("✅ Added '%s' to collection (eBay Raw: %s, TCGPlayer: %s)\n", card.Name, rec.EbayPrice, rec.TCGPrice)
		fmt.Printf("💡 To grade a physical copy, use: gradeit scan <image> --save\n")
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
