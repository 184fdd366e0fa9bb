package cmd

import (
	"fmt"
	"strings"

	"github.com/gradeit/gradeit/pkg/config"
	"github.com/gradeit/gradeit/pkg/data"
	"github.com/gradeit/gradeit/pkg/pokedata"
	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:   "price [card-id or card-name]",
	Short: "Show marketplace prices for a card",
	Long:  "Fetch current marketplace prices for a card by catalog ID, or by name via search",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		byID, _ := cmd.Flags().GetBool("id")

		catalog := pokedata.NewClient(config.Load().APIBaseURL)

		cardID := args[0]
		cardName := cardID
		if !byID {
			query := strings.Join(args, " ")
			results, err := catalog.Search(query)
			if err != nil {
				cobra.CheckErr(fmt.Errorf("search failed: %w", err))
			}
			if len(results) == 0 {
				fmt.Println("❌ No results found.")
				return
			}
			cardID = results[0].ID
			cardName = results[0].Name
		}

		prices, err := catalog.Pricing(cardID)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("failed to get pricing: %w", err))
		}

		fmt.Printf("\n💰 %s\n", cardName)
		fmt.Printf("   eBay Raw:  %s\n", data.FormatPrice(prices[data.MarketplaceEbayRaw]))
		fmt.Printf("   TCGPlayer: %s\n", data.FormatPrice(prices[data.MarketplaceTCGPlayer]))
	},
}

func init() {
	priceCmd.Flags().Bool("id", false, "Treat the argument as a catalog ID instead of a name")

	rootCmd.AddCommand(priceCmd)
}
