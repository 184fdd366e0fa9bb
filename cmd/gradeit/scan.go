package cmd

import (
	"fmt"

	"github.com/gradeit/gradeit/pkg/config"
	"github.com/gradeit/gradeit/pkg/data"
	"github.com/gradeit/gradeit/pkg/services"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [image-path or data-uri]",
	Short: "Scan a card image",
	Long:  "Run a card image through recognition, search, pricing and grading, then print the result",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ref := args[0]
		save, _ := cmd.Flags().GetBool("save")

		cfg := config.Load()
		ctrl := services.NewController(cfg)
		scanner := ctrl.Scanner

		// Listen for progress
		go func() {
			for progress := range scanner.GetProgressChannel() {
				if progress.Step != "complete" && progress.Step != "error" {
					fmt.Printf("  %s...\n", progress.Step)
				}
			}
		}()

		id, err := scanner.Scan(ref)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("scan failed: %w", err))
		}

		rec, ok := scanner.Records().Get(id)
		if !ok {
			cobra.CheckErr(fmt.Errorf("scan record %s not found", id))
		}

		if rec.Status == data.StatusFailed {
			fmt.Printf("❌ %s\n", rec.CardName)
			return
		}

		fmt.Printf("\n✅ %s #%s\n", rec.CardName, rec.CardNumber)
		if rec.AIGrade != nil {
			fmt.Printf("   ★ AI Grade: %g\n", *rec.AIGrade)
		} else {
			fmt.Println("   AI Grade: not available")
		}
		fmt.Printf("   eBay Raw:  %s\n", rec.EbayPrice)
		fmt.Printf("   TCGPlayer: %s\n", rec.TCGPrice)
		fmt.Printf("   %s\n", rec.PortfolioLink)

		if save {
			if err := ctrl.Repo.SaveCard(&rec); err != nil {
				cobra.CheckErr(fmt.Errorf("failed to save card: %w", err))
			}
			fmt.Printf("💾 Saved '%s' to collection\n", rec.CardName)
		}
	},
}

func init() {
	scanCmd.Flags().BoolP("save", "s", false, "Save the resolved card to your collection")

	rootCmd.AddCommand(scanCmd)
}
