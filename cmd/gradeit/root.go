package cmd

import (
	"os"

	"github.com/gradeit/gradeit/pkg/app"
	"github.com/gradeit/gradeit/pkg/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gradeit",
	Short: "Scan, grade and price trading cards",
	Long:  "Scan trading cards, fetch live marketplace prices and AI grades, and manage your collection with a TUI and CLI",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		a := app.NewApp(config.Load())
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
