package cmd

import (
	"fmt"
	"os"

	"github.com/gradeit/gradeit/pkg/charts"
	"github.com/gradeit/gradeit/pkg/config"
	"github.com/gradeit/gradeit/pkg/data"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output.svg]",
	Short: "Export your sales chart as SVG",
	Long:  "Render the cumulative sales value of your store as an SVG chart",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		output := args[0]
		color, _ := cmd.Flags().GetString("color")

		repo := data.NewDuckDBRepository(config.Load().DBPath)
		sales, err := repo.Sales()
		if err != nil {
			cobra.CheckErr(err)
		}

		if len(sales) == 0 {
			fmt.Println("📈 No sales yet, nothing to export.")
			return
		}

		points := make([]charts.Point, 0, len(sales))
		var total float64
		for _, sale := range sales {
			total += sale.Price
			points = append(points, charts.Point{X: float64(len(points)), Y: total})
		}

		svg := charts.SVG(points, 800, 300, color)
		if err := os.WriteFile(output, []byte(svg), 0o644); err != nil {
			cobra.CheckErr(fmt.Errorf("failed to write SVG: %w", err))
		}

		fmt.Printf("📈 Exported %d sales to %s\n", len(sales), output)
	},
}

func init() {
	exportCmd.Flags().String("color", "#16A34A", "Line color for the chart")

	rootCmd.AddCommand(exportCmd)
}
