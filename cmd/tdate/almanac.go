package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/toozej/tdate/internal/app"
)

var (
	almanacMonth  string
	almanacOutput string
)

var almanacCmd = &cobra.Command{
	Use:   "almanac",
	Short: "Render a month of Thelemic dates as a table",
	Long: `Render one row per day of a month, computed at local noon for the
chosen location: civil date, solar and lunar positions, dies and Anno.`,
	Args: cobra.ExactArgs(0),
	Run:  runAlmanacCommand,
}

func init() {
	rootCmd.AddCommand(almanacCmd)
	almanacCmd.Flags().StringVarP(&almanacMonth, "month", "m", "", "Month to render as YYYY-MM (default: current month)")
	almanacCmd.Flags().StringVarP(&almanacOutput, "output", "o", "", "File to write the table to (default: stdout)")
}

func runAlmanacCommand(cmd *cobra.Command, args []string) {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if almanacMonth != "" {
		parsed, err := time.Parse("2006-01", almanacMonth)
		if err != nil {
			fmt.Printf("invalid month %q, expected YYYY-MM\n", almanacMonth)
			os.Exit(1)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	fs := afero.NewOsFs()
	resolver, err := app.NewResolver(fs, conf, noCache)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := app.Almanac(fs, os.Stdout, resolver, year, month, conf.Location, almanacOutput); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
