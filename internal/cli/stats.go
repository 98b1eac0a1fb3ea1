package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asif-merchant/leadintel/internal/config"
	"github.com/asif-merchant/leadintel/internal/database"
	"github.com/asif-merchant/leadintel/internal/dataset"
	"github.com/asif-merchant/leadintel/internal/output"
	"github.com/asif-merchant/leadintel/internal/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lead statistics",
	Long: `Display aggregate statistics about the stored leads.

Examples:
  leadintel stats             # Tier counts and score summary
  leadintel stats --areas     # Include area/project distribution
  leadintel stats -o json`,
	RunE: runStats,
}

var statsAreas bool

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsAreas, "areas", false, "Include the area/project distribution")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	stats, err := db.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	if !statsAreas {
		return output.Output(outputFmt, stats)
	}

	leads, err := db.ListLeadsInOrder(ctx)
	if err != nil {
		return fmt.Errorf("failed to list leads: %w", err)
	}

	rows := make([]dataset.Record, 0, len(leads))
	for i := range leads {
		rows = append(rows, leads[i].ToRecord())
	}
	dist := report.AreaDistribution(rows)

	if outputFmt == "json" {
		data := struct {
			Stats *database.Stats    `json:"stats"`
			Areas []report.AreaCount `json:"areas"`
		}{Stats: stats, Areas: dist}
		return output.JSON(data)
	}

	if err := output.Table(stats); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Areas / Projects")
	fmt.Println(strings.Repeat("-", 30))
	for _, area := range dist {
		fmt.Printf("  %-28s %d\n", area.Area, area.Count)
	}
	return nil
}
