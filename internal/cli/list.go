package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asif-merchant/leadintel/internal/config"
	"github.com/asif-merchant/leadintel/internal/database"
	"github.com/asif-merchant/leadintel/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scored leads",
	Long: `List stored leads with optional filters, highest score first.

Examples:
  leadintel list                      # All leads
  leadintel list --min-score=80       # Hot leads only
  leadintel list --tag=Warm           # Filter by tier
  leadintel list --area="Dubai Marina" --limit=20
  leadintel list -o json`,
	RunE: runList,
}

var (
	listMinScore int
	listTag      string
	listArea     string
	listLimit    int
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listMinScore, "min-score", -1, "Minimum score (0-100)")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Filter by tag (Hot, Warm, Cold)")
	listCmd.Flags().StringVar(&listArea, "area", "", "Filter by project/area tag")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum number of results")
}

func runList(cmd *cobra.Command, args []string) error {
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

	opts := database.ListOptions{
		Limit: listLimit,
	}
	if listMinScore >= 0 {
		opts.MinScore = &listMinScore
	}
	if listTag != "" {
		opts.Tag = &listTag
	}
	if listArea != "" {
		opts.Area = &listArea
	}

	leads, err := db.ListLeads(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list leads: %w", err)
	}

	return output.Output(outputFmt, leads)
}
