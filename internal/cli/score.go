package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asif-merchant/leadintel/internal/config"
	"github.com/asif-merchant/leadintel/internal/database"
	"github.com/asif-merchant/leadintel/internal/dataset"
	"github.com/asif-merchant/leadintel/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score <input.csv>",
	Short: "Score a campaign CSV",
	Long: `Score a raw campaign CSV and persist the scored leads.

An input that already carries a score column is treated as pre-scored and
stored as-is, without rescoring.

Examples:
  leadintel score campaign.csv                    # writes scored_leads_output.csv
  leadintel score campaign.csv --out scored.csv
  leadintel score scored_leads_output.csv         # pre-scored, stored unchanged`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

var (
	scoreOutPath string
	scoreNoSave  bool
)

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringVar(&scoreOutPath, "out", "scored_leads_output.csv", "Write the scored CSV to this path (empty to skip)")
	scoreCmd.Flags().BoolVar(&scoreNoSave, "no-save", false, "Skip persisting scored leads to the database")
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ds, err := dataset.ReadFile(args[0])
	if err != nil {
		return err
	}

	preScored := ds.HasColumn(scoring.ColScore)
	scored := scoring.ScoreDataset(ds)

	if preScored {
		fmt.Printf("Input already contains scores; keeping %d leads as-is.\n", scored.Len())
	} else {
		fmt.Printf("Scored %d leads.\n", scored.Len())
	}

	if scoreOutPath != "" {
		if err := dataset.WriteFile(scoreOutPath, scored); err != nil {
			return err
		}
		fmt.Printf("Wrote scored CSV to %s\n", scoreOutPath)
	}

	if scoreNoSave {
		return nil
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	leads := make([]database.Lead, 0, scored.Len())
	for _, row := range scored.Rows {
		leads = append(leads, database.FromRecord(row))
	}

	if err := db.ReplaceLeads(ctx, leads); err != nil {
		return fmt.Errorf("failed to save leads: %w", err)
	}

	fmt.Printf("Saved %d leads to %s\n", len(leads), cfg.Database.Path)
	return nil
}
