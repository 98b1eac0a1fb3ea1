package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asif-merchant/leadintel/internal/config"
	"github.com/asif-merchant/leadintel/internal/database"
	"github.com/asif-merchant/leadintel/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show <lead-id|name>",
	Short: "Show lead details",
	Long: `Show detailed information about a specific lead, including behavior
notes, scoring reasoning and the recommended next action.

The identifier can be:
  - Lead ID
  - Lead name (case-insensitive, partial match)

Examples:
  leadintel show L-1042
  leadintel show "Fatima"`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	identifier := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Try by ID first, then by name
	lead, err := db.GetLead(ctx, identifier)
	if err != nil {
		return fmt.Errorf("database error: %w", err)
	}
	if lead == nil {
		lead, err = db.GetLeadByName(ctx, identifier)
		if err != nil {
			return fmt.Errorf("database error: %w", err)
		}
	}
	if lead == nil {
		return fmt.Errorf("lead not found: %s", identifier)
	}

	if outputFmt == "json" {
		return output.JSON(lead)
	}
	return output.TableTo(os.Stdout, lead)
}
