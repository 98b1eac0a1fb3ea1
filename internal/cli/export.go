package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asif-merchant/leadintel/internal/config"
	"github.com/asif-merchant/leadintel/internal/database"
	"github.com/asif-merchant/leadintel/internal/dataset"
	"github.com/asif-merchant/leadintel/internal/output"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored leads to CSV or JSON",
	Long: `Export the stored scored leads, in original row order.

Supported formats:
  - csv: Comma-separated values (spreadsheet-compatible)
  - json: JSON array of lead objects

Examples:
  leadintel export --format=csv > scored_leads_output.csv
  leadintel export --format=json > leads.json`,
	RunE: runExport,
}

var exportFormat string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Export format (csv, json)")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	leads, err := db.ListLeadsInOrder(ctx)
	if err != nil {
		return fmt.Errorf("failed to list leads: %w", err)
	}

	switch exportFormat {
	case "csv":
		ds := dataset.New(database.RecordColumns...)
		for i := range leads {
			ds.Append(leads[i].ToRecord())
		}
		return dataset.Write(os.Stdout, ds)
	case "json":
		return output.JSON(leads)
	default:
		return fmt.Errorf("unknown format: %s (use csv or json)", exportFormat)
	}
}
