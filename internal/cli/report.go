package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/asif-merchant/leadintel/internal/config"
	"github.com/asif-merchant/leadintel/internal/database"
	"github.com/asif-merchant/leadintel/internal/dataset"
	"github.com/asif-merchant/leadintel/internal/output"
	"github.com/asif-merchant/leadintel/internal/pdf"
	"github.com/asif-merchant/leadintel/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a campaign intelligence report",
	Long: `Build report content for a filtered slice of stored leads and render
it as a PDF. With --preview the content is printed instead of rendered.

Examples:
  leadintel report                              # defaults from config
  leadintel report --top-n=50 --min-score=80
  leadintel report --area="Business Bay" --file=gm_report.pdf
  leadintel report --preview                    # text preview, no PDF`,
	RunE: runReport,
}

var (
	reportTopN     int
	reportMinScore int
	reportTag      string
	reportArea     string
	reportTitle    string
	reportFile     string
	reportPreview  bool
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().IntVar(&reportTopN, "top-n", 0, "Leaderboard size (from config menu, e.g. 10, 25, 50, 100)")
	reportCmd.Flags().IntVar(&reportMinScore, "min-score", -1, "Minimum score filter (default: config report.min_score)")
	reportCmd.Flags().StringVar(&reportTag, "tag", "", "Filter by tag (Hot, Warm, Cold)")
	reportCmd.Flags().StringVar(&reportArea, "area", "", "Filter by project/area tag")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "Report title (default: config report.title)")
	reportCmd.Flags().StringVar(&reportFile, "file", "", "Output PDF path (default: GM_Report_<timestamp>.pdf)")
	reportCmd.Flags().BoolVar(&reportPreview, "preview", false, "Print report content instead of rendering a PDF")
}

func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	topN := reportTopN
	if topN == 0 {
		topN = cfg.Report.TopN
	}
	if !cfg.Report.TopNAllowed(topN) {
		return fmt.Errorf("top-n %d is not one of the configured choices %v", topN, cfg.Report.TopNChoices)
	}

	minScore := reportMinScore
	if minScore < 0 {
		minScore = cfg.Report.MinScore
	}

	title := reportTitle
	if title == "" {
		title = cfg.Report.Title
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	opts := database.ListOptions{MinScore: &minScore}
	if reportTag != "" {
		opts.Tag = &reportTag
	}
	if reportArea != "" {
		opts.Area = &reportArea
	}

	leads, err := db.ListLeads(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to list leads: %w", err)
	}

	rows := make([]dataset.Record, 0, len(leads))
	for i := range leads {
		rows = append(rows, leads[i].ToRecord())
	}

	content, err := report.Build(rows, topN, title, time.Now())
	if errors.Is(err, report.ErrNoLeads) {
		fmt.Println("No leads match the current filters; nothing to report.")
		return nil
	}
	if err != nil {
		return err
	}

	if reportPreview {
		return output.Output(outputFmt, content)
	}

	data, err := pdf.Generate(content)
	if err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}

	path := reportFile
	if path == "" {
		path = fmt.Sprintf("GM_Report_%s.pdf", time.Now().UTC().Format("20060102_1504"))
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("Report written to %s (%d leads, top %d)\n", path, content.Total, len(content.Leaderboard))
	return nil
}
