package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/asif-merchant/leadintel/internal/database"
	"github.com/asif-merchant/leadintel/internal/report"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case []database.Lead:
		return leadsTable(w, v)
	case *database.Lead:
		return leadDetail(w, v)
	case *database.Stats:
		return statsTable(w, v)
	case *report.Content:
		return contentPreview(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func leadsTable(w io.Writer, leads []database.Lead) error {
	if len(leads) == 0 {
		fmt.Fprintln(w, "No leads found.")
		return nil
	}

	tw := tablewriter.NewWriter(w)
	tw.Header("ID", "Name", "Location", "Areas", "Budget", "Score", "Tag")

	for _, l := range leads {
		budget := l.BudgetMin
		if l.BudgetMax != "" {
			budget += " - " + l.BudgetMax
		}
		if err := tw.Append([]string{
			truncate(l.LeadID, 12),
			truncate(l.Name, 24),
			truncate(l.Location, 18),
			truncate(l.Areas, 28),
			budget,
			strconv.Itoa(l.Score),
			l.Tag,
		}); err != nil {
			return err
		}
	}

	return tw.Render()
}

func leadDetail(w io.Writer, l *database.Lead) error {
	fmt.Fprintf(w, "%s — %s\n", l.Name, l.Location)
	fmt.Fprintf(w, "Score:       %d — %s\n", l.Score, l.Tag)
	fmt.Fprintf(w, "ID:          %s\n", l.LeadID)

	if l.Device != "" {
		fmt.Fprintf(w, "Device:      %s\n", l.Device)
	}
	if l.Platforms != "" {
		fmt.Fprintf(w, "Platforms:   %s\n", l.Platforms)
	}
	if l.Areas != "" {
		fmt.Fprintf(w, "Areas:       %s\n", l.Areas)
	}
	if l.LastSeenDays != "" {
		fmt.Fprintf(w, "Last seen:   %s days ago\n", l.LastSeenDays)
	}
	if l.SearchesLast7d != "" {
		fmt.Fprintf(w, "Searches 7d: %s\n", l.SearchesLast7d)
	}
	if l.BudgetMin != "" || l.BudgetMax != "" {
		fmt.Fprintf(w, "Budget:      %s - %s\n", l.BudgetMin, l.BudgetMax)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Behavior:")
	notes := l.BehaviorNotes()
	if len(notes) == 0 {
		fmt.Fprintln(w, "  - (no behavior details)")
	}
	for _, note := range notes {
		fmt.Fprintf(w, "  - %s\n", note)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Reasoning:   %s\n", l.Reasoning)
	fmt.Fprintf(w, "Next action: %s\n", l.NextAction)

	return nil
}

func statsTable(w io.Writer, s *database.Stats) error {
	fmt.Fprintln(w, "Lead Statistics")
	fmt.Fprintln(w, strings.Repeat("-", 30))
	fmt.Fprintf(w, "Total leads:   %d\n", s.TotalLeads)
	fmt.Fprintf(w, "Hot:           %d\n", s.Hot)
	fmt.Fprintf(w, "Warm:          %d\n", s.Warm)
	fmt.Fprintf(w, "Cold:          %d\n", s.Cold)

	if s.TotalLeads > 0 {
		fmt.Fprintf(w, "Average score: %.1f\n", s.AvgScore)
		fmt.Fprintf(w, "Top score:     %d\n", s.MaxScore)
	}

	return nil
}

// contentPreview renders report content as text tables, mirroring the
// sections of the PDF document.
func contentPreview(w io.Writer, c *report.Content) error {
	fmt.Fprintln(w, c.Title)
	fmt.Fprintf(w, "Generated: %s\n", c.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Summary: Total leads: %d — Hot: %d — Warm: %d — Cold: %d\n",
		c.Total, c.HotCount, c.WarmCount, c.ColdCount)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Top Projects / Areas")
	at := tablewriter.NewWriter(w)
	at.Header("Project/Area", "Leads")
	for _, area := range c.Areas {
		if err := at.Append([]string{area.Area, strconv.Itoa(area.Count)}); err != nil {
			return err
		}
	}
	if err := at.Render(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Recommendations")
	for _, rec := range c.Recommendations {
		fmt.Fprintf(w, "  - %s\n", rec)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Top leads (by score)")
	lt := tablewriter.NewWriter(w)
	lt.Header("ID", "Name", "Location", "Score", "Tag", "Next Action")
	for _, entry := range c.Leaderboard {
		if err := lt.Append([]string{
			truncate(entry.LeadID, 12),
			truncate(entry.Name, 24),
			truncate(entry.Location, 18),
			strconv.Itoa(entry.Score),
			entry.Tag,
			truncate(entry.NextAction, 48),
		}); err != nil {
			return err
		}
	}
	return lt.Render()
}

// truncate shortens s to max runes, never splitting a multibyte character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
