// Package pdf renders campaign intelligence report content into a
// self-contained PDF using maroto/v2. It consumes the structured content
// produced by the report builder and owns all layout decisions.
package pdf

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/asif-merchant/leadintel/internal/report"
)

// ── Colour palette ──────────────────────────────────────────────────────

var (
	colorAccent    = &props.Color{Red: 14, Green: 165, Blue: 164}   // teal
	colorPrimary   = &props.Color{Red: 17, Green: 24, Blue: 39}     // near-black
	colorSecondary = &props.Color{Red: 107, Green: 114, Blue: 128}  // gray-500
	colorTableAlt  = &props.Color{Red: 245, Green: 245, Blue: 245}  // whitesmoke
	colorBorder    = &props.Color{Red: 226, Green: 232, Blue: 240}  // slate-200
	colorWhite     = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// Generate renders report content into PDF bytes.
func Generate(content *report.Content) ([]byte, error) {
	cfg := config.NewBuilder().
		WithLeftMargin(13).
		WithTopMargin(13).
		WithRightMargin(13).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(buildFooter(content)); err != nil {
		return nil, fmt.Errorf("register footer: %w", err)
	}

	m.AddRows(buildHeader(content)...)
	m.AddRows(row.New(4))

	m.AddRows(buildSummary(content))
	m.AddRows(row.New(4))

	m.AddRows(buildAreaTable(content)...)
	m.AddRows(row.New(4))

	m.AddRows(buildRecommendations(content)...)
	m.AddRows(row.New(4))

	m.AddRows(buildLeaderboard(content)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// ── Header ──────────────────────────────────────────────────────────────

func buildHeader(content *report.Content) []core.Row {
	return []core.Row{
		row.New(12).Add(
			col.New(12).Add(text.New(content.Title, props.Text{
				Size:  18,
				Style: fontstyle.Bold,
				Color: colorAccent,
			})),
		),
		row.New(6).Add(
			col.New(12).Add(text.New(
				"Generated: "+content.GeneratedAt.UTC().Format("2006-01-02 15:04 UTC"),
				props.Text{Size: 9, Color: colorSecondary},
			)),
		),
	}
}

// ── Summary line ────────────────────────────────────────────────────────

func buildSummary(content *report.Content) core.Row {
	summary := fmt.Sprintf("Summary: Total leads: %d — Hot: %d — Warm: %d — Cold: %d",
		content.Total, content.HotCount, content.WarmCount, content.ColdCount)
	return row.New(7).Add(
		col.New(12).Add(text.New(summary, props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Color: colorPrimary,
			Top:   1,
		})),
	)
}

// ── Area distribution table ─────────────────────────────────────────────

func buildAreaTable(content *report.Content) []core.Row {
	rows := []core.Row{
		sectionTitle("Top Projects / Areas"),
		row.New(6).Add(
			col.New(8).Add(text.New("Project/Area", tableHeaderStyle(align.Left))),
			col.New(4).Add(text.New("Leads", tableHeaderStyle(align.Right))),
		).WithStyle(headerCellStyle()),
	}

	for i, area := range content.Areas {
		r := row.New(6).Add(
			col.New(8).Add(text.New(area.Area, cellStyle(align.Left))),
			col.New(4).Add(text.New(strconv.Itoa(area.Count), cellStyle(align.Right))),
		)
		if i%2 == 0 {
			r.WithStyle(&props.Cell{BackgroundColor: colorTableAlt})
		}
		rows = append(rows, r)
	}

	return rows
}

// ── Recommendations ─────────────────────────────────────────────────────

func buildRecommendations(content *report.Content) []core.Row {
	rows := []core.Row{sectionTitle("Recommendations")}
	for _, rec := range content.Recommendations {
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(text.New("• "+rec, props.Text{
				Size:  9,
				Color: colorPrimary,
				Top:   1,
			})),
		))
	}
	return rows
}

// ── Top leads table ─────────────────────────────────────────────────────

func buildLeaderboard(content *report.Content) []core.Row {
	rows := []core.Row{
		sectionTitle("Top leads (by score)"),
		row.New(6).Add(
			col.New(1).Add(text.New("ID", tableHeaderStyle(align.Left))),
			col.New(2).Add(text.New("Name", tableHeaderStyle(align.Left))),
			col.New(2).Add(text.New("Location", tableHeaderStyle(align.Left))),
			col.New(1).Add(text.New("Score", tableHeaderStyle(align.Right))),
			col.New(1).Add(text.New("Tag", tableHeaderStyle(align.Left))),
			col.New(5).Add(text.New("Next Action", tableHeaderStyle(align.Left))),
		).WithStyle(headerCellStyle()),
	}

	for i, entry := range content.Leaderboard {
		r := row.New(8).Add(
			col.New(1).Add(text.New(entry.LeadID, cellStyle(align.Left))),
			col.New(2).Add(text.New(entry.Name, cellStyle(align.Left))),
			col.New(2).Add(text.New(entry.Location, cellStyle(align.Left))),
			col.New(1).Add(text.New(strconv.Itoa(entry.Score), cellStyle(align.Right))),
			col.New(1).Add(text.New(entry.Tag, cellStyle(align.Left))),
			col.New(5).Add(text.New(entry.NextAction, props.Text{
				Size:  7,
				Color: colorPrimary,
				Top:   1,
			})),
		)
		if i%2 == 0 {
			r.WithStyle(&props.Cell{BackgroundColor: colorTableAlt})
		}
		rows = append(rows, r)
	}

	return rows
}

// ── Footer ──────────────────────────────────────────────────────────────

func buildFooter(content *report.Content) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			content.Title+"  ·  "+content.GeneratedAt.UTC().Format("2006-01-02"),
			props.Text{Size: 6.5, Color: colorSecondary, Align: align.Center, Top: 3},
		)),
	).WithStyle(&props.Cell{
		BorderType:  border.Top,
		BorderColor: colorBorder,
	})
}

// ── Helpers ─────────────────────────────────────────────────────────────

func sectionTitle(title string) core.Row {
	return row.New(7).Add(
		col.New(12).Add(text.New(title, props.Text{
			Size:  11,
			Style: fontstyle.Bold,
			Color: colorPrimary,
			Top:   1,
		})),
	)
}

func tableHeaderStyle(a align.Type) props.Text {
	return props.Text{
		Size:  8.5,
		Style: fontstyle.Bold,
		Color: colorWhite,
		Align: a,
		Top:   1.5,
	}
}

func headerCellStyle() *props.Cell {
	return &props.Cell{
		BackgroundColor: colorAccent,
		BorderType:      border.Bottom,
		BorderColor:     colorBorder,
	}
}

func cellStyle(a align.Type) props.Text {
	return props.Text{
		Size:  8.5,
		Color: colorPrimary,
		Align: a,
		Top:   1,
	}
}
