// Package report assembles the structured content of a campaign intelligence
// report from a filtered slice of scored leads. It computes aggregates and
// rankings only; rendering the content into a document is the renderer's job.
package report

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/asif-merchant/leadintel/internal/dataset"
	"github.com/asif-merchant/leadintel/internal/scoring"
)

// ErrNoLeads signals that the filtered slice was empty and there is nothing
// to report. Callers decide how to surface it; it is not a failure of the
// builder itself.
var ErrNoLeads = errors.New("no leads to report")

// NoAreasPlaceholder is emitted as the sole distribution entry when no row
// carries any area tag.
const NoAreasPlaceholder = "(no project tags found)"

// AreaCount is one entry of the area distribution table.
type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// LeaderEntry is one row of the top-N leaderboard.
type LeaderEntry struct {
	LeadID     string `json:"lead_id"`
	Name       string `json:"name"`
	Location   string `json:"location"`
	Score      int    `json:"score"`
	Tag        string `json:"tag"`
	NextAction string `json:"next_action"`
}

// Content is everything a renderer needs to produce the report document.
type Content struct {
	Title           string        `json:"title"`
	GeneratedAt     time.Time     `json:"generated_at"`
	Total           int           `json:"total"`
	HotCount        int           `json:"hot_count"`
	WarmCount       int           `json:"warm_count"`
	ColdCount       int           `json:"cold_count"`
	Areas           []AreaCount   `json:"areas"`
	Leaderboard     []LeaderEntry `json:"leaderboard"`
	Recommendations []string      `json:"recommendations"`
}

// Recommendations is the fixed advice list included in every report.
var Recommendations = []string{
	"Prioritize outreach to Hot leads first (score >= 80).",
	"For high-performing projects, reallocate ad spend to the creative that produced higher-scoring leads (A/B test results).",
	"Contact buyers during their local evening hours for best response rates.",
}

// Build computes report content for an already-filtered slice of scored
// rows. topN limits the leaderboard; a slice shorter than topN yields a
// correspondingly shorter leaderboard. An empty slice returns ErrNoLeads.
func Build(rows []dataset.Record, topN int, title string, generatedAt time.Time) (*Content, error) {
	if len(rows) == 0 {
		return nil, ErrNoLeads
	}

	c := &Content{
		Title:           title,
		GeneratedAt:     generatedAt,
		Total:           len(rows),
		Areas:           AreaDistribution(rows),
		Leaderboard:     leaderboard(rows, topN),
		Recommendations: Recommendations,
	}

	for _, row := range rows {
		switch score := scoring.RecordScore(row); {
		case score >= 80:
			c.HotCount++
		case score >= 60:
			c.WarmCount++
		default:
			c.ColdCount++
		}
	}

	return c, nil
}

// SplitAreas splits a comma-separated area field into trimmed, non-empty
// tags. Duplicate tags within one field are kept: each occurrence counts.
func SplitAreas(field string) []string {
	var areas []string
	for _, part := range strings.Split(field, ",") {
		if a := strings.TrimSpace(part); a != "" {
			areas = append(areas, a)
		}
	}
	return areas
}

// AreaDistribution counts area tag occurrences across all rows, descending
// by count with ties kept in first-seen order. When no row carries a tag the
// result is the single placeholder entry.
func AreaDistribution(rows []dataset.Record) []AreaCount {
	counts := make(map[string]int)
	var order []string

	for _, row := range rows {
		for _, area := range SplitAreas(row.Get(scoring.ColAreas)) {
			if _, seen := counts[area]; !seen {
				order = append(order, area)
			}
			counts[area]++
		}
	}

	if len(order) == 0 {
		return []AreaCount{{Area: NoAreasPlaceholder, Count: 0}}
	}

	dist := make([]AreaCount, 0, len(order))
	for _, area := range order {
		dist = append(dist, AreaCount{Area: area, Count: counts[area]})
	}
	sort.SliceStable(dist, func(i, j int) bool {
		return dist[i].Count > dist[j].Count
	})
	return dist
}

// leaderboard returns the topN rows by score descending. The sort is stable
// so equal scores keep their original relative order.
func leaderboard(rows []dataset.Record, topN int) []LeaderEntry {
	ranked := make([]dataset.Record, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scoring.RecordScore(ranked[i]) > scoring.RecordScore(ranked[j])
	})

	if topN > len(ranked) {
		topN = len(ranked)
	}
	if topN < 0 {
		topN = 0
	}

	entries := make([]LeaderEntry, 0, topN)
	for _, row := range ranked[:topN] {
		entries = append(entries, LeaderEntry{
			LeadID:     row.Get(scoring.ColLeadID),
			Name:       row.Get(scoring.ColName),
			Location:   row.Get(scoring.ColLocation),
			Score:      scoring.RecordScore(row),
			Tag:        row.Get(scoring.ColTag),
			NextAction: row.Get(scoring.ColNextAction),
		})
	}
	return entries
}
