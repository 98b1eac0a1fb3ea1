package database

import (
	"strconv"
	"strings"
	"time"

	"github.com/asif-merchant/leadintel/internal/dataset"
	"github.com/asif-merchant/leadintel/internal/scoring"
)

// Lead is one scored lead as persisted. Raw campaign fields stay as ingested
// text (empty string means the source column was missing or blank) so a
// stored snapshot round-trips back to CSV unchanged.
type Lead struct {
	LeadID                 string    `json:"lead_id"`
	Name                   string    `json:"name"`
	Location               string    `json:"location"`
	Device                 string    `json:"device"`
	Platforms              string    `json:"platforms"`
	Areas                  string    `json:"areas"`
	BudgetMin              string    `json:"budget_min"`
	BudgetMax              string    `json:"budget_max"`
	SearchesLast7d         string    `json:"searches_last_7d"`
	SearchesLast30d        string    `json:"searches_last_30d"`
	LastSeenDays           string    `json:"last_seen_days"`
	ViewedMortgageCalc     string    `json:"viewed_mortgage_calc"`
	ProjectKeywordsMatches string    `json:"project_keywords_matches"`
	Behavior               string    `json:"behavior"`
	Score                  int       `json:"score"`
	Tag                    string    `json:"tag"`
	Reasoning              string    `json:"reasoning"`
	NextAction             string    `json:"next_action"`
	RowOrder               int       `json:"-"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// BehaviorNotes splits the pipe-separated behavior field into trimmed,
// non-empty notes.
func (l *Lead) BehaviorNotes() []string {
	var notes []string
	for _, part := range strings.Split(l.Behavior, "|") {
		if note := strings.TrimSpace(part); note != "" {
			notes = append(notes, note)
		}
	}
	return notes
}

// searchesLast30dCol is carried through from the source data but plays no
// part in scoring.
const searchesLast30dCol = "searches_last_30d"

// FromRecord builds a Lead from a scored dataset record.
func FromRecord(row dataset.Record) Lead {
	return Lead{
		LeadID:                 row.Get(scoring.ColLeadID),
		Name:                   row.Get(scoring.ColName),
		Location:               row.Get(scoring.ColLocation),
		Device:                 row.Get(scoring.ColDevice),
		Platforms:              row.Get(scoring.ColPlatforms),
		Areas:                  row.Get(scoring.ColAreas),
		BudgetMin:              row.Get(scoring.ColBudgetMin),
		BudgetMax:              row.Get(scoring.ColBudgetMax),
		SearchesLast7d:         row.Get(scoring.ColSearchesLast7d),
		SearchesLast30d:        row.Get(searchesLast30dCol),
		LastSeenDays:           row.Get(scoring.ColLastSeenDays),
		ViewedMortgageCalc:     row.Get(scoring.ColViewedMortgage),
		ProjectKeywordsMatches: row.Get(scoring.ColKeywordMatches),
		Behavior:               row.Get(scoring.ColBehavior),
		Score:                  scoring.RecordScore(row),
		Tag:                    row.Get(scoring.ColTag),
		Reasoning:              row.Get(scoring.ColReasoning),
		NextAction:             row.Get(scoring.ColNextAction),
	}
}

// ToRecord converts a Lead back into a dataset record.
func (l *Lead) ToRecord() dataset.Record {
	return dataset.Record{
		scoring.ColLeadID:         l.LeadID,
		scoring.ColName:           l.Name,
		scoring.ColLocation:       l.Location,
		scoring.ColDevice:         l.Device,
		scoring.ColPlatforms:      l.Platforms,
		scoring.ColAreas:          l.Areas,
		scoring.ColBudgetMin:      l.BudgetMin,
		scoring.ColBudgetMax:      l.BudgetMax,
		scoring.ColSearchesLast7d: l.SearchesLast7d,
		searchesLast30dCol:        l.SearchesLast30d,
		scoring.ColLastSeenDays:   l.LastSeenDays,
		scoring.ColViewedMortgage: l.ViewedMortgageCalc,
		scoring.ColKeywordMatches: l.ProjectKeywordsMatches,
		scoring.ColBehavior:       l.Behavior,
		scoring.ColScore:          strconv.Itoa(l.Score),
		scoring.ColTag:            l.Tag,
		scoring.ColReasoning:      l.Reasoning,
		scoring.ColNextAction:     l.NextAction,
	}
}

// RecordColumns is the column order used when exporting stored leads.
var RecordColumns = []string{
	scoring.ColLeadID, scoring.ColName, scoring.ColLocation,
	scoring.ColDevice, scoring.ColPlatforms, scoring.ColAreas,
	scoring.ColBudgetMin, scoring.ColBudgetMax,
	scoring.ColSearchesLast7d, searchesLast30dCol, scoring.ColLastSeenDays,
	scoring.ColViewedMortgage, scoring.ColKeywordMatches, scoring.ColBehavior,
	scoring.ColScore, scoring.ColTag, scoring.ColReasoning, scoring.ColNextAction,
}

// Stats represents aggregate statistics over the stored leads
type Stats struct {
	TotalLeads int     `json:"total_leads"`
	Hot        int     `json:"hot"`
	Warm       int     `json:"warm"`
	Cold       int     `json:"cold"`
	AvgScore   float64 `json:"avg_score"`
	MaxScore   int     `json:"max_score"`
}

// ListOptions contains options for listing leads
type ListOptions struct {
	MinScore *int
	Tag      *string
	Area     *string
	Limit    int
	Offset   int
}
