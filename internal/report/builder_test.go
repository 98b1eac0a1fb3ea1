package report

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/asif-merchant/leadintel/internal/dataset"
	"github.com/asif-merchant/leadintel/internal/scoring"
)

func scoredRow(id string, score string, areas string) dataset.Record {
	return dataset.Record{
		scoring.ColLeadID: id,
		scoring.ColScore:  score,
		scoring.ColAreas:  areas,
	}
}

func TestBuildEmptySlice(t *testing.T) {
	_, err := Build(nil, 10, "Report", time.Now())
	if !errors.Is(err, ErrNoLeads) {
		t.Fatalf("err = %v, want ErrNoLeads", err)
	}
}

func TestBuildTierCountsPartitionTotal(t *testing.T) {
	tests := []struct {
		name   string
		scores []string
		hot    int
		warm   int
		cold   int
	}{
		{"mixed", []string{"100", "85", "80", "79", "60", "59", "0"}, 3, 2, 2},
		{"all hot", []string{"90", "95"}, 2, 0, 0},
		{"all cold", []string{"10", "20", "30"}, 0, 0, 3},
		{"boundaries", []string{"80", "79", "60", "59"}, 1, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rows []dataset.Record
			for i, s := range tt.scores {
				rows = append(rows, scoredRow(string(rune('A'+i)), s, ""))
			}

			c, err := Build(rows, 5, "Report", time.Now())
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}

			if c.HotCount != tt.hot || c.WarmCount != tt.warm || c.ColdCount != tt.cold {
				t.Errorf("counts = %d/%d/%d, want %d/%d/%d",
					c.HotCount, c.WarmCount, c.ColdCount, tt.hot, tt.warm, tt.cold)
			}
			if c.HotCount+c.WarmCount+c.ColdCount != c.Total {
				t.Errorf("tier counts %d+%d+%d do not partition total %d",
					c.HotCount, c.WarmCount, c.ColdCount, c.Total)
			}
		})
	}
}

func TestBuildLeaderboard(t *testing.T) {
	rows := []dataset.Record{
		scoredRow("L-1", "60", ""),
		scoredRow("L-2", "90", ""),
		scoredRow("L-3", "90", ""),
		scoredRow("L-4", "75", ""),
	}

	c, err := Build(rows, 3, "Report", time.Now())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var ids []string
	for _, entry := range c.Leaderboard {
		ids = append(ids, entry.LeadID)
	}

	// descending by score; L-2 before L-3 because ties keep input order
	want := []string{"L-2", "L-3", "L-4"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("leaderboard = %v, want %v", ids, want)
	}
}

func TestBuildLeaderboardShorterThanTopN(t *testing.T) {
	rows := []dataset.Record{
		scoredRow("L-1", "80", ""),
		scoredRow("L-2", "70", ""),
		scoredRow("L-3", "60", ""),
	}

	c, err := Build(rows, 15, "Report", time.Now())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(c.Leaderboard) != 3 {
		t.Errorf("leaderboard length = %d, want 3 (full slice, no padding)", len(c.Leaderboard))
	}
}

func TestBuildDoesNotReorderInput(t *testing.T) {
	rows := []dataset.Record{
		scoredRow("L-1", "10", ""),
		scoredRow("L-2", "99", ""),
	}

	if _, err := Build(rows, 2, "Report", time.Now()); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if rows[0].Get(scoring.ColLeadID) != "L-1" || rows[1].Get(scoring.ColLeadID) != "L-2" {
		t.Errorf("input slice reordered: %v", rows)
	}
}

func TestAreaDistribution(t *testing.T) {
	rows := []dataset.Record{
		scoredRow("L-1", "80", "Dubai Marina, JVC"),
		scoredRow("L-2", "70", "JVC"),
		scoredRow("L-3", "60", "Business Bay, JVC, Business Bay"),
	}

	got := AreaDistribution(rows)

	want := []AreaCount{
		{Area: "JVC", Count: 3},
		{Area: "Business Bay", Count: 2}, // two occurrences in one row both count
		{Area: "Dubai Marina", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AreaDistribution = %v, want %v", got, want)
	}
}

func TestAreaDistributionTieOrder(t *testing.T) {
	rows := []dataset.Record{
		scoredRow("L-1", "80", "Zeta"),
		scoredRow("L-2", "70", "Alpha"),
	}

	got := AreaDistribution(rows)

	// equal counts keep first-seen order, not alphabetical
	want := []AreaCount{{Area: "Zeta", Count: 1}, {Area: "Alpha", Count: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AreaDistribution = %v, want %v", got, want)
	}
}

func TestAreaDistributionPlaceholder(t *testing.T) {
	rows := []dataset.Record{
		scoredRow("L-1", "80", ""),
		scoredRow("L-2", "70", " , "),
	}

	got := AreaDistribution(rows)

	want := []AreaCount{{Area: NoAreasPlaceholder, Count: 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AreaDistribution = %v, want %v", got, want)
	}
}

func TestAreaDistributionDeterministic(t *testing.T) {
	rows := []dataset.Record{
		scoredRow("L-1", "80", "A, B, C"),
		scoredRow("L-2", "70", "B, C"),
		scoredRow("L-3", "60", "C"),
	}

	first := AreaDistribution(rows)
	for i := 0; i < 10; i++ {
		if got := AreaDistribution(rows); !reflect.DeepEqual(got, first) {
			t.Fatalf("distribution changed between calls: %v then %v", first, got)
		}
	}
}

func TestBuildContentFields(t *testing.T) {
	now := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	rows := []dataset.Record{{
		scoring.ColLeadID:     "L-1",
		scoring.ColName:       "Hassan",
		scoring.ColLocation:   "Dubai",
		scoring.ColScore:      "88",
		scoring.ColTag:        "Hot",
		scoring.ColNextAction: "Call immediately during buyer's evening hours; highlight payment plan and priority units.",
	}}

	c, err := Build(rows, 10, "Q3 Campaign", now)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if c.Title != "Q3 Campaign" {
		t.Errorf("title = %q", c.Title)
	}
	if !c.GeneratedAt.Equal(now) {
		t.Errorf("generated at = %v, want %v", c.GeneratedAt, now)
	}
	if len(c.Recommendations) != 3 {
		t.Errorf("recommendations = %d entries, want 3", len(c.Recommendations))
	}

	entry := c.Leaderboard[0]
	if entry.Name != "Hassan" || entry.Location != "Dubai" || entry.Score != 88 || entry.Tag != "Hot" {
		t.Errorf("leaderboard entry = %+v", entry)
	}
}
