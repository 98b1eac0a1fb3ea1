package scoring

import (
	"testing"

	"github.com/asif-merchant/leadintel/internal/dataset"
)

func TestComputeScoreHotLead(t *testing.T) {
	row := dataset.Record{
		ColLastSeenDays:   "0",
		ColSearchesLast7d: "12",
		ColBudgetMin:      "100000",
		ColBudgetMax:      "200000",
		ColKeywordMatches: "3",
		ColPlatforms:      "Facebook,Instagram,Google",
		ColViewedMortgage: "1",
		ColDevice:         "iPhone 14",
	}

	score, b := ComputeScore(row)

	want := Breakdown{
		Recency:       20,
		Frequency:     20,
		Budget:        15,
		ProjectFocus:  15,
		CrossPlatform: 20,
		Engagement:    10,
		DeviceBonus:   3,
		RawTotal:      103,
	}
	if b != want {
		t.Errorf("breakdown = %+v, want %+v", b, want)
	}
	if score != 100 {
		t.Errorf("score = %d, want 100 (capped)", score)
	}
	if tag := TagFromScore(score); tag != TagHot {
		t.Errorf("tag = %s, want %s", tag, TagHot)
	}
}

func TestComputeScoreEmptyRow(t *testing.T) {
	score, b := ComputeScore(dataset.Record{})

	want := Breakdown{
		Recency:       0,
		Frequency:     5,
		Budget:        5,
		ProjectFocus:  0,
		CrossPlatform: 5,
		Engagement:    5,
		DeviceBonus:   0,
		RawTotal:      20,
	}
	if b != want {
		t.Errorf("breakdown = %+v, want %+v", b, want)
	}
	if score != 20 {
		t.Errorf("score = %d, want 20", score)
	}
	if tag := TagFromScore(score); tag != TagCold {
		t.Errorf("tag = %s, want %s", tag, TagCold)
	}
}

func TestComputeScoreDeterministic(t *testing.T) {
	row := dataset.Record{
		ColLastSeenDays:   "3",
		ColSearchesLast7d: "6",
		ColPlatforms:      "Facebook,Google",
		ColDevice:         "MacBook Pro",
	}

	first, _ := ComputeScore(row)
	for i := 0; i < 10; i++ {
		if got, _ := ComputeScore(row); got != first {
			t.Fatalf("score changed between calls: %d then %d", first, got)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	rows := []dataset.Record{
		{},
		{ColLastSeenDays: "0", ColSearchesLast7d: "100", ColBudgetMin: "0", ColBudgetMax: "0",
			ColKeywordMatches: "9", ColPlatforms: "a,b,c,d", ColViewedMortgage: "1",
			ColDevice: "iPhone and MacBook and Android"},
		{ColLastSeenDays: "999", ColDevice: "Nokia"},
	}

	for _, row := range rows {
		score, _ := ComputeScore(row)
		if score < 0 || score > MaxScore {
			t.Errorf("score %d out of [0,%d] for row %v", score, MaxScore, row)
		}
	}
}

func TestTagFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  Tag
	}{
		{100, TagHot},
		{85, TagHot},
		{80, TagHot},
		{79, TagWarm},
		{60, TagWarm},
		{59, TagCold},
		{20, TagCold},
		{0, TagCold},
	}

	for _, tt := range tests {
		if got := TagFromScore(tt.score); got != tt.want {
			t.Errorf("TagFromScore(%d) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestTiersPartitionScoreRange(t *testing.T) {
	// every score maps to exactly one tier
	for score := 0; score <= 100; score++ {
		tag := TagFromScore(score)
		switch tag {
		case TagHot:
			if score < 80 {
				t.Errorf("score %d tagged Hot", score)
			}
		case TagWarm:
			if score < 60 || score >= 80 {
				t.Errorf("score %d tagged Warm", score)
			}
		case TagCold:
			if score >= 60 {
				t.Errorf("score %d tagged Cold", score)
			}
		default:
			t.Errorf("score %d has unknown tag %q", score, tag)
		}
	}
}
