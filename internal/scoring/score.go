package scoring

import "github.com/asif-merchant/leadintel/internal/dataset"

// Input column names recognized by the scorer.
const (
	ColLeadID          = "lead_id"
	ColName            = "name"
	ColLocation        = "location"
	ColLastSeenDays    = "last_seen_days"
	ColSearchesLast7d  = "searches_last_7d"
	ColBudgetMin       = "budget_min"
	ColBudgetMax       = "budget_max"
	ColKeywordMatches  = "project_keywords_matches"
	ColPlatforms       = "platforms"
	ColViewedMortgage  = "viewed_mortgage_calc"
	ColDevice          = "device"
	ColAreas           = "areas"
	ColBehavior        = "behavior"
)

// Output column names attached by the scorer.
const (
	ColScore      = "score"
	ColTag        = "tag"
	ColReasoning  = "reasoning"
	ColNextAction = "next_action"
)

// MaxScore caps the aggregated lead score.
const MaxScore = 100

// Breakdown holds the per-signal contributions for one lead. It exists only
// while a row is scored and feeds the reasoning generator.
type Breakdown struct {
	Recency       int
	Frequency     int
	Budget        int
	ProjectFocus  int
	CrossPlatform int
	Engagement    int
	DeviceBonus   int
	RawTotal      int
}

// Tag is a lead priority tier.
type Tag string

const (
	TagHot  Tag = "Hot"
	TagWarm Tag = "Warm"
	TagCold Tag = "Cold"
)

// ComputeScore aggregates the seven signal scores for one record and returns
// the capped score with its breakdown. All contributions are integers, so the
// cap is the only adjustment applied to the raw total; were a fractional
// contribution ever introduced, the total would round half-up before capping.
func ComputeScore(row dataset.Record) (int, Breakdown) {
	b := Breakdown{
		Recency:       ScoreRecency(row.Get(ColLastSeenDays)),
		Frequency:     ScoreFrequency(row.Get(ColSearchesLast7d)),
		Budget:        ScoreBudget(row.Get(ColBudgetMin), row.Get(ColBudgetMax)),
		ProjectFocus:  ScoreProjectFocus(row.Get(ColKeywordMatches)),
		CrossPlatform: ScoreCrossPlatform(row.Get(ColPlatforms)),
		Engagement:    ScoreEngagement(row.Get(ColViewedMortgage)),
		DeviceBonus:   ScoreDeviceBonus(row.Get(ColDevice)),
	}
	b.RawTotal = b.Recency + b.Frequency + b.Budget + b.ProjectFocus +
		b.CrossPlatform + b.Engagement + b.DeviceBonus

	score := b.RawTotal
	if score > MaxScore {
		score = MaxScore
	}
	return score, b
}

// TagFromScore classifies a capped score into a tier. The three tiers
// partition [0,100]: Hot is 80+, Warm is 60-79, Cold is everything below.
func TagFromScore(score int) Tag {
	switch {
	case score >= 80:
		return TagHot
	case score >= 60:
		return TagWarm
	default:
		return TagCold
	}
}
