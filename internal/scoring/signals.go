package scoring

import (
	"strconv"
	"strings"
)

// Each signal scorer maps one or two raw field values to a bounded integer
// contribution. Unparseable or missing input falls back to the signal's
// documented default; a scorer never returns an error.

// ScoreRecency scores days since last activity. Fresher is better.
func ScoreRecency(lastSeenDays string) int {
	days, err := parseInt(lastSeenDays)
	if err != nil {
		return 0
	}
	switch {
	case days <= 1:
		return 20
	case days <= 7:
		return 15
	case days <= 30:
		return 10
	default:
		return 0
	}
}

// ScoreFrequency scores the number of searches in the last 7 days.
func ScoreFrequency(searchesLast7d string) int {
	n, err := parseInt(searchesLast7d)
	if err != nil {
		return 5
	}
	switch {
	case n >= 10:
		return 20
	case n >= 5:
		return 15
	case n >= 2:
		return 10
	default:
		return 5
	}
}

// ScoreBudget scores budget certainty: a narrow min/max spread signals a
// buyer who knows what they want.
func ScoreBudget(budgetMin, budgetMax string) int {
	minB, errMin := parseFloat(budgetMin)
	maxB, errMax := parseFloat(budgetMax)
	if errMin != nil || errMax != nil {
		return 5
	}
	variance := maxB - minB
	switch {
	case variance <= 500000:
		return 15
	case variance <= 1000000:
		return 10
	default:
		return 5
	}
}

// ScoreProjectFocus scores how many project keywords the lead matched.
func ScoreProjectFocus(keywordMatches string) int {
	m, err := parseInt(keywordMatches)
	if err != nil {
		return 0
	}
	switch {
	case m >= 3:
		return 15
	case m == 2:
		return 10
	case m == 1:
		return 5
	default:
		return 0
	}
}

// ScoreCrossPlatform scores channel breadth from a comma-separated platform
// list. Empty and missing lists score the single-platform default.
func ScoreCrossPlatform(platforms string) int {
	count := 0
	for _, p := range strings.Split(platforms, ",") {
		if strings.TrimSpace(p) != "" {
			count++
		}
	}
	switch {
	case count >= 3:
		return 20
	case count == 2:
		return 15
	default:
		return 5
	}
}

// ScoreEngagement scores the mortgage-calculator flag (0/1).
func ScoreEngagement(viewedMortgageCalc string) int {
	v, err := parseInt(viewedMortgageCalc)
	if err != nil {
		return 5
	}
	if v == 1 {
		return 10
	}
	return 5
}

// Device token lists for the affluence bonus. Matching is case-insensitive
// substring containment; the groups are additive, not mutually exclusive.
var (
	deviceAppleMobile = []string{"iphone", "ipad", "ios"}
	deviceDesktop     = []string{"macbook", "desktop", "windows"}
)

// ScoreDeviceBonus scores a free-text device description.
func ScoreDeviceBonus(device string) int {
	d := strings.ToLower(device)
	bonus := 0
	if containsAny(d, deviceAppleMobile) {
		bonus += 3
	}
	if containsAny(d, deviceDesktop) {
		bonus += 5
	}
	if strings.Contains(d, "android") {
		bonus++
	}
	return bonus
}

func containsAny(s string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

// parseInt accepts integer-looking input with surrounding whitespace and
// tolerates values written as floats ("3.0").
func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
