package scoring

import "strings"

// reasonRule pairs a notability check against the breakdown with the phrase
// emitted when it triggers. Rules are evaluated in slice order so the
// assembled reasoning string is deterministic.
type reasonRule struct {
	triggered func(Breakdown) bool
	phrase    string
}

var reasonRules = []reasonRule{
	{func(b Breakdown) bool { return b.Recency >= 15 }, "recent activity"},
	{func(b Breakdown) bool { return b.Frequency >= 15 }, "high frequency of searches"},
	{func(b Breakdown) bool { return b.ProjectFocus >= 10 }, "project-specific interest"},
	{func(b Breakdown) bool { return b.CrossPlatform >= 15 }, "cross-platform engagement"},
	{func(b Breakdown) bool { return b.Engagement >= 10 }, "engaged with mortgage/CTA"},
	{func(b Breakdown) bool { return b.DeviceBonus >= 3 }, "affluent device signal"},
}

// fallbackReason is used when no signal clears its notability threshold.
const fallbackReason = "activity recorded"

// Reasoning assembles a human-readable explanation from the notable signals
// in the breakdown, joined with ", " in fixed order.
func Reasoning(b Breakdown) string {
	var phrases []string
	for _, rule := range reasonRules {
		if rule.triggered(b) {
			phrases = append(phrases, rule.phrase)
		}
	}
	if len(phrases) == 0 {
		return fallbackReason
	}
	return strings.Join(phrases, ", ")
}

// NextAction recommends an outreach action for a score. The bands are
// evaluated highest first and together cover the full score range.
func NextAction(score int) string {
	switch {
	case score >= 85:
		return "Call immediately during buyer's evening hours; highlight payment plan and priority units."
	case score >= 70:
		return "Send WhatsApp with project brochure and ROI comparison; follow up with call in 24-48 hrs."
	case score >= 60:
		return "Send targeted email / WhatsApp with similar listings and financing options."
	default:
		return "Add to nurture drip; retarget with video creatives."
	}
}
