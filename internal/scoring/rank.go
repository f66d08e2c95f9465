// Package scoring maps completed quests to a cumulative score and the score
// to a named rank tier.
package scoring

import "questa/internal/model"

type Rank string

const (
	RankBronze   Rank = "Bronze"
	RankSilver   Rank = "Silver"
	RankGold     Rank = "Gold"
	RankPlatinum Rank = "Platinum"
	RankDiamond  Rank = "Diamond"
	RankLegend   Rank = "Legend"
)

type tier struct {
	Rank     Rank
	MinScore int
}

// tiers are ascending inclusive lower bounds. Keep the ladder stable: ranks
// are shown to the user and persist across sessions via the score.
var tiers = []tier{
	{RankBronze, 0},
	{RankSilver, 50},
	{RankGold, 100},
	{RankPlatinum, 200},
	{RankDiamond, 500},
	{RankLegend, 1000},
}

// RankFor returns the highest rank whose threshold is at or below score.
func RankFor(score int) Rank {
	current := tiers[0].Rank
	for _, t := range tiers {
		if score >= t.MinScore {
			current = t.Rank
		}
	}
	return current
}

// PointsToNextRank returns how many points remain until the next tier, and
// false when the score already sits in the top tier.
func PointsToNextRank(score int) (int, bool) {
	for _, t := range tiers {
		if score < t.MinScore {
			return t.MinScore - score, true
		}
	}
	return 0, false
}

// Apply adjusts a running score for one done-toggle. Completing adds the
// quest's point value, un-completing subtracts it, and the result never drops
// below zero.
func Apply(score int, q model.Quest, nowDone bool) int {
	if nowDone {
		return score + q.Points
	}
	score -= q.Points
	if score < 0 {
		return 0
	}
	return score
}

// Recompute derives the score a fresh walk of the plan would produce. Used
// for read-model sanity, not as the source of truth: the stored score is
// adjusted incrementally so points survive a later disable.
func Recompute(plans []model.DayPlan) int {
	total := 0
	for _, d := range plans {
		for _, q := range d.Quests {
			if q.CountsTowardScore() {
				total += q.Points
			}
		}
	}
	return total
}
