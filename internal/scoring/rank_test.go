package scoring

import (
	"testing"

	"questa/internal/model"
)

func TestRankThresholds(t *testing.T) {
	cases := []struct {
		score int
		want  Rank
	}{
		{0, RankBronze},
		{49, RankBronze},
		{50, RankSilver},
		{99, RankSilver},
		{100, RankGold},
		{199, RankGold},
		{200, RankPlatinum},
		{499, RankPlatinum},
		{500, RankDiamond},
		{999, RankDiamond},
		{1000, RankLegend},
		{5000, RankLegend},
	}
	for _, c := range cases {
		if got := RankFor(c.score); got != c.want {
			t.Fatalf("RankFor(%d) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestRankIsMonotonic(t *testing.T) {
	order := map[Rank]int{
		RankBronze: 0, RankSilver: 1, RankGold: 2,
		RankPlatinum: 3, RankDiamond: 4, RankLegend: 5,
	}
	prev := RankFor(0)
	for s := 1; s <= 1200; s++ {
		cur := RankFor(s)
		if order[cur] < order[prev] {
			t.Fatalf("rank regressed from %s to %s at score %d", prev, cur, s)
		}
		prev = cur
	}
}

func TestPointsToNextRank(t *testing.T) {
	if got, ok := PointsToNextRank(0); !ok || got != 50 {
		t.Fatalf("PointsToNextRank(0) = %d,%v; want 50,true", got, ok)
	}
	if got, ok := PointsToNextRank(980); !ok || got != 20 {
		t.Fatalf("PointsToNextRank(980) = %d,%v; want 20,true", got, ok)
	}
	if _, ok := PointsToNextRank(1000); ok {
		t.Fatalf("expected no next rank at 1000")
	}
}

func TestApplyRoundTripAndFloor(t *testing.T) {
	q := model.Quest{ID: "q1", Title: "walk", Category: model.CategoryExercise, Points: 10, Enabled: true}

	score := Apply(0, q, true)
	if score != 10 {
		t.Fatalf("completing should add points: got %d", score)
	}
	score = Apply(score, q, false)
	if score != 0 {
		t.Fatalf("un-completing should restore prior score: got %d", score)
	}
	if got := Apply(3, q, false); got != 0 {
		t.Fatalf("score must floor at 0, got %d", got)
	}
}

func TestFiveCompletionsReachSilver(t *testing.T) {
	q := model.Quest{ID: "q", Title: "t", Category: model.CategoryDiet, Points: 10, Enabled: true}
	score := 0
	for i := 0; i < 5; i++ {
		score = Apply(score, q, true)
	}
	if score != 50 {
		t.Fatalf("expected score 50, got %d", score)
	}
	if got := RankFor(score); got != RankSilver {
		t.Fatalf("expected Silver exactly at threshold, got %s", got)
	}
}

func TestRecomputeSkipsDisabledAndPending(t *testing.T) {
	plans := []model.DayPlan{
		{Day: 1, Quests: []model.Quest{
			{ID: "a", Title: "a", Category: model.CategoryDiet, Points: 10, Done: true, Enabled: true},
			{ID: "b", Title: "b", Category: model.CategoryDiet, Points: 10, Done: false, Enabled: true},
		}},
		{Day: 2, Quests: []model.Quest{
			{ID: "c", Title: "c", Category: model.CategorySleep, Points: 10, Done: false, Enabled: false},
		}},
	}
	if got := Recompute(plans); got != 10 {
		t.Fatalf("Recompute = %d, want 10", got)
	}
}
