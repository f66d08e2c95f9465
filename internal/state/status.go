package state

import (
	"questa/internal/model"
	"questa/internal/scoring"
)

// DayProgress is the per-day slice of the read model.
type DayProgress struct {
	Day       int
	Completed int
	Enabled   int
	IsToday   bool
}

// Status is everything the view layer reads without mutating anything.
type Status struct {
	HasPlan       bool
	TodayIndex    int
	Score         int
	Rank          scoring.Rank
	ToNextRank    int
	TopRank       bool
	WeekCompleted int
	Days          []DayProgress
}

func (c *Controller) Score() int { return c.state.Score }

func (c *Controller) Rank() scoring.Rank { return scoring.RankFor(c.state.Score) }

func (c *Controller) TodayIndex() int { return c.state.TodayIndex(c.now()) }

// Status assembles the derived read model for the current instant.
func (c *Controller) Status() Status {
	today := c.TodayIndex()
	st := Status{
		HasPlan:    c.state.HasPlan(),
		TodayIndex: today,
		Score:      c.state.Score,
		Rank:       scoring.RankFor(c.state.Score),
	}
	toNext, ok := scoring.PointsToNextRank(c.state.Score)
	st.ToNextRank = toNext
	st.TopRank = !ok
	for i, d := range c.state.Plans {
		st.Days = append(st.Days, DayProgress{
			Day:       d.Day,
			Completed: d.CompletedCount(),
			Enabled:   d.EnabledCount(),
			IsToday:   i == today,
		})
		st.WeekCompleted += d.CompletedCount()
	}
	return st
}

// TodayPlan returns the quests for the current cycle day, false pre-plan.
func (c *Controller) TodayPlan() (model.DayPlan, bool) {
	if !c.state.HasPlan() {
		return model.DayPlan{}, false
	}
	return c.Snapshot().Plans[c.TodayIndex()], true
}
