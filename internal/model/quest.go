package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// PlanDays is the fixed length of one quest cycle.
	PlanDays = 7
	// MaxQuestsPerDay caps how many quests a single day may hold.
	MaxQuestsPerDay = 5
	// DefaultQuestPoints is the point value stamped on generated quests.
	DefaultQuestPoints = 10
)

var (
	ErrInvalidDay      = errors.New("model: day must be between 1 and 7")
	ErrTooManyQuests   = errors.New("model: day plan exceeds quest cap")
	ErrDoneWhenLocked  = errors.New("model: disabled quest cannot be done")
	ErrMissingQuestID  = errors.New("model: quest id is required")
	ErrMissingTitle    = errors.New("model: quest title is required")
	ErrNegativePoints  = errors.New("model: quest points must not be negative")
	ErrWrongPlanLength = errors.New("model: plan must hold exactly 7 days")
)

// Quest is one actionable checklist item. Done may only be true while the
// quest is enabled; disabling a quest clears Done.
type Quest struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category Category `json:"category"`
	Points   int      `json:"points"`
	Done     bool     `json:"done"`
	Enabled  bool     `json:"enabled"`
	Note     string   `json:"note,omitempty"`
}

func (q Quest) Validate() error {
	if strings.TrimSpace(q.ID) == "" {
		return ErrMissingQuestID
	}
	if strings.TrimSpace(q.Title) == "" {
		return ErrMissingTitle
	}
	if err := q.Category.Validate(); err != nil {
		return err
	}
	if q.Points < 0 {
		return fmt.Errorf("%w: %d", ErrNegativePoints, q.Points)
	}
	if q.Done && !q.Enabled {
		return ErrDoneWhenLocked
	}
	return nil
}

// Counts toward completion and scoring only while enabled.
func (q Quest) CountsTowardScore() bool {
	return q.Done && q.Enabled
}

// DayPlan holds the quests scheduled for one day of the cycle. Day is 1-based;
// the owning plan slice is 0-based, so Plans[i].Day == i+1.
type DayPlan struct {
	Day    int     `json:"day"`
	Quests []Quest `json:"quests"`
}

func (d DayPlan) Validate() error {
	if d.Day < 1 || d.Day > PlanDays {
		return fmt.Errorf("%w: got %d", ErrInvalidDay, d.Day)
	}
	if len(d.Quests) > MaxQuestsPerDay {
		return fmt.Errorf("%w: day %d has %d", ErrTooManyQuests, d.Day, len(d.Quests))
	}
	for _, q := range d.Quests {
		if err := q.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CompletedCount returns how many quests count as completed for the day.
func (d DayPlan) CompletedCount() int {
	n := 0
	for _, q := range d.Quests {
		if q.CountsTowardScore() {
			n++
		}
	}
	return n
}

// EnabledCount returns how many quests participate in tracking for the day.
func (d DayPlan) EnabledCount() int {
	n := 0
	for _, q := range d.Quests {
		if q.Enabled {
			n++
		}
	}
	return n
}
