package model

import (
	"time"
)

// Theme carries display preferences. Zero-value fields mean "use default".
type Theme struct {
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
}

const (
	DefaultThemeBackground = "234"
	DefaultThemeText       = "252"
)

func DefaultTheme() Theme {
	return Theme{Background: DefaultThemeBackground, Text: DefaultThemeText}
}

// Merge overlays the non-empty fields of patch onto t.
func (t Theme) Merge(patch Theme) Theme {
	out := t
	if patch.Background != "" {
		out.Background = patch.Background
	}
	if patch.Text != "" {
		out.Text = patch.Text
	}
	return out
}

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one entry of the chat transcript.
type Message struct {
	Role MessageRole `json:"role"`
	Text string      `json:"text"`
	At   time.Time   `json:"at"`
}

// AppState is the whole persisted snapshot. The state controller is its only
// writer; everything else reads it for the duration of one operation.
type AppState struct {
	SelectedCategories []Category `json:"selected_categories,omitempty"`
	Plans              []DayPlan  `json:"plans,omitempty"`
	CreatedAt          time.Time  `json:"created_at,omitempty"`
	Theme              Theme      `json:"theme,omitempty"`
	Score              int        `json:"score"`
	Chat               []Message  `json:"chat,omitempty"`
}

// HasPlan reports whether a cycle has been generated.
func (s AppState) HasPlan() bool {
	return len(s.Plans) == PlanDays
}

func (s AppState) Validate() error {
	if len(s.Plans) == 0 {
		return nil
	}
	if len(s.Plans) != PlanDays {
		return ErrWrongPlanLength
	}
	for _, d := range s.Plans {
		if err := d.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TodayIndex returns the 0-based plan index for the given wall-clock time,
// clamped to the cycle bounds so a stale plan keeps pointing at day 7.
func (s AppState) TodayIndex(now time.Time) int {
	if !s.HasPlan() || s.CreatedAt.IsZero() {
		return 0
	}
	idx := int(now.Sub(s.CreatedAt) / (24 * time.Hour))
	if idx < 0 {
		return 0
	}
	if idx > PlanDays-1 {
		return PlanDays - 1
	}
	return idx
}

// CompletedTotal counts completed enabled quests across the whole cycle.
func (s AppState) CompletedTotal() int {
	n := 0
	for _, d := range s.Plans {
		n += d.CompletedCount()
	}
	return n
}

// FindQuest locates a quest by 1-based day and id. The returned pointer
// aliases the state's own slice so callers may mutate in place.
func (s *AppState) FindQuest(day int, questID string) *Quest {
	if day < 1 || day > len(s.Plans) {
		return nil
	}
	quests := s.Plans[day-1].Quests
	for i := range quests {
		if quests[i].ID == questID {
			return &quests[i]
		}
	}
	return nil
}
