// Package plan turns a category selection into a fixed 7-day quest cycle.
package plan

import (
	"questa/internal/model"

	"github.com/google/uuid"
)

// IDSource mints unique quest ids. Injected so tests can make generation
// fully deterministic; ids never influence selection or ordering.
type IDSource func() string

// NewUUIDSource returns the production id source.
func NewUUIDSource() IDSource {
	return func() string { return uuid.NewString() }
}

// questsPerCategory is how many titles each selected category contributes to
// a single day before the day cap applies.
const questsPerCategory = 2

// Generate builds the 7-day plan for a non-empty category selection.
//
// For day d (1..7) and the category at selection index idx, titles are picked
// by rotating through the category's pool: base = (d + idx) mod len(pool),
// taking pool[base] and pool[base+1 mod len(pool)]. Days are assembled in
// selection order and silently truncated to MaxQuestsPerDay; truncation is
// expected behavior, not an error. Unknown categories contribute nothing.
// Pure aside from the id source.
func Generate(categories []model.Category, newID IDSource) []model.DayPlan {
	if newID == nil {
		newID = NewUUIDSource()
	}
	plans := make([]model.DayPlan, 0, model.PlanDays)
	for day := 1; day <= model.PlanDays; day++ {
		quests := make([]model.Quest, 0, len(categories)*questsPerCategory)
		for idx, cat := range categories {
			pool := TemplatePool(cat)
			if len(pool) == 0 {
				continue
			}
			base := (day + idx) % len(pool)
			for k := 0; k < questsPerCategory; k++ {
				quests = append(quests, model.Quest{
					ID:       newID(),
					Title:    pool[(base+k)%len(pool)],
					Category: cat,
					Points:   model.DefaultQuestPoints,
					Done:     false,
					Enabled:  true,
				})
			}
		}
		if len(quests) > model.MaxQuestsPerDay {
			quests = quests[:model.MaxQuestsPerDay]
		}
		plans = append(plans, model.DayPlan{Day: day, Quests: quests})
	}
	return plans
}
