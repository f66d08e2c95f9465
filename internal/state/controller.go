// Package state owns the live application state. The Controller is the only
// writer: every mutation validates its target, updates the in-memory state,
// and mirrors the new snapshot to the store. Operations on missing targets
// are silent no-ops; nothing in this app is worth an error dialog.
package state

import (
	"time"

	"questa/internal/model"
	"questa/internal/plan"
	"questa/internal/scoring"
	"questa/internal/storage"
)

// Responder composes a chat reply from the input and prior transcript.
type Responder interface {
	Respond(input string, history []model.Message) string
}

type Controller struct {
	state model.AppState
	store storage.Store
	now   func() time.Time
	newID plan.IDSource
}

type Option func(*Controller)

// WithClock overrides wall-clock time, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithIDSource overrides quest id generation, for tests.
func WithIDSource(newID plan.IDSource) Option {
	return func(c *Controller) { c.newID = newID }
}

// NewController builds a controller seeded from whatever the store holds.
// An absent or unreadable snapshot starts the app in its pre-plan state.
func NewController(store storage.Store, opts ...Option) *Controller {
	c := &Controller{
		store: store,
		now:   time.Now,
		newID: plan.NewUUIDSource(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if loaded, ok := store.Load(); ok {
		c.state = loaded
	}
	if c.state.Theme == (model.Theme{}) {
		c.state.Theme = model.DefaultTheme()
	}
	return c
}

// Snapshot returns a copy of the current state for rendering. Slices are
// cloned so the view layer can never alias the live state.
func (c *Controller) Snapshot() model.AppState {
	out := c.state
	out.SelectedCategories = append([]model.Category(nil), c.state.SelectedCategories...)
	out.Chat = append([]model.Message(nil), c.state.Chat...)
	if c.state.Plans != nil {
		out.Plans = make([]model.DayPlan, len(c.state.Plans))
		for i, d := range c.state.Plans {
			out.Plans[i] = d
			out.Plans[i].Quests = append([]model.Quest(nil), d.Quests...)
		}
	}
	return out
}

func (c *Controller) HasPlan() bool { return c.state.HasPlan() }

func (c *Controller) IsSelected(cat model.Category) bool {
	for _, s := range c.state.SelectedCategories {
		if s == cat {
			return true
		}
	}
	return false
}

// SelectCategory adds a category to the pending selection. No-op for unknown
// categories, duplicates, or once a plan exists.
func (c *Controller) SelectCategory(cat model.Category) {
	if c.state.HasPlan() || !cat.IsValid() || c.IsSelected(cat) {
		return
	}
	c.state.SelectedCategories = append(c.state.SelectedCategories, cat)
	c.persist()
}

// DeselectCategory removes a category from the pending selection. No-op once
// a plan exists.
func (c *Controller) DeselectCategory(cat model.Category) {
	if c.state.HasPlan() {
		return
	}
	for i, s := range c.state.SelectedCategories {
		if s == cat {
			c.state.SelectedCategories = append(c.state.SelectedCategories[:i], c.state.SelectedCategories[i+1:]...)
			c.persist()
			return
		}
	}
}

// CreatePlan generates the 7-day cycle from the given categories, falling
// back to the pending selection and then to the default pair. No-op while a
// plan already exists; regenerating requires an explicit ResetAll first.
func (c *Controller) CreatePlan(categories []model.Category) {
	if c.state.HasPlan() {
		return
	}
	if len(categories) == 0 {
		categories = c.state.SelectedCategories
	}
	if len(categories) == 0 {
		categories = plan.DefaultCategories()
	}
	c.state.SelectedCategories = append([]model.Category(nil), categories...)
	c.state.Plans = plan.Generate(categories, c.newID)
	c.state.CreatedAt = c.now()
	c.state.Score = 0
	c.persist()
}

// ToggleQuestDone flips completion for an enabled quest and adjusts the
// running score. Disabled or missing quests are left untouched.
func (c *Controller) ToggleQuestDone(day int, questID string) {
	q := c.state.FindQuest(day, questID)
	if q == nil || !q.Enabled {
		return
	}
	q.Done = !q.Done
	c.state.Score = scoring.Apply(c.state.Score, *q, q.Done)
	c.persist()
}

// ToggleQuestEnabled flips participation. Disabling a completed quest first
// un-completes it through the normal scoring path, so the earned points come
// back off before the quest leaves tracking.
func (c *Controller) ToggleQuestEnabled(day int, questID string) {
	q := c.state.FindQuest(day, questID)
	if q == nil {
		return
	}
	if q.Enabled && q.Done {
		q.Done = false
		c.state.Score = scoring.Apply(c.state.Score, *q, false)
	}
	q.Enabled = !q.Enabled
	c.persist()
}

// ResetAll discards everything and clears the persisted snapshot, returning
// the app to its pre-plan state.
func (c *Controller) ResetAll() {
	c.state = model.AppState{Theme: model.DefaultTheme()}
	c.store.Clear()
}

// SetTheme merges the non-empty fields of patch into the current theme.
func (c *Controller) SetTheme(patch model.Theme) {
	c.state.Theme = c.state.Theme.Merge(patch)
	c.persist()
}

// AppendUserMessage records one user chat line.
func (c *Controller) AppendUserMessage(text string) {
	c.appendMessage(model.RoleUser, text)
}

// AppendAssistantMessage records one assistant chat line. Kept separate from
// ComposeReply so the UI can delay publication behind its thinking pause.
func (c *Controller) AppendAssistantMessage(text string) {
	c.appendMessage(model.RoleAssistant, text)
}

// ComposeReply asks the responder for a reply without touching the
// transcript.
func (c *Controller) ComposeReply(r Responder, input string) string {
	return r.Respond(input, c.state.Chat)
}

func (c *Controller) appendMessage(role model.MessageRole, text string) {
	c.state.Chat = append(c.state.Chat, model.Message{Role: role, Text: text, At: c.now()})
	c.persist()
}

func (c *Controller) persist() {
	c.store.Save(c.state)
}
