package update

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"questa/internal/model"
	"questa/internal/responder"
	"questa/internal/state"
	"questa/internal/storage"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	n := 0
	ctrl := state.NewController(storage.NewMemoryStore(),
		state.WithClock(func() time.Time { return time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC) }),
		state.WithIDSource(func() string {
			n++
			return fmt.Sprintf("quest-%d", n)
		}),
	)
	return NewModel(ctrl, responder.NewWithSeed(1))
}

func pressRune(t *testing.T, m Model, r rune) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(Model)
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)
	if m.CurrentView != ViewQuests {
		t.Fatalf("expected default view %q, got %q", ViewQuests, m.CurrentView)
	}
	if m.Quitting {
		t.Fatalf("fresh model should not be quitting")
	}
}

func TestNumberKeysSwitchViews(t *testing.T) {
	m := newTestModel(t)
	m = pressRune(t, m, '2')
	if m.CurrentView != ViewWeek {
		t.Fatalf("expected week view, got %q", m.CurrentView)
	}
	m = pressRune(t, m, '4')
	if m.CurrentView != ViewSettings {
		t.Fatalf("expected settings view, got %q", m.CurrentView)
	}
	m = pressRune(t, m, '1')
	if m.CurrentView != ViewQuests {
		t.Fatalf("expected quests view, got %q", m.CurrentView)
	}
}

func TestSwitchViewMsgIgnoresUnknown(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(SwitchViewMsg{View: ViewWeek})
	m = updated.(Model)
	if m.CurrentView != ViewWeek {
		t.Fatalf("expected week view, got %q", m.CurrentView)
	}
	updated, _ = m.Update(SwitchViewMsg{View: View("Bogus")})
	m = updated.(Model)
	if m.CurrentView != ViewWeek {
		t.Fatalf("unknown view must be ignored, got %q", m.CurrentView)
	}
}

func TestPickerSelectsAndCreatesPlan(t *testing.T) {
	m := newTestModel(t)

	m = pressRune(t, m, 'x') // select Exercise (cursor at 0)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	m = pressRune(t, m, 'x') // select Learning

	if !m.Controller.IsSelected(model.CategoryExercise) || !m.Controller.IsSelected(model.CategoryLearning) {
		t.Fatalf("expected both categories selected")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if !m.Controller.HasPlan() {
		t.Fatalf("enter on picker should create the plan")
	}
}

func TestQuestToggleScoresFromTUI(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter}) // default pair
	m = updated.(Model)

	m = pressRune(t, m, 'x')
	if got := m.Controller.Score(); got != model.DefaultQuestPoints {
		t.Fatalf("expected %d points after toggle, got %d", model.DefaultQuestPoints, got)
	}
	m = pressRune(t, m, 'x')
	if got := m.Controller.Score(); got != 0 {
		t.Fatalf("expected round-trip back to 0, got %d", got)
	}
}

func TestQuestDisableKeyLocksQuest(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	m = pressRune(t, m, 'x') // done
	m = pressRune(t, m, 'e') // disable
	day, _ := m.Controller.TodayPlan()
	if day.Quests[0].Enabled || day.Quests[0].Done {
		t.Fatalf("disable should force done=false: %+v", day.Quests[0])
	}
	if m.Controller.Score() != 0 {
		t.Fatalf("points should come back off, got %d", m.Controller.Score())
	}
}

func TestChatSubmitDelaysReply(t *testing.T) {
	m := newTestModel(t)
	m = pressRune(t, m, '3')
	if m.CurrentView != ViewChat {
		t.Fatalf("expected chat view")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("help")})
	m = updated.(Model)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)

	if !m.ChatThinking {
		t.Fatalf("expected thinking pause after submit")
	}
	if cmd == nil {
		t.Fatalf("expected delayed reply command")
	}
	chat := m.Controller.Snapshot().Chat
	if len(chat) != 1 || chat[0].Role != model.RoleUser {
		t.Fatalf("reply must not publish before the pause: %+v", chat)
	}

	updated, _ = m.Update(ChatReplyMsg{Text: responder.UsageText})
	m = updated.(Model)
	if m.ChatThinking {
		t.Fatalf("thinking should end on reply")
	}
	chat = m.Controller.Snapshot().Chat
	if len(chat) != 2 || chat[1].Role != model.RoleAssistant {
		t.Fatalf("expected published reply: %+v", chat)
	}
	if chat[1].Text != responder.UsageText {
		t.Fatalf("help must map to the fixed usage text, got %q", chat[1].Text)
	}
}

func TestChatIgnoresEmptySubmit(t *testing.T) {
	m := newTestModel(t)
	m = pressRune(t, m, '3')
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if m.ChatThinking || cmd != nil {
		t.Fatalf("empty submit must be a no-op")
	}
}

func TestChatInputCapturesViewKeys(t *testing.T) {
	m := newTestModel(t)
	m = pressRune(t, m, '3')
	m = pressRune(t, m, '1') // should type, not switch view
	if m.CurrentView != ViewChat {
		t.Fatalf("focused chat input should capture digits")
	}
	if got := m.chatInput.Value(); got != "1" {
		t.Fatalf("expected %q typed into input, got %q", "1", got)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	m = pressRune(t, m, '1')
	if m.CurrentView != ViewQuests {
		t.Fatalf("after esc, nav keys should work again")
	}
}

func TestSettingsResetNeedsConfirmation(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	m = pressRune(t, m, '4')

	m = pressRune(t, m, 'r')
	if !m.ConfirmReset {
		t.Fatalf("expected confirmation prompt")
	}
	m = pressRune(t, m, 'n')
	if m.ConfirmReset || !m.Controller.HasPlan() {
		t.Fatalf("non-y key should cancel the reset")
	}

	m = pressRune(t, m, 'r')
	m = pressRune(t, m, 'y')
	if m.Controller.HasPlan() {
		t.Fatalf("confirmed reset should discard the plan")
	}
}

func TestSettingsThemeCycling(t *testing.T) {
	m := newTestModel(t)
	m = pressRune(t, m, '4')
	before := m.Controller.Snapshot().Theme.Background
	m = pressRune(t, m, 'b')
	after := m.Controller.Snapshot().Theme.Background
	if before == after {
		t.Fatalf("expected background to cycle, still %q", after)
	}
	if m.Controller.Snapshot().Theme.Text != model.DefaultThemeText {
		t.Fatalf("text color should be untouched")
	}
}

func TestViewRendersWithoutPlan(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	if !strings.Contains(out, "questa") {
		t.Fatalf("expected header in view output")
	}
	if !strings.Contains(out, "Pick your growth areas") {
		t.Fatalf("expected onboarding picker pre-plan")
	}
}

func TestQuitKeySetsQuitting(t *testing.T) {
	m := newTestModel(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)
	if !m.Quitting {
		t.Fatalf("expected quitting after q")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
}
