package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"questa/internal/model"
	"questa/internal/views"
)

// handleQuestsKey drives either the onboarding picker (pre-plan) or the
// day checklist (plan exists).
func (m Model) handleQuestsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.Controller.HasPlan() {
		return m.handlePickerKey(msg)
	}

	today, ok := m.Controller.TodayPlan()
	if !ok || len(today.Quests) == 0 {
		return m, nil
	}
	if m.QuestCursor >= len(today.Quests) {
		m.QuestCursor = len(today.Quests) - 1
	}

	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.QuestCursor > 0 {
			m.QuestCursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.QuestCursor < len(today.Quests)-1 {
			m.QuestCursor++
		}
	case key.Matches(msg, m.Keys.Toggle):
		q := today.Quests[m.QuestCursor]
		m.Controller.ToggleQuestDone(today.Day, q.ID)
		m.Status = StatusBar{Text: fmt.Sprintf("toggled: %s", q.Title)}
	case key.Matches(msg, m.Keys.Disable):
		q := today.Quests[m.QuestCursor]
		m.Controller.ToggleQuestEnabled(today.Day, q.ID)
		m.Status = StatusBar{Text: fmt.Sprintf("enabled flipped: %s", q.Title)}
	}
	return m, nil
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cats := model.AllCategories()
	switch {
	case key.Matches(msg, m.Keys.Up):
		if m.PickerCursor > 0 {
			m.PickerCursor--
		}
	case key.Matches(msg, m.Keys.Down):
		if m.PickerCursor < len(cats)-1 {
			m.PickerCursor++
		}
	case key.Matches(msg, m.Keys.Toggle):
		cat := cats[m.PickerCursor]
		if m.Controller.IsSelected(cat) {
			m.Controller.DeselectCategory(cat)
		} else {
			m.Controller.SelectCategory(cat)
		}
	case key.Matches(msg, m.Keys.Confirm):
		m.Controller.CreatePlan(nil)
		m.QuestCursor = 0
		m.Status = StatusBar{Text: "your 7-day plan is ready"}
	}
	return m, nil
}

func (m Model) renderQuestsView() string {
	if !m.Controller.HasPlan() {
		return m.renderPickerView()
	}

	today, ok := m.Controller.TodayPlan()
	if !ok {
		return "no plan yet"
	}

	items := make([]views.QuestItemData, 0, len(today.Quests))
	for i, q := range today.Quests {
		items = append(items, views.QuestItemData{
			Title:    q.Title,
			Category: q.Category.Label(),
			Points:   q.Points,
			Done:     q.Done,
			Enabled:  q.Enabled,
			Cursor:   i == m.QuestCursor,
		})
	}

	bar := ""
	if enabled := today.EnabledCount(); enabled > 0 {
		bar = m.todayProgress.ViewAs(float64(today.CompletedCount()) / float64(enabled))
	}
	return views.RenderQuestList(views.QuestPanelData{
		Day:         today.Day,
		Items:       items,
		ProgressBar: bar,
	})
}

func (m Model) renderPickerView() string {
	items := make([]views.PickerItemData, 0, len(model.AllCategories()))
	for i, cat := range model.AllCategories() {
		items = append(items, views.PickerItemData{
			Label:    cat.Label(),
			Selected: m.Controller.IsSelected(cat),
			Cursor:   i == m.PickerCursor,
		})
	}
	return views.RenderCategoryPicker(views.PickerPanelData{Items: items})
}

func (m Model) renderWeekView() string {
	st := m.Controller.Status()
	if !st.HasPlan {
		return "no plan yet — pick categories on the quests tab"
	}
	days := make([]views.WeekDayData, 0, len(st.Days))
	for _, d := range st.Days {
		days = append(days, views.WeekDayData{
			Day:       d.Day,
			Completed: d.Completed,
			Enabled:   d.Enabled,
			IsToday:   d.IsToday,
		})
	}
	return views.RenderWeekGrid(views.WeekPanelData{Days: days, WeekCompleted: st.WeekCompleted})
}

func (m Model) renderStatusSummary() string {
	st := m.Controller.Status()
	return views.RenderStatusSummary(views.StatusPanelData{
		Score:      st.Score,
		Rank:       string(st.Rank),
		ToNextRank: st.ToNextRank,
		TopRank:    st.TopRank,
	})
}
