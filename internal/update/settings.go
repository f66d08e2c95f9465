package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"questa/internal/model"
	"questa/internal/views"
)

// Color cycles offered in settings. ANSI 256 codes, dark-terminal friendly.
var (
	backgroundCycle = []string{"234", "17", "22", "52", "235"}
	textCycle       = []string{"252", "114", "215", "81", "183"}
)

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if m.ConfirmReset {
		if keyStr == "y" {
			m.Controller.ResetAll()
			m.PickerCursor = 0
			m.QuestCursor = 0
			m.Status = StatusBar{Text: "everything reset"}
		}
		m.ConfirmReset = false
		return m, nil
	}

	switch keyStr {
	case "b":
		m.Controller.SetTheme(model.Theme{Background: nextColor(backgroundCycle, m.theme().Background)})
	case "t":
		m.Controller.SetTheme(model.Theme{Text: nextColor(textCycle, m.theme().Text)})
	case "r":
		m.ConfirmReset = true
	}
	return m, nil
}

func nextColor(cycle []string, current string) string {
	for i, c := range cycle {
		if c == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func (m Model) renderSettingsView() string {
	theme := m.theme()
	return views.RenderSettings(views.SettingsPanelData{
		Background:   theme.Background,
		Text:         theme.Text,
		ConfirmReset: m.ConfirmReset,
	})
}
