package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"questa/internal/views"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case spinner.TickMsg:
		if m.ChatThinking {
			var cmd tea.Cmd
			m.thinkSpinner, cmd = m.thinkSpinner.Update(typed)
			return m, cmd
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			if typed.View == ViewChat {
				m.chatInput.Focus()
			}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case ChatReplyMsg:
		m.Controller.AppendAssistantMessage(typed.Text)
		m.ChatThinking = false
		m.syncChatViewport()
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	// The chat input swallows everything while focused so quest keys stay
	// typeable as message text.
	if m.CurrentView == ViewChat && m.chatInput.Focused() && keyStr != "ctrl+c" && keyStr != "esc" {
		return m.handleChatKey(msg)
	}

	switch {
	case keyStr == "ctrl+c", key.Matches(msg, m.Keys.Quit) && !m.chatInput.Focused():
		m.Quitting = true
		return m, tea.Quit
	case keyStr == "esc":
		if m.CurrentView == ViewChat {
			m.chatInput.Blur()
		}
		m.ConfirmReset = false
		return m, nil
	case key.Matches(msg, m.Keys.Help):
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case key.Matches(msg, m.Keys.Quests):
		m.CurrentView = ViewQuests
		m.chatInput.Blur()
		return m, nil
	case key.Matches(msg, m.Keys.Week):
		m.CurrentView = ViewWeek
		m.chatInput.Blur()
		return m, nil
	case key.Matches(msg, m.Keys.Chat):
		m.CurrentView = ViewChat
		m.chatInput.Focus()
		return m, nil
	case key.Matches(msg, m.Keys.Settings):
		m.CurrentView = ViewSettings
		m.chatInput.Blur()
		return m, nil
	}

	switch m.CurrentView {
	case ViewQuests:
		return m.handleQuestsKey(msg)
	case ViewChat:
		return m.handleChatKey(msg)
	case ViewSettings:
		return m.handleSettingsKey(msg)
	}
	return m, nil
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	switch m.CurrentView {
	case ViewQuests:
		leftPane = m.renderQuestsView()
	case ViewWeek:
		leftPane = m.renderWeekView()
	case ViewChat:
		leftPane = m.renderChatView()
	case ViewSettings:
		leftPane = m.renderSettingsView()
	}

	rightPane := m.renderStatusSummary()
	if m.HelpVisible {
		rightPane += "\n\n" + m.helpModel.FullHelpView(m.Keys.FullHelp())
	}

	st := m.Controller.Status()
	return views.RenderApp(views.AppData{
		Header:     fmt.Sprintf("questa | view: %s | rank: %s", m.CurrentView, st.Rank),
		LeftPane:   leftPane,
		RightPane:  rightPane,
		StatusLine: status,
		Footer:     m.helpModel.ShortHelpView(m.Keys.ShortHelp()),
	}, m.theme())
}

func isKnownView(v View) bool {
	switch v {
	case ViewQuests, ViewWeek, ViewChat, ViewSettings:
		return true
	default:
		return false
	}
}
