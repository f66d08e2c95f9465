package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"questa/internal/model"
	"questa/internal/views"
)

// handleChatKey routes keys into the chat input and submits on enter. The
// reply is composed immediately but published only after the thinking pause,
// a cosmetic delay with no correctness weight.
func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		text := strings.TrimSpace(m.chatInput.Value())
		if text == "" || m.ChatThinking {
			return m, nil
		}
		m.Controller.AppendUserMessage(text)
		reply := m.Controller.ComposeReply(m.Responder, text)
		m.chatInput.Reset()
		m.ChatThinking = true
		m.syncChatViewport()
		delay := m.chatDelay
		return m, tea.Batch(
			m.thinkSpinner.Tick,
			tea.Tick(delay, func(time.Time) tea.Msg { return ChatReplyMsg{Text: reply} }),
		)
	}

	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

func (m *Model) syncChatViewport() {
	m.chatViewport.SetContent(m.renderTranscript())
	m.chatViewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	snapshot := m.Controller.Snapshot()
	lines := make([]views.ChatLineData, 0, len(snapshot.Chat))
	for _, msg := range snapshot.Chat {
		lines = append(lines, views.ChatLineData{
			FromUser: msg.Role == model.RoleUser,
			Text:     msg.Text,
		})
	}
	thinking := ""
	if m.ChatThinking {
		thinking = m.thinkSpinner.View()
	}
	return views.RenderChat(views.ChatPanelData{
		Lines:     lines,
		InputView: m.chatInput.View(),
		Thinking:  thinking,
	})
}

func (m Model) renderChatView() string {
	// Rebuild instead of reading the cached viewport content: value-receiver
	// updates mean the cache can lag one message behind.
	vp := m.chatViewport
	vp.SetContent(m.renderTranscript())
	vp.GotoBottom()
	return vp.View()
}
