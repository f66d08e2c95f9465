package update

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"questa/internal/model"
	"questa/internal/state"
)

type View string

const (
	ViewQuests   View = "Quests"
	ViewWeek     View = "Week"
	ViewChat     View = "Chat"
	ViewSettings View = "Settings"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type KeyMap struct {
	Quests   key.Binding
	Week     key.Binding
	Chat     key.Binding
	Settings key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Disable  key.Binding
	Confirm  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quests, k.Week, k.Chat, k.Settings, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quests, k.Week, k.Chat, k.Settings},
		{k.Up, k.Down, k.Toggle, k.Disable, k.Confirm},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() KeyMap {
	return KeyMap{
		Quests:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "quests")),
		Week:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "week")),
		Chat:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "chat")),
		Settings: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "settings")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle done")),
		Disable:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "enable/disable")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type Model struct {
	Controller  *state.Controller
	Responder   state.Responder
	CurrentView View
	Status      StatusBar
	Keys        KeyMap
	HelpVisible bool
	Quitting    bool

	PickerCursor int
	QuestCursor  int
	ConfirmReset bool

	ChatThinking bool
	chatDelay    time.Duration

	chatInput     textinput.Model
	chatViewport  viewport.Model
	thinkSpinner  spinner.Model
	todayProgress progress.Model
	helpModel     help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

// ChatReplyMsg publishes a composed reply once the thinking pause elapses.
type ChatReplyMsg struct {
	Text string
}

// Options tune the TUI shell without reaching into the controller.
type Options struct {
	ChatDelay time.Duration
}

func DefaultOptions() Options {
	return Options{ChatDelay: 900 * time.Millisecond}
}

func NewModel(ctrl *state.Controller, responder state.Responder) Model {
	return NewModelWithOptions(ctrl, responder, DefaultOptions())
}

func NewModelWithOptions(ctrl *state.Controller, responder state.Responder, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "say something to your coach"
	input.CharLimit = 200
	input.Width = 48

	vp := viewport.New(52, 14)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		Controller:    ctrl,
		Responder:     responder,
		CurrentView:   ViewQuests,
		Keys:          defaultKeyMap(),
		chatDelay:     opts.ChatDelay,
		chatInput:     input,
		chatViewport:  vp,
		thinkSpinner:  sp,
		todayProgress: progress.New(progress.WithDefaultGradient()),
		helpModel:     help.New(),
	}
	m.syncChatViewport()
	return m
}

// theme reads the current display preferences from the controller.
func (m Model) theme() model.Theme {
	return m.Controller.Snapshot().Theme
}
