package views

import (
	"fmt"
	"strings"
)

type PickerItemData struct {
	Label    string
	Selected bool
	Cursor   bool
}

type PickerPanelData struct {
	Items []PickerItemData
}

// RenderCategoryPicker draws the pre-plan onboarding list.
func RenderCategoryPicker(data PickerPanelData) string {
	var b strings.Builder
	b.WriteString("Pick your growth areas\n\n")
	for _, item := range data.Items {
		cursor := "  "
		if item.Cursor {
			cursor = "> "
		}
		mark := "[ ]"
		if item.Selected {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, mark, item.Label)
	}
	b.WriteString("\nspace select | enter start the week")
	return b.String()
}

type QuestItemData struct {
	Title    string
	Category string
	Points   int
	Done     bool
	Enabled  bool
	Cursor   bool
}

type QuestPanelData struct {
	Day         int
	Items       []QuestItemData
	ProgressBar string
}

// RenderQuestList draws one day's checklist.
func RenderQuestList(data QuestPanelData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Day %d quests\n\n", data.Day)
	if len(data.Items) == 0 {
		b.WriteString("nothing scheduled today\n")
	}
	for _, item := range data.Items {
		cursor := "  "
		if item.Cursor {
			cursor = "> "
		}
		mark := "[ ]"
		switch {
		case !item.Enabled:
			mark = "[-]"
		case item.Done:
			mark = "[x]"
		}
		title := item.Title
		if !item.Enabled {
			title += " (off)"
		}
		fmt.Fprintf(&b, "%s%s %s  · %s · %dpt\n", cursor, mark, title, item.Category, item.Points)
	}
	if data.ProgressBar != "" {
		b.WriteString("\n" + data.ProgressBar)
	}
	return b.String()
}

type WeekDayData struct {
	Day       int
	Completed int
	Enabled   int
	IsToday   bool
}

type WeekPanelData struct {
	Days          []WeekDayData
	WeekCompleted int
}

// RenderWeekGrid draws the 7-day overview.
func RenderWeekGrid(data WeekPanelData) string {
	var b strings.Builder
	b.WriteString("This week\n\n")
	for _, d := range data.Days {
		marker := "   "
		if d.IsToday {
			marker = "  ← today"
		}
		fmt.Fprintf(&b, "day %d  %d/%d done%s\n", d.Day, d.Completed, d.Enabled, marker)
	}
	fmt.Fprintf(&b, "\nweek total: %d quests completed", data.WeekCompleted)
	return b.String()
}

type ChatLineData struct {
	FromUser bool
	Text     string
}

type ChatPanelData struct {
	Lines     []ChatLineData
	InputView string
	Thinking  string
}

// RenderChat draws the transcript above the input line. The transcript is
// markdown so replies keep their numbered-step formatting.
func RenderChat(data ChatPanelData) string {
	var md strings.Builder
	for _, line := range data.Lines {
		who := "**coach**"
		if line.FromUser {
			who = "**you**"
		}
		fmt.Fprintf(&md, "%s: %s\n\n", who, line.Text)
	}
	transcript := RenderMarkdown(md.String())

	var b strings.Builder
	b.WriteString("Coach\n\n")
	if transcript != "" {
		b.WriteString(transcript + "\n\n")
	}
	if data.Thinking != "" {
		b.WriteString(data.Thinking + " thinking…\n\n")
	}
	b.WriteString(data.InputView)
	return b.String()
}

type SettingsPanelData struct {
	Background   string
	Text         string
	ConfirmReset bool
}

// RenderSettings draws theme controls and the reset affordance.
func RenderSettings(data SettingsPanelData) string {
	var b strings.Builder
	b.WriteString("Settings\n\n")
	fmt.Fprintf(&b, "background color: %s  (b to cycle)\n", data.Background)
	fmt.Fprintf(&b, "text color:       %s  (t to cycle)\n", data.Text)
	b.WriteString("\n")
	if data.ConfirmReset {
		b.WriteString("reset everything? press y to confirm, any other key to cancel\n")
	} else {
		b.WriteString("r  reset all progress and start over\n")
	}
	return b.String()
}

type StatusPanelData struct {
	Score      int
	Rank       string
	ToNextRank int
	TopRank    bool
}

// RenderStatusSummary draws the score/rank block shown on the right pane.
func RenderStatusSummary(data StatusPanelData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "score: %d\nrank:  %s\n", data.Score, data.Rank)
	if data.TopRank {
		b.WriteString("top rank reached\n")
	} else {
		fmt.Fprintf(&b, "next rank in %d points\n", data.ToNextRank)
	}
	return b.String()
}
