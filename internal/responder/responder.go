// Package responder produces canned chat replies from ordered pattern rules.
// There is no model behind it; every keyword path is deterministic and only
// the fallback shuffles.
package responder

import (
	"math/rand"
	"strings"
	"time"

	"questa/internal/model"
)

// UsageText is the fixed reply for help requests.
const UsageText = "I can cheer you on while you work through your daily quests. " +
	"Try asking about exercise or vocabulary, tell me about your day, " +
	"or just check quests off and watch your rank climb."

const quotePrefixLimit = 40

var greetingWords = []string{"hello", "hi", "hey", "good morning", "good evening"}

var weatherWords = []string{"weather", "rain", "raining", "snow", "cold outside", "hot outside"}

var fallbackTips = []string{
	"small steps beat big plans",
	"done is better than perfect",
	"stack a new habit onto an old one",
	"two minutes of starting is the hardest part",
	"track it or it didn't happen",
	"rest is part of the program",
	"tomorrow's quest starts with tonight's sleep",
}

// Responder answers one input at a time. The rand source only feeds the
// fallback path; keyword replies never vary.
type Responder struct {
	rng *rand.Rand
}

func New() *Responder {
	return NewWithSeed(time.Now().UnixNano())
}

func NewWithSeed(seed int64) *Responder {
	return &Responder{rng: rand.New(rand.NewSource(seed))}
}

// Respond maps input and the prior transcript to a reply. Rules are checked
// in order and the first match wins.
func (r *Responder) Respond(input string, history []model.Message) string {
	text := strings.TrimSpace(input)
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, []string{"help", "usage", "what can you do"}):
		return UsageText
	case containsAny(lower, greetingWords):
		return "Hey! Good to see you. How are today's quests going?"
	case containsAny(lower, weatherWords):
		return "Sounds like an indoor kind of day. You could stretch for 10 minutes, " +
			"review your flashcards, or tidy one small corner instead."
	case strings.Contains(lower, "vocabulary") || strings.Contains(lower, "vocab"):
		return "For vocabulary: 1) pick 5 new words, 2) write one sentence with each, " +
			"3) review them again before bed."
	case containsAny(lower, []string{"exercise", "workout", "work out"}):
		return "For exercise: 1) warm up for 5 minutes, 2) do one focused set, " +
			"3) finish with a stretch. Short and repeatable wins."
	case strings.HasSuffix(text, "?"):
		return "Good question. You asked \"" + truncateRunes(lastUserText(history, text), quotePrefixLimit) +
			"\" — honestly, showing up daily matters more than the details."
	default:
		return r.fallback(text)
	}
}

// fallback joins a randomized subset of the tip pool, sized by input length
// and bounded to [3,5].
func (r *Responder) fallback(input string) string {
	n := len(input) / 8
	if n < 3 {
		n = 3
	}
	if n > 5 {
		n = 5
	}
	tips := make([]string, len(fallbackTips))
	copy(tips, fallbackTips)
	r.rng.Shuffle(len(tips), func(i, j int) { tips[i], tips[j] = tips[j], tips[i] })
	return "Remember: " + strings.Join(tips[:n], ", ") + "."
}

func containsAny(text string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

// lastUserText returns the most recent user message, falling back to the
// current input when the transcript has none.
func lastUserText(history []model.Message, current string) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == model.RoleUser {
			return history[i].Text
		}
	}
	return current
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
