package responder

import (
	"strings"
	"testing"
	"time"

	"questa/internal/model"
)

func TestHelpIsDeterministic(t *testing.T) {
	r := New()
	for i := 0; i < 3; i++ {
		if got := r.Respond("help", nil); got != UsageText {
			t.Fatalf("help reply #%d = %q, want fixed usage text", i, got)
		}
	}
	if got := r.Respond("  HELP me please  ", nil); got != UsageText {
		t.Fatalf("help matching should be case-insensitive, got %q", got)
	}
}

func TestGreetingBeatsLaterRules(t *testing.T) {
	r := NewWithSeed(1)
	got := r.Respond("hello, what about exercise?", nil)
	if !strings.Contains(got, "Hey!") {
		t.Fatalf("greeting rule should win by order, got %q", got)
	}
}

func TestWeatherSuggestsIndoorActivities(t *testing.T) {
	r := NewWithSeed(1)
	got := r.Respond("it keeps raining all day", nil)
	if !strings.Contains(got, "indoor") {
		t.Fatalf("expected indoor suggestion, got %q", got)
	}
}

func TestDomainKeywordsGiveStructuredSteps(t *testing.T) {
	r := NewWithSeed(1)
	vocab := r.Respond("how do I grow my vocabulary", nil)
	if !strings.Contains(vocab, "1)") || !strings.Contains(vocab, "3)") {
		t.Fatalf("expected numbered steps, got %q", vocab)
	}
	workout := r.Respond("best workout plan", nil)
	if !strings.Contains(workout, "warm up") {
		t.Fatalf("expected exercise steps, got %q", workout)
	}
}

func TestQuestionEchoesLastUserMessage(t *testing.T) {
	r := NewWithSeed(1)
	history := []model.Message{
		{Role: model.RoleUser, Text: "should I skip leg day", At: time.Now()},
		{Role: model.RoleAssistant, Text: "never", At: time.Now()},
	}
	got := r.Respond("so is it fine?", history)
	if !strings.Contains(got, `"should I skip leg day"`) {
		t.Fatalf("expected echo of most recent user message, got %q", got)
	}
}

func TestQuestionEchoTruncatesLongMessage(t *testing.T) {
	r := NewWithSeed(1)
	long := strings.Repeat("a", 80)
	history := []model.Message{{Role: model.RoleUser, Text: long, At: time.Now()}}
	got := r.Respond("right?", history)
	if strings.Contains(got, long) {
		t.Fatalf("echo should truncate to a bounded prefix")
	}
	if !strings.Contains(got, strings.Repeat("a", quotePrefixLimit)+"…") {
		t.Fatalf("expected %d-rune prefix with ellipsis, got %q", quotePrefixLimit, got)
	}
}

func TestFallbackTipCountScalesWithinBounds(t *testing.T) {
	r := NewWithSeed(42)

	short := r.Respond("ok", nil)
	if got := tipCount(short); got != 3 {
		t.Fatalf("short input should yield 3 tips, got %d (%q)", got, short)
	}

	long := r.Respond(strings.Repeat("tell me more ", 10), nil)
	if got := tipCount(long); got != 5 {
		t.Fatalf("long input should cap at 5 tips, got %d (%q)", got, long)
	}

	mid := r.Respond("a random message of medium length", nil)
	if got := tipCount(mid); got < 3 || got > 5 {
		t.Fatalf("tip count out of [3,5]: %d (%q)", got, mid)
	}
}

func TestFallbackDrawsFromTipPool(t *testing.T) {
	r := NewWithSeed(7)
	got := r.Respond("zzz", nil)
	body := strings.TrimSuffix(strings.TrimPrefix(got, "Remember: "), ".")
	for _, tip := range strings.Split(body, ", ") {
		if !poolContains(tip) {
			t.Fatalf("tip %q not in fixed pool", tip)
		}
	}
}

func tipCount(reply string) int {
	body := strings.TrimSuffix(strings.TrimPrefix(reply, "Remember: "), ".")
	if body == "" {
		return 0
	}
	return len(strings.Split(body, ", "))
}

func poolContains(tip string) bool {
	for _, t := range fallbackTips {
		if t == tip {
			return true
		}
	}
	return false
}
