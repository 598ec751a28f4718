package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/tripmitra/aria-backend/assistant/contract"
	openaix "github.com/tripmitra/aria-backend/pkg/openai"
)

type fakeCompletion struct {
	reply string
	err   error
	calls int
}

func (f *fakeCompletion) Complete(_ context.Context, _ openaix.Request) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestAnalyzeParsesModelJSON(t *testing.T) {
	t.Parallel()

	fake := &fakeCompletion{reply: `{"intent_type": "budget", "destinations": ["Goa"], "budget_range": 20000, "duration": 5, "preferences": ["beach"], "contextual": false, "confidence": 0.9}`}
	a := NewAnalyzer(fake, nil)

	it := a.Analyze(context.Background(), "Trip to Goa under 20000 for 5 days", contract.Preferences{})
	if it.Type != contract.IntentBudget {
		t.Fatalf("expected budget, got %s", it.Type)
	}
	if it.Budget == nil || *it.Budget != 20000 {
		t.Fatalf("expected budget 20000, got %v", it.Budget)
	}
	if it.Duration == nil || *it.Duration != 5 {
		t.Fatalf("expected duration 5, got %v", it.Duration)
	}
	if len(it.Destinations) != 1 || it.Destinations[0] != "Goa" {
		t.Fatalf("unexpected entities: %v", it.Destinations)
	}
	if it.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", it.Confidence)
	}
}

func TestAnalyzeStripsCodeFence(t *testing.T) {
	t.Parallel()

	fake := &fakeCompletion{reply: "```json\n{\"intent_type\": \"food\"}\n```"}
	a := NewAnalyzer(fake, nil)

	it := a.Analyze(context.Background(), "street food in Delhi", contract.Preferences{})
	if it.Type != contract.IntentFood {
		t.Fatalf("expected food, got %s", it.Type)
	}
}

func TestAnalyzeFallsBackOnGarbage(t *testing.T) {
	t.Parallel()

	fake := &fakeCompletion{reply: "I think you want an itinerary!"}
	a := NewAnalyzer(fake, nil)

	it := a.Analyze(context.Background(), "How much does Goa cost?", contract.Preferences{})
	if fake.calls != 1 {
		t.Fatalf("expected one completion call, got %d", fake.calls)
	}
	// Rule classifier takes over wholesale.
	if it.Type != contract.IntentBudget {
		t.Fatalf("expected rule fallback to budget, got %s", it.Type)
	}
}

func TestAnalyzeFallsBackOnUnknownIntentType(t *testing.T) {
	t.Parallel()

	fake := &fakeCompletion{reply: `{"intent_type": "shopping"}`}
	a := NewAnalyzer(fake, nil)

	it := a.Analyze(context.Background(), "plan my week", contract.Preferences{})
	if it.Type != contract.IntentItinerary {
		t.Fatalf("expected rule fallback to itinerary, got %s", it.Type)
	}
}

func TestAnalyzeFallsBackOnCompletionError(t *testing.T) {
	t.Parallel()

	fake := &fakeCompletion{err: errors.New("upstream unavailable")}
	a := NewAnalyzer(fake, nil)

	it := a.Analyze(context.Background(), "best time for kerala", contract.Preferences{})
	if it.Type != contract.IntentTiming {
		t.Fatalf("expected rule fallback to timing, got %s", it.Type)
	}
	if len(it.Destinations) != 1 || it.Destinations[0] != "kerala" {
		t.Fatalf("unexpected entities: %v", it.Destinations)
	}
}

func TestAnalyzeWithoutCompletionUsesRules(t *testing.T) {
	t.Parallel()

	a := NewAnalyzer(nil, NewClassifier())
	it := a.Analyze(context.Background(), "plan a trip to jaipur", contract.Preferences{})
	if it.Type != contract.IntentItinerary {
		t.Fatalf("expected itinerary, got %s", it.Type)
	}
}

func TestStripCodeFence(t *testing.T) {
	t.Parallel()

	if got := stripCodeFence("{\"a\":1}"); got != `{"a":1}` {
		t.Fatalf("plain JSON mangled: %s", got)
	}
	if got := stripCodeFence("```\n{}\n```"); got != "{}" {
		t.Fatalf("bare fence not stripped: %s", got)
	}
}
