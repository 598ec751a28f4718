package intent

import (
	"testing"

	"github.com/tripmitra/aria-backend/assistant/contract"
)

func TestClassifyItineraryWinsOverBudget(t *testing.T) {
	t.Parallel()

	it := NewClassifier().Classify("Plan a trip within my budget", contract.Preferences{})
	if it.Type != contract.IntentItinerary {
		t.Fatalf("expected itinerary, got %s", it.Type)
	}
	if it.Confidence != 1.0 {
		t.Fatalf("expected confidence 1.0, got %v", it.Confidence)
	}
}

func TestClassifyKeywordPriority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		message string
		want    contract.IntentType
	}{
		{"How much does it cost?", contract.IntentBudget},
		{"Where can I eat good food?", contract.IntentFood},
		{"Tell me about local festivals", contract.IntentCulture},
		{"What is the best time to go?", contract.IntentTiming},
		{"Hello there", contract.IntentGeneral},
	}
	c := NewClassifier()
	for _, tc := range cases {
		it := c.Classify(tc.message, contract.Preferences{})
		if it.Type != tc.want {
			t.Fatalf("%q: expected %s, got %s", tc.message, tc.want, it.Type)
		}
	}
}

func TestClassifyGeneralConfidence(t *testing.T) {
	t.Parallel()

	it := NewClassifier().Classify("Hi", contract.Preferences{})
	if it.Type != contract.IntentGeneral {
		t.Fatalf("expected general, got %s", it.Type)
	}
	if it.Confidence != 0.5 {
		t.Fatalf("expected confidence 0.5, got %v", it.Confidence)
	}
}

func TestClassifyExtractsDestinations(t *testing.T) {
	t.Parallel()

	it := NewClassifier().Classify("Should I visit Goa or Kerala?", contract.Preferences{})
	if it.Type != contract.IntentDestination {
		t.Fatalf("expected destination, got %s", it.Type)
	}
	if len(it.Destinations) != 2 || it.Destinations[0] != "goa" || it.Destinations[1] != "kerala" {
		t.Fatalf("unexpected entities: %v", it.Destinations)
	}
}

func TestClassifyContextualFollowUp(t *testing.T) {
	t.Parallel()

	prefs := contract.Preferences{LastMentionedDestination: "Kerala"}
	it := NewClassifier().Classify("show dates", prefs)

	if !it.Contextual {
		t.Fatal("expected contextual intent")
	}
	if it.Type != contract.IntentTiming {
		t.Fatalf("expected timing, got %s", it.Type)
	}
	if len(it.Destinations) != 1 || it.Destinations[0] != "Kerala" {
		t.Fatalf("unexpected entities: %v", it.Destinations)
	}
}

func TestClassifyContextualNeedsLastDestination(t *testing.T) {
	t.Parallel()

	it := NewClassifier().Classify("show dates", contract.Preferences{})
	if it.Contextual {
		t.Fatal("contextual must require a last mentioned destination")
	}
}

func TestClassifyContextualEntityDedup(t *testing.T) {
	t.Parallel()

	prefs := contract.Preferences{LastMentionedDestination: "goa"}
	it := NewClassifier().Classify("tell me more about goa", prefs)
	if len(it.Destinations) != 1 {
		t.Fatalf("expected deduplicated entity list, got %v", it.Destinations)
	}
}

func TestClassifyBudgetExtraction(t *testing.T) {
	t.Parallel()

	it := NewClassifier().Classify("Plan a trip for ₹25,000", contract.Preferences{})
	if it.Budget == nil || *it.Budget != 25000 {
		t.Fatalf("expected budget 25000, got %v", it.Budget)
	}
}

func TestClassifyDurationExtraction(t *testing.T) {
	t.Parallel()

	it := NewClassifier().Classify("a 7 days trip", contract.Preferences{})
	if it.Duration == nil || *it.Duration != 7 {
		t.Fatalf("expected duration 7, got %v", it.Duration)
	}
}

func TestClassifyPreferenceTags(t *testing.T) {
	t.Parallel()

	it := NewClassifier().Classify("I love adventure and beach holidays", contract.Preferences{})
	if len(it.Preferences) != 2 || it.Preferences[0] != "adventure" || it.Preferences[1] != "beach" {
		t.Fatalf("unexpected preferences: %v", it.Preferences)
	}
}
