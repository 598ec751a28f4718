package grounding

import (
	"strings"
	"testing"

	"github.com/tripmitra/aria-backend/assistant/contract"
	"github.com/tripmitra/aria-backend/travel"
)

func TestBuildSystemContextSections(t *testing.T) {
	t.Parallel()

	budget := 20000
	it := contract.Intent{
		Type:         contract.IntentBudget,
		Budget:       &budget,
		Destinations: []string{"goa"},
		Preferences:  []string{"beach"},
	}
	b := contract.Bundle{
		General: []travel.Destination{
			{Name: "Goa Beaches", Location: "Goa", State: "Goa", Description: "Sun and sand.", Category: travel.CategoryBeach, Rating: 4.6, PriceFrom: 10000},
		},
		BudgetMatches: []travel.Destination{
			{Name: "Goa Beaches", PriceFrom: 10000},
		},
		ByPreference: map[string][]travel.Destination{
			"beach": {{Name: "Goa Beaches", Category: travel.CategoryBeach, PriceFrom: 10000}},
		},
	}
	history := []contract.Turn{
		{Role: "user", Content: "beach holiday?"},
		{Role: "assistant", Content: "Goa is a great pick."},
	}

	out := BuildSystemContext("beach trip under 20000", it, contract.Preferences{}, b, history)

	for _, want := range []string{
		"CURRENT QUERY ANALYSIS:",
		"- Intent type: budget",
		"- Budget range: ₹20,000",
		"USER PREFERENCES:",
		"- Budget: Not specified",
		"LIVE DATABASE DESTINATIONS:",
		"Goa Beaches in Goa, Goa",
		"Budget-friendly options:",
		"Matches for beach interest:",
		"RECENT CONVERSATION:",
		"user: beach holiday?",
		"INSTRUCTIONS:",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in system context:\n%s", want, out)
		}
	}
}

func TestBuildSystemContextCapsListing(t *testing.T) {
	t.Parallel()

	var general []travel.Destination
	for i := 0; i < 15; i++ {
		general = append(general, travel.Destination{Name: "Place", Location: "X", State: "Y"})
	}
	out := BuildSystemContext("hi", contract.Intent{Type: contract.IntentGeneral}, contract.Preferences{}, contract.Bundle{General: general}, nil)

	if got := strings.Count(out, "- Place in X, Y"); got != 10 {
		t.Fatalf("expected listing capped at 10, got %d", got)
	}
}

func TestLastTurnsWindow(t *testing.T) {
	t.Parallel()

	history := []contract.Turn{
		{Role: "user", Content: "1"}, {Role: "assistant", Content: "2"},
		{Role: "user", Content: "3"}, {Role: "assistant", Content: "4"},
		{Role: "user", Content: "5"}, {Role: "assistant", Content: "6"},
		{Role: "user", Content: "7"},
	}
	window := LastTurns(history, 5)
	if len(window) != 5 {
		t.Fatalf("expected 5 turns, got %d", len(window))
	}
	if window[0].Content != "3" || window[4].Content != "7" {
		t.Fatalf("unexpected window: %v", window)
	}
}
