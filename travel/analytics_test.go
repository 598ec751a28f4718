package travel

import "testing"

func pricedDestinations(prices ...int) []Destination {
	out := make([]Destination, 0, len(prices))
	for i, p := range prices {
		out = append(out, Destination{ID: int64(i + 1), PriceFrom: p})
	}
	return out
}

func TestAnalyzeBudgetAggregates(t *testing.T) {
	t.Parallel()

	analysis, ok := AnalyzeBudget(pricedDestinations(8000, 12000, 15000, 18000, 10000, 11000))
	if !ok {
		t.Fatal("expected analysis for non-empty listing")
	}
	if analysis.MinPrice != 8000 {
		t.Fatalf("min: expected 8000, got %d", analysis.MinPrice)
	}
	if analysis.MaxPrice != 18000 {
		t.Fatalf("max: expected 18000, got %d", analysis.MaxPrice)
	}
	if analysis.AvgPrice != 12333 {
		t.Fatalf("avg: expected 12333, got %d", analysis.AvgPrice)
	}
	if analysis.Ranges.Budget != 4 {
		t.Fatalf("budget tier: expected 4, got %d", analysis.Ranges.Budget)
	}
	if analysis.Ranges.MidRange != 2 {
		t.Fatalf("mid-range tier: expected 2, got %d", analysis.Ranges.MidRange)
	}
	if analysis.Ranges.Luxury != 0 {
		t.Fatalf("luxury tier: expected 0, got %d", analysis.Ranges.Luxury)
	}
}

func TestAnalyzeBudgetEmpty(t *testing.T) {
	t.Parallel()

	if _, ok := AnalyzeBudget(nil); ok {
		t.Fatal("expected ok=false for empty listing")
	}
}

func TestTopRatedStableTies(t *testing.T) {
	t.Parallel()

	dests := []Destination{
		{ID: 1, Rating: 4.5},
		{ID: 2, Rating: 4.8},
		{ID: 3, Rating: 4.8},
		{ID: 4, Rating: 4.9},
	}

	top := TopRated(dests, 3)
	if len(top) != 3 {
		t.Fatalf("expected 3 results, got %d", len(top))
	}
	if top[0].ID != 4 {
		t.Fatalf("expected id 4 first, got %d", top[0].ID)
	}
	// Ties keep original store order.
	if top[1].ID != 2 || top[2].ID != 3 {
		t.Fatalf("unexpected tie order: %d, %d", top[1].ID, top[2].ID)
	}
}

func TestFormatINR(t *testing.T) {
	t.Parallel()

	cases := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		25000:   "25,000",
		1234567: "1,234,567",
	}
	for amount, want := range cases {
		if got := FormatINR(amount); got != want {
			t.Fatalf("FormatINR(%d): expected %s, got %s", amount, want, got)
		}
	}
}
