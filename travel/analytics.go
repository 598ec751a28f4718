package travel

import (
	"sort"
	"strconv"
)

// Budget tier thresholds in rupees.
const (
	midRangeFloor = 15000
	luxuryFloor   = 30000
)

// BudgetTiers counts destinations per price tier.
type BudgetTiers struct {
	Budget   int `json:"budget"`
	MidRange int `json:"mid_range"`
	Luxury   int `json:"luxury"`
}

// BudgetAnalysis aggregates starting prices across a listing.
type BudgetAnalysis struct {
	MinPrice int         `json:"min_price"`
	MaxPrice int         `json:"max_price"`
	AvgPrice int         `json:"avg_price"`
	Ranges   BudgetTiers `json:"budget_ranges"`
}

// AnalyzeBudget computes min/max/avg (integer floor) and tier counts.
// The second return is false when the listing is empty.
func AnalyzeBudget(dests []Destination) (BudgetAnalysis, bool) {
	if len(dests) == 0 {
		return BudgetAnalysis{}, false
	}

	a := BudgetAnalysis{
		MinPrice: dests[0].PriceFrom,
		MaxPrice: dests[0].PriceFrom,
	}
	sum := 0
	for _, d := range dests {
		p := d.PriceFrom
		sum += p
		if p < a.MinPrice {
			a.MinPrice = p
		}
		if p > a.MaxPrice {
			a.MaxPrice = p
		}
		switch {
		case p < midRangeFloor:
			a.Ranges.Budget++
		case p < luxuryFloor:
			a.Ranges.MidRange++
		default:
			a.Ranges.Luxury++
		}
	}
	a.AvgPrice = sum / len(dests)
	return a, true
}

// TopRated returns up to limit destinations ordered by descending rating.
// The sort is stable so ties keep original store order.
func TopRated(dests []Destination, limit int) []Destination {
	if limit <= 0 {
		return nil
	}
	sorted := make([]Destination, len(dests))
	copy(sorted, dests)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Rating > sorted[j].Rating
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// FormatINR renders an amount with thousands grouping for ₹ price display.
func FormatINR(amount int) string {
	s := strconv.Itoa(amount)
	neg := false
	if amount < 0 {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}
