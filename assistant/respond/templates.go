package respond

import (
	"fmt"
	"strings"

	"github.com/tripmitra/aria-backend/assistant/contract"
	"github.com/tripmitra/aria-backend/travel"
)

const (
	defaultBudget   = 50000
	defaultDuration = 7

	// Budget split percentages: accommodation / food & transport / activities.
	accommodationPct = 35
	foodTransportPct = 50
	activitiesPct    = 15

	maxListedDestinations = 3
	maxItineraryLegs      = 2
)

// renderLocal dispatches on intent type to one of the seven deterministic
// template renderers.
func renderLocal(it contract.Intent, prefs contract.Preferences, b contract.Bundle) string {
	switch it.Type {
	case contract.IntentDestination:
		return renderDestination(it, b)
	case contract.IntentBudget:
		return renderBudget(it, prefs, b)
	case contract.IntentItinerary:
		return renderItinerary(it, prefs, b)
	case contract.IntentFood:
		return renderFood()
	case contract.IntentCulture:
		return renderCulture()
	case contract.IntentTiming:
		return renderTiming()
	default:
		return renderGeneral(b)
	}
}

// renderDestination prefers entity-matched destinations; with none it shows
// the top three by rating.
func renderDestination(it contract.Intent, b contract.Bundle) string {
	targets := b.EntityMatches
	if len(targets) == 0 && len(it.Destinations) > 0 {
		for _, d := range b.General {
			if matchesEntity(d, it.Destinations) {
				targets = append(targets, d)
			}
		}
	}

	if len(targets) > 0 {
		d := targets[0]
		return fmt.Sprintf(`🏛️ **%s** in %s
💰 Starting at: ₹%s | ⭐ %.1f/5.0 | 🏷️ %s

**Why Visit:**
%s

**💡 Travel Tips:**
%s

Need timing or budget details? 🎯`,
			d.Name, d.Location,
			travel.FormatINR(d.PriceFrom), d.Rating, d.Category,
			truncateRunes(d.Description, 120),
			categoryTips(d.Category))
	}

	top := b.TopRated
	if len(top) == 0 {
		top = b.General
	}
	return fmt.Sprintf(`🇮🇳 **Top destinations:**

%s

Which interests you? 🎯`, bulletList(top, maxListedDestinations))
}

// renderBudget lists budget matches and splits the figure into the fixed
// 35/50/15 percentages with integer truncation.
func renderBudget(it contract.Intent, prefs contract.Preferences, b contract.Bundle) string {
	budget := defaultBudget
	if it.Budget != nil {
		budget = *it.Budget
	} else if prefs.Budget != nil {
		budget = *prefs.Budget
	}
	duration := defaultDuration
	if it.Duration != nil {
		duration = *it.Duration
	} else if prefs.Duration != nil {
		duration = *prefs.Duration
	}

	matches := b.BudgetMatches
	if len(matches) == 0 {
		for _, d := range b.General {
			if d.PriceFrom <= budget {
				matches = append(matches, d)
			}
			if len(matches) == maxListedDestinations {
				break
			}
		}
	}

	listing := "Consider increasing budget or off-season travel."
	if len(matches) > 0 {
		listing = bulletList(matches, maxListedDestinations)
	}

	return fmt.Sprintf(`💰 **Budget ₹%s for %d days:**

%s

**💡 Budget breakdown:**
• Accommodation: %d%% (₹%s)
• Food & Transport: %d%% (₹%s)
• Activities: %d%% (₹%s)

Which destination interests you? 🎯`,
		travel.FormatINR(budget), duration,
		listing,
		accommodationPct, travel.FormatINR(budget*accommodationPct/100),
		foodTransportPct, travel.FormatINR(budget*foodTransportPct/100),
		activitiesPct, travel.FormatINR(budget*activitiesPct/100))
}

// renderItinerary partitions the chosen destinations across the requested
// duration with integer day-range division, at most two legs.
func renderItinerary(it contract.Intent, prefs contract.Preferences, b contract.Bundle) string {
	duration := defaultDuration
	if it.Duration != nil {
		duration = *it.Duration
	} else if prefs.Duration != nil {
		duration = *prefs.Duration
	}

	suitable := b.BudgetMatches
	if len(suitable) == 0 {
		suitable = b.General
	}
	if len(suitable) == 0 {
		return "Tell me your budget and interests for a perfect itinerary! 🎯"
	}
	if len(suitable) > maxItineraryLegs {
		suitable = suitable[:maxItineraryLegs]
	}

	daysPerLeg := duration / len(suitable)
	if daysPerLeg < 1 {
		daysPerLeg = 1
	}

	legs := make([]string, 0, len(suitable))
	for i, d := range suitable {
		startDay := i*daysPerLeg + 1
		endDay := duration
		if i == 0 && len(suitable) > 1 {
			endDay = daysPerLeg
			if endDay > duration {
				endDay = duration
			}
		}
		legs = append(legs, fmt.Sprintf(`**Days %d-%d: %s**
₹%s+ | ⭐%.1f | %s`,
			startDay, endDay, d.Name,
			travel.FormatINR(d.PriceFrom), d.Rating, d.Category))
	}

	return fmt.Sprintf(`📅 **%d-day itinerary:**

%s

**💡 Pro tip:** Book trains early for better prices!

Need specific destination details? 🎯`, duration, strings.Join(legs, "\n\n"))
}

// renderGeneral prefers featured destinations, else the head of the listing.
func renderGeneral(b contract.Bundle) string {
	var featured []travel.Destination
	for _, d := range b.General {
		if d.Featured {
			featured = append(featured, d)
		}
		if len(featured) == maxListedDestinations {
			break
		}
	}
	if len(featured) == 0 {
		featured = b.General
	}

	return fmt.Sprintf(`🇮🇳 **Featured destinations:**

%s

**🤖 I can help with:**
• Destination details & prices
• Budget planning
• Itinerary creation
• Best travel times

What interests you? 🎯`, bulletList(featured, maxListedDestinations))
}

func renderFood() string {
	return `🍽️ **Indian cuisine highlights:**

**🌶️ North:** Butter Chicken, Naan, Kebabs
**🥥 South:** Dosa, Idli, Coconut Curry
**🦐 Coastal:** Fish Curry, Seafood

**💡 Food tips:**
• Try thalis for variety
• Street food at busy places
• Start mild, build spice tolerance

Which region's food interests you? 🍛`
}

func renderCulture() string {
	return `🎭 **Cultural experiences:**

**🎊 Festivals:** Diwali (Oct-Nov), Holi (Mar)
**🏛️ Heritage:** Rajasthan palaces, Kerala arts
**🎨 Crafts:** Block printing, weaving

**💡 Culture tips:**
• Dress modestly at temples
• Ask before photographing
• Learn basic local greetings

Which cultural aspect interests you? 🪔`
}

func renderTiming() string {
	return `🌤️ **India travel timing:**

**🏙️ North (Delhi, Rajasthan):** Oct-Mar
**🏝️ South (Kerala, Goa):** Nov-Feb
**🏔️ Mountains:** Mar-Jun, Sep-Nov
**🏖️ Beaches:** Nov-Feb

Which region interests you? 🎯`
}

// categoryTips returns the fixed tip block for a destination category.
func categoryTips(c travel.Category) string {
	switch c {
	case travel.CategoryHeritage:
		return "• Visit early morning\n• Hire local guides\n• Respect photography rules"
	case travel.CategoryNature:
		return "• Comfortable shoes essential\n• Best in pleasant weather\n• Book eco-stays"
	case travel.CategoryBeach:
		return "• Sunscreen mandatory\n• Try local seafood\n• Respect dress codes"
	case travel.CategorySpiritual:
		return "• Dress modestly\n• Remove shoes at temples\n• Maintain silence"
	case travel.CategoryAdventure:
		return "• Book activities ahead\n• Check weather\n• Follow safety rules"
	default:
		return "• Plan ahead\n• Try local experiences\n• Stay flexible"
	}
}

func bulletList(dests []travel.Destination, limit int) string {
	if len(dests) > limit {
		dests = dests[:limit]
	}
	lines := make([]string, 0, len(dests))
	for _, d := range dests {
		lines = append(lines, fmt.Sprintf("• **%s** - ₹%s+ | ⭐%.1f",
			d.Name, travel.FormatINR(d.PriceFrom), d.Rating))
	}
	return strings.Join(lines, "\n")
}

func matchesEntity(d travel.Destination, entities []string) bool {
	name := strings.ToLower(d.Name)
	location := strings.ToLower(d.Location)
	for _, e := range entities {
		e = strings.ToLower(e)
		if strings.Contains(name, e) || strings.Contains(location, e) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
