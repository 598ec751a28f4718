package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tripmitra/aria-backend/assistant/contract"
)

// Follow-up phrases that, combined with a last-mentioned destination, mark a
// message as contextual.
var contextualPhrases = []string{
	"show dates", "when to visit", "best time", "weather", "climate",
	"how much", "cost", "price", "budget", "itinerary", "plan",
	"tell me more", "details", "more info",
}

// Keyword rules evaluated in fixed priority order. The first matching rule
// wins; tests enumerate this precedence directly.
var intentRules = []struct {
	intent   contract.IntentType
	keywords []string
}{
	{contract.IntentItinerary, []string{"itinerary", "plan"}},
	{contract.IntentBudget, []string{"budget", "cost", "price", "money", "afford"}},
	{contract.IntentFood, []string{"food", "eat", "cuisine", "restaurant", "dish"}},
	{contract.IntentCulture, []string{"culture", "festival", "tradition", "history"}},
	{contract.IntentTiming, []string{"weather", "season", "best time", "when to visit"}},
}

// Gazetteer of destination keywords for entity extraction.
var destinationKeywords = []string{
	"delhi", "agra", "jaipur", "mumbai", "goa", "kerala", "rajasthan",
	"himalayas", "manali", "taj mahal", "backwaters", "golden triangle",
	"amritsar", "golden temple", "ladakh", "kashmir", "udaipur", "jodhpur",
}

var preferenceTags = []string{"adventure", "culture", "beach", "spiritual", "nature"}

var (
	budgetPattern   = regexp.MustCompile(`₹?(\d+(?:,\d+)*)`)
	durationPattern = regexp.MustCompile(`(\d+)\s*days?`)
)

// Classifier is the deterministic rule-based intent classifier. It is total:
// every message yields an Intent, falling through to "general".
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify derives intent and entities from the message text and the
// caller-supplied preference snapshot.
func (c *Classifier) Classify(message string, prefs contract.Preferences) contract.Intent {
	lower := strings.ToLower(message)

	it := contract.Intent{Type: contract.IntentGeneral}
	seen := map[string]bool{}
	addEntity := func(name string) {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		it.Destinations = append(it.Destinations, name)
	}

	last := strings.TrimSpace(prefs.LastMentionedDestination)
	if last != "" && containsAny(lower, contextualPhrases) {
		it.Contextual = true
		addEntity(last)
		it.Type = refineContextualIntent(lower)
	} else {
		for _, rule := range intentRules {
			if containsAny(lower, rule.keywords) {
				it.Type = rule.intent
				break
			}
		}
	}

	for _, keyword := range destinationKeywords {
		if strings.Contains(lower, keyword) {
			addEntity(keyword)
			if it.Type == contract.IntentGeneral {
				it.Type = contract.IntentDestination
			}
		}
	}

	if m := budgetPattern.FindStringSubmatch(message); m != nil {
		if v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
			it.Budget = &v
		}
	}
	if m := durationPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil {
			it.Duration = &v
		}
	}

	for _, tag := range preferenceTags {
		if strings.Contains(lower, tag) {
			it.Preferences = append(it.Preferences, tag)
		}
	}

	if it.Type == contract.IntentGeneral {
		it.Confidence = 0.5
	} else {
		it.Confidence = 1.0
	}
	return it
}

// refineContextualIntent picks the follow-up intent by matched word group,
// in timing > budget > itinerary > destination priority.
func refineContextualIntent(lower string) contract.IntentType {
	switch {
	case containsAny(lower, []string{"date", "time", "weather"}):
		return contract.IntentTiming
	case containsAny(lower, []string{"cost", "budget", "price"}):
		return contract.IntentBudget
	case containsAny(lower, []string{"plan", "itinerary"}):
		return contract.IntentItinerary
	default:
		return contract.IntentDestination
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
