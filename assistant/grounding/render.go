package grounding

import (
	"fmt"
	"strings"

	"github.com/tripmitra/aria-backend/assistant/contract"
	"github.com/tripmitra/aria-backend/assistant/prompt"
	"github.com/tripmitra/aria-backend/travel"
)

const (
	contextListingCap = 10
	excerptCap        = 3
	historyWindow     = 5
	descriptionCap    = 100
)

// BuildSystemContext renders the persona, the query analysis, the preference
// snapshot, the live listing, the relevant excerpts, and the trailing
// conversation window into the single grounding string sent as the system
// message.
func BuildSystemContext(message string, it contract.Intent, prefs contract.Preferences, b contract.Bundle, history []contract.Turn) string {
	var sb strings.Builder

	sb.WriteString(prompt.Persona())
	sb.WriteString("\n\nCURRENT QUERY ANALYSIS:\n")
	fmt.Fprintf(&sb, "- User message: %q\n", message)
	fmt.Fprintf(&sb, "- Intent type: %s\n", it.Type)
	fmt.Fprintf(&sb, "- Contextual query: %t\n", it.Contextual)
	fmt.Fprintf(&sb, "- Destinations mentioned: %s\n", joinOrNone(it.Destinations))
	fmt.Fprintf(&sb, "- Budget range: %s\n", intOrUnspecified(it.Budget, "₹"))
	fmt.Fprintf(&sb, "- Duration: %s days\n", intOrUnspecified(it.Duration, ""))
	fmt.Fprintf(&sb, "- Preferences: %s\n", joinOrNone(it.Preferences))

	sb.WriteString("\nUSER PREFERENCES:\n")
	fmt.Fprintf(&sb, "- Budget: %s\n", intOrUnspecified(prefs.Budget, "₹"))
	fmt.Fprintf(&sb, "- Duration: %s days\n", intOrUnspecified(prefs.Duration, ""))
	fmt.Fprintf(&sb, "- Interests: %s\n", joinOrNone(prefs.Interests))
	last := prefs.LastMentionedDestination
	if last == "" {
		last = "None"
	}
	fmt.Fprintf(&sb, "- Last mentioned destination: %s\n", last)

	sb.WriteString("\nLIVE DATABASE DESTINATIONS:\n")
	for _, d := range capList(b.General, contextListingCap) {
		fmt.Fprintf(&sb, "- %s in %s, %s: %s (₹%s+ | Rating: %.1f | Category: %s)\n",
			d.Name, d.Location, d.State,
			truncate(d.Description, descriptionCap),
			travel.FormatINR(d.PriceFrom), d.Rating, d.Category)
	}

	if len(b.BudgetMatches) > 0 {
		sb.WriteString("\nBudget-friendly options:\n")
		for _, d := range capList(b.BudgetMatches, excerptCap) {
			fmt.Fprintf(&sb, "- %s: ₹%s+\n", d.Name, travel.FormatINR(d.PriceFrom))
		}
	}
	if len(b.EntityMatches) > 0 {
		sb.WriteString("\nSpecific destinations found:\n")
		for _, d := range capList(b.EntityMatches, excerptCap) {
			fmt.Fprintf(&sb, "- %s in %s\n", d.Name, d.Location)
		}
	}
	for _, pref := range it.Preferences {
		listing := b.ByPreference[pref]
		if len(listing) == 0 {
			continue
		}
		fmt.Fprintf(&sb, "\nMatches for %s interest:\n", pref)
		for _, d := range capList(listing, excerptCap) {
			fmt.Fprintf(&sb, "- %s (%s): ₹%s+\n", d.Name, d.Category, travel.FormatINR(d.PriceFrom))
		}
	}

	sb.WriteString("\nRECENT CONVERSATION:\n")
	for _, turn := range LastTurns(history, historyWindow) {
		fmt.Fprintf(&sb, "%s: %s\n", turn.Role, turn.Content)
	}

	sb.WriteString(`
INSTRUCTIONS:
- Follow the exact format specified in the persona
- Be context-aware and remember previous mentions
- Keep responses concise (under 100 words) unless more details are requested
- Always include real data from the destination listing above
- Format prices as ₹ with thousands grouping
- If this is a contextual query, refer to the previously mentioned destination
- Never repeat the same intro twice
`)

	return sb.String()
}

// LastTurns returns the trailing n turns of the conversation history.
func LastTurns(history []contract.Turn, n int) []contract.Turn {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

func capList(dests []travel.Destination, n int) []travel.Destination {
	if len(dests) <= n {
		return dests
	}
	return dests[:n]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

func intOrUnspecified(v *int, currency string) string {
	if v == nil {
		return "Not specified"
	}
	if currency != "" {
		return currency + travel.FormatINR(*v)
	}
	return travel.FormatINR(*v)
}
