package contract

import "github.com/tripmitra/aria-backend/travel"

// IntentType is the classified purpose of a chat message.
type IntentType string

const (
	IntentDestination IntentType = "destination"
	IntentBudget      IntentType = "budget"
	IntentItinerary   IntentType = "itinerary"
	IntentFood        IntentType = "food"
	IntentCulture     IntentType = "culture"
	IntentTiming      IntentType = "timing"
	IntentGeneral     IntentType = "general"
)

func (t IntentType) Valid() bool {
	switch t {
	case IntentDestination, IntentBudget, IntentItinerary, IntentFood,
		IntentCulture, IntentTiming, IntentGeneral:
		return true
	}
	return false
}

// Intent is the transient classification of one message. Consumed by the
// context assembler, never stored.
type Intent struct {
	Type         IntentType `json:"intent_type"`
	Destinations []string   `json:"destinations,omitempty"`
	Budget       *int       `json:"budget_range,omitempty"`
	Duration     *int       `json:"duration,omitempty"`
	Preferences  []string   `json:"preferences,omitempty"`
	Contextual   bool       `json:"contextual"`
	Confidence   float64    `json:"confidence"`
}

// Turn is one prior conversation message, supplied by the caller.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Preferences is the caller-supplied snapshot used to resolve follow-up
// queries. The core reads it and never persists it.
type Preferences struct {
	Budget                   *int     `json:"budget,omitempty"`
	Duration                 *int     `json:"duration,omitempty"`
	Interests                []string `json:"interests,omitempty"`
	LastMentionedDestination string   `json:"lastMentionedDestination,omitempty"`
}

// Bundle is the grounding context: named destination lists assembled for one
// request and handed unmodified to the response generator.
type Bundle struct {
	General       []travel.Destination
	TopRated      []travel.Destination
	BudgetMatches []travel.Destination
	EntityMatches []travel.Destination
	ByPreference  map[string][]travel.Destination
}

// ChatRequest is one inbound message plus caller-held conversation state.
type ChatRequest struct {
	Message     string
	History     []Turn
	Preferences Preferences
}

// ChatReply is the rendered answer plus classification metadata.
type ChatReply struct {
	Response string
	Provider string
	Intent   Intent
}
