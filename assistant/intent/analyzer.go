package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripmitra/aria-backend/assistant/contract"
	logx "github.com/tripmitra/aria-backend/pkg/logger"
	openaix "github.com/tripmitra/aria-backend/pkg/openai"
)

const (
	analyzeTimeout     = 10 * time.Second
	analyzeMaxTokens   = 300
	analyzeTemperature = 0.3
)

// Analyzer classifies with the completion API when one is configured and
// falls back to the rule-based Classifier unconditionally on any failure.
// There is no partial merge between the two paths.
type Analyzer struct {
	completion contract.CompletionClient
	rules      *Classifier
	log        zerolog.Logger
}

// NewAnalyzer builds an Analyzer. completion may be nil, which pins the
// analyzer to the rule path.
func NewAnalyzer(completion contract.CompletionClient, rules *Classifier) *Analyzer {
	if rules == nil {
		rules = NewClassifier()
	}
	return &Analyzer{
		completion: completion,
		rules:      rules,
		log:        logx.With("intent"),
	}
}

// Analyze returns the classified intent for one message.
func (a *Analyzer) Analyze(ctx context.Context, message string, prefs contract.Preferences) contract.Intent {
	if a.completion == nil {
		return a.rules.Classify(message, prefs)
	}

	it, err := a.analyzeWithModel(ctx, message, prefs)
	if err != nil {
		a.log.Debug().Err(err).Msg("model intent analysis failed, using rule classifier")
		return a.rules.Classify(message, prefs)
	}
	return it
}

// intentWire is the JSON contract the model is asked to return. Numbers come
// back as floats from the decoder regardless of what the model writes.
type intentWire struct {
	IntentType   string   `json:"intent_type"`
	Destinations []string `json:"destinations"`
	BudgetRange  *float64 `json:"budget_range"`
	Duration     *float64 `json:"duration"`
	Preferences  []string `json:"preferences"`
	Contextual   bool     `json:"contextual"`
	Confidence   *float64 `json:"confidence"`
}

func (a *Analyzer) analyzeWithModel(ctx context.Context, message string, prefs contract.Preferences) (contract.Intent, error) {
	snapshot, err := json.Marshal(prefs)
	if err != nil {
		return contract.Intent{}, fmt.Errorf("marshal preference snapshot: %w", err)
	}

	out, err := a.completion.Complete(ctx, openaix.Request{
		Messages: []openaix.Message{
			{Role: "user", Content: analyzePrompt(message, string(snapshot))},
		},
		MaxTokens:   analyzeMaxTokens,
		Temperature: analyzeTemperature,
		Timeout:     analyzeTimeout,
	})
	if err != nil {
		return contract.Intent{}, fmt.Errorf("%w: %v", contract.ErrCompletionFailed, err)
	}

	var wire intentWire
	if err := json.Unmarshal([]byte(stripCodeFence(out)), &wire); err != nil {
		return contract.Intent{}, fmt.Errorf("%w: %v", contract.ErrIntentUnparseable, err)
	}

	it := contract.Intent{
		Type:         contract.IntentType(strings.ToLower(strings.TrimSpace(wire.IntentType))),
		Destinations: wire.Destinations,
		Preferences:  wire.Preferences,
		Contextual:   wire.Contextual,
		Confidence:   1.0,
	}
	if !it.Type.Valid() {
		return contract.Intent{}, fmt.Errorf("%w: intent type %q", contract.ErrIntentUnparseable, wire.IntentType)
	}
	if wire.BudgetRange != nil {
		v := int(*wire.BudgetRange)
		it.Budget = &v
	}
	if wire.Duration != nil {
		v := int(*wire.Duration)
		it.Duration = &v
	}
	if wire.Confidence != nil {
		it.Confidence = clamp01(*wire.Confidence)
	}
	return it, nil
}

func analyzePrompt(message, snapshot string) string {
	return fmt.Sprintf(`Analyze this travel query and extract:
1. Intent type (destination, budget, itinerary, food, culture, timing, general)
2. Specific destinations mentioned
3. Budget range if mentioned
4. Duration in days if mentioned
5. Travel preferences (adventure, culture, beach, spiritual, nature)
6. Is this a contextual query referring to previous conversation?

Query: %q
Previous context: %s

Respond with JSON only, using exactly these keys:
{"intent_type": "string", "destinations": ["..."], "budget_range": number or null, "duration": number or null, "preferences": ["..."], "contextual": boolean, "confidence": number}`,
		message, snapshot)
}

// stripCodeFence tolerates models that wrap JSON in a markdown fence.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
