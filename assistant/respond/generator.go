package respond

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripmitra/aria-backend/assistant/contract"
	"github.com/tripmitra/aria-backend/assistant/grounding"
	logx "github.com/tripmitra/aria-backend/pkg/logger"
	openaix "github.com/tripmitra/aria-backend/pkg/openai"
)

const (
	completionTimeout     = 30 * time.Second
	completionMaxTokens   = 800
	completionTemperature = 0.7
	historyWindow         = 5

	// ProviderOpenAI and ProviderLocal tag which mode produced a reply.
	ProviderOpenAI = "openai"
	ProviderLocal  = "local"
)

// apology is the fixed user-facing reply when the completion API fails.
// Upstream failures never surface as hard errors to the end caller.
const apology = "I'm having trouble connecting to the AI service right now. " +
	"However, I can still help you with travel information! Please try rephrasing " +
	"your question, and I'll do my best to assist you with the destination data I have available."

// Generator renders the final reply: delegated to the completion API when a
// client is configured, otherwise one of the deterministic local templates.
// The mode is chosen once per request, never per sub-call.
type Generator struct {
	completion contract.CompletionClient
	log        zerolog.Logger
}

// NewGenerator builds a Generator. completion may be nil, which pins the
// generator to local-template mode.
func NewGenerator(completion contract.CompletionClient) *Generator {
	return &Generator{
		completion: completion,
		log:        logx.With("respond"),
	}
}

// Respond produces the reply text and the provider tag for one request.
func (g *Generator) Respond(
	ctx context.Context,
	message string,
	it contract.Intent,
	prefs contract.Preferences,
	history []contract.Turn,
	b contract.Bundle,
) (string, string) {
	if g.completion == nil {
		return renderLocal(it, prefs, b), ProviderLocal
	}
	return g.delegate(ctx, message, it, prefs, history, b), ProviderOpenAI
}

func (g *Generator) delegate(
	ctx context.Context,
	message string,
	it contract.Intent,
	prefs contract.Preferences,
	history []contract.Turn,
	b contract.Bundle,
) string {
	messages := []openaix.Message{
		{Role: "system", Content: grounding.BuildSystemContext(message, it, prefs, b, history)},
	}
	for _, turn := range grounding.LastTurns(history, historyWindow) {
		role := "assistant"
		if turn.Role == "user" {
			role = "user"
		}
		messages = append(messages, openaix.Message{Role: role, Content: turn.Content})
	}
	messages = append(messages, openaix.Message{Role: "user", Content: message})

	out, err := g.completion.Complete(ctx, openaix.Request{
		Messages:    messages,
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
		Timeout:     completionTimeout,
	})
	if err != nil {
		g.log.Warn().Err(err).Msg("completion failed, returning apology")
		return apology
	}
	if strings.TrimSpace(out) == "" {
		g.log.Warn().Msg("completion returned empty content, returning apology")
		return apology
	}
	return out
}
