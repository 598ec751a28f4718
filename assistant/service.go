// Package assistant implements the chat core: a linear per-request pipeline
// that classifies a message, assembles a grounding context from live
// destination data, and renders a reply either through the completion API or
// through deterministic local templates. No state crosses request boundaries;
// the only memory is the preference snapshot the caller re-supplies.
package assistant

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tripmitra/aria-backend/assistant/contract"
	"github.com/tripmitra/aria-backend/assistant/grounding"
	intentx "github.com/tripmitra/aria-backend/assistant/intent"
	"github.com/tripmitra/aria-backend/assistant/respond"
	logx "github.com/tripmitra/aria-backend/pkg/logger"
)

// Service runs the classify -> assemble -> respond pipeline.
type Service struct {
	analyzer  *intentx.Analyzer
	assembler *grounding.Assembler
	generator *respond.Generator
	log       zerolog.Logger
}

// New wires the pipeline. completion may be nil; the whole pipeline then
// runs in deterministic local mode.
func New(store contract.DestinationStore, completion contract.CompletionClient) (*Service, error) {
	assembler, err := grounding.NewAssembler(store)
	if err != nil {
		return nil, err
	}
	return &Service{
		analyzer:  intentx.NewAnalyzer(completion, intentx.NewClassifier()),
		assembler: assembler,
		generator: respond.NewGenerator(completion),
		log:       logx.With("assistant"),
	}, nil
}

// HandleMessage processes one chat request end to end.
func (s *Service) HandleMessage(ctx context.Context, req contract.ChatRequest) (contract.ChatReply, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return contract.ChatReply{}, contract.ErrEmptyMessage
	}

	it := s.analyzer.Analyze(ctx, message, req.Preferences)
	bundle := s.assembler.Assemble(ctx, it, req.Preferences)
	reply, provider := s.generator.Respond(ctx, message, it, req.Preferences, req.History, bundle)

	s.log.Debug().
		Str("intent", string(it.Type)).
		Bool("contextual", it.Contextual).
		Str("provider", provider).
		Msg("chat message handled")

	return contract.ChatReply{
		Response: reply,
		Provider: provider,
		Intent:   it,
	}, nil
}
