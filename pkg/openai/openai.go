package openaix

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Config describes the chat-completion endpoint. APIKey is optional: when it
// is empty NewClient returns nil and callers run in local-template mode.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" split_words:"true" default:"https://api.openai.com/v1"`
	APIKey      string        `envconfig:"API_KEY" split_words:"true"`
	Model       string        `envconfig:"MODEL" split_words:"true" default:"gpt-3.5-turbo"`
	MaxTokens   int           `envconfig:"MAX_TOKENS" split_words:"true" default:"800"`
	Temperature float64       `envconfig:"TEMPERATURE" split_words:"true" default:"0.7"`
	Timeout     time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
}

// Message is a role/content pair on the completion wire.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is one bounded completion call. Zero fields fall back to the
// client's configured defaults.
type Request struct {
	Messages    []Message
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

var ErrNoChoices = errors.New("openai: no choices in response")

// Client wraps the OpenAI SDK for single-shot chat completions.
type Client struct {
	api         openaisdk.Client
	model       string
	maxTokens   int
	temperature float64
	timeout     time.Duration
}

// NewClient returns a configured client, or nil when no API key is set.
func NewClient(cfg Config) *Client {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil
	}

	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
	}
	if trimmed := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed))
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 800
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		api:         openaisdk.NewClient(opts...),
		model:       strings.TrimSpace(cfg.Model),
		maxTokens:   maxTokens,
		temperature: cfg.Temperature,
		timeout:     timeout,
	}
}

// Complete performs one chat-completion call and returns the first choice.
// The call is bounded by req.Timeout (or the configured default); any
// transport failure, non-success status, or empty choice list is an error.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}
	temperature := req.Temperature
	if temperature <= 0 {
		temperature = c.temperature
	}

	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			messages = append(messages, openaisdk.SystemMessage(m.Content))
		case "assistant":
			messages = append(messages, openaisdk.AssistantMessage(m.Content))
		default:
			messages = append(messages, openaisdk.UserMessage(m.Content))
		}
	}

	resp, err := c.api.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(c.model),
		Messages:    messages,
		MaxTokens:   openaisdk.Int(int64(maxTokens)),
		Temperature: openaisdk.Float(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	return resp.Choices[0].Message.Content, nil
}
