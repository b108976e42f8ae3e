package dialogue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/coachfight/arena-api/internal/errors"
)

const systemPrompt = "You are a color commentator for a fantastical coached " +
	"fighting league. Reply with exactly one short, punchy line of commentary. " +
	"No quotes, no stage directions."

// OpenAIConfig configures the OpenAI-backed generator
type OpenAIConfig struct {
	APIKey     string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// OpenAIClient generates flavor lines through the chat completion API
type OpenAIClient struct {
	client     *openai.Client
	model      string
	timeout    time.Duration
	maxRetries int
}

// NewOpenAI creates an OpenAI-backed dialogue client
func NewOpenAI(cfg OpenAIConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.InvalidArgument("OpenAI API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 2
	}

	return &OpenAIClient{
		client:     openai.NewClient(cfg.APIKey),
		model:      cfg.Model,
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
	}, nil
}

var _ Client = (*OpenAIClient)(nil)

// GenerateLine asks the model for one line of commentary
func (c *OpenAIClient) GenerateLine(ctx context.Context, lineCtx LineContext) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(lineCtx)},
		},
		MaxTokens:   60,
		Temperature: 0.9,
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = errors.Unavailable("empty completion response")
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}

	slog.Warn("dialogue generation failed",
		"character", lineCtx.CharacterName,
		"round", lineCtx.Round,
		"error", lastErr,
	)
	return "", errors.WrapWithCode(lastErr, errors.CodeUnavailable, "dialogue generator unavailable")
}

func buildPrompt(lineCtx LineContext) string {
	return fmt.Sprintf(
		"Fighter: %s (a %s). Round %d. Adherence outcome: %s. Damage dealt: %d. Team momentum: %s.",
		lineCtx.CharacterName,
		lineCtx.Archetype.DisplayName(),
		lineCtx.Round,
		lineCtx.Outcome,
		lineCtx.Damage,
		lineCtx.Momentum,
	)
}
