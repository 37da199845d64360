// Package copywriter optionally rewrites assistant fallback replies with
// an LLM so "not found" answers read less canned. It is best effort: any
// failure leaves the original reply untouched.
package copywriter

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"resty.dev/v3"

	"autocart-server/store-api/internal/config"
	"autocart-server/store-api/internal/domain/chat"
	"autocart-server/store-api/internal/utils/httpclients"
	"autocart-server/store-api/internal/utils/platformerrors"
)

const (
	systemPrompt = "You are a friendly shopping assistant for an online store. " +
		"Rewrite the given reply so it stays short, polite and helpful. " +
		"Keep the meaning unchanged and do not invent products or prices."
)

type Rewriter struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	model   string
	logger  zerolog.Logger
}

var _ chat.Copywriter = (*Rewriter)(nil)

// New returns a Rewriter, or nil when the copywriter is disabled so the
// chat engine keeps its canned replies.
func New(cfg *config.Config, logger zerolog.Logger) *Rewriter {
	if !cfg.CopywriterEnabled || cfg.CopywriterAPIKey == "" {
		return nil
	}

	baseURL := strings.TrimRight(cfg.CopywriterBaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}

	return &Rewriter{
		client:  httpclients.NewClient("copywriter").SetTimeout(cfg.HTTPTimeout),
		baseURL: baseURL,
		apiKey:  cfg.CopywriterAPIKey,
		model:   cfg.CopywriterModel,
		logger:  logger,
	}
}

// Rewrite implements chat.Copywriter.
func (r *Rewriter) Rewrite(ctx context.Context, userQuery, draft string) (string, error) {
	request := openai.ChatCompletionRequest{
		Model: r.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Customer asked: " + userQuery + "\nReply to rewrite: " + draft},
		},
	}

	var respBody openai.ChatCompletionResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetAuthToken(r.apiKey).
		SetBody(request).
		SetResult(&respBody).
		Post(r.baseURL + "/chat/completions")
	if err != nil {
		return "", platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "copywriter request failed")
	}
	if resp.IsError() || len(respBody.Choices) == 0 {
		return "", platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeExternal,
			"copywriter returned no completion",
			nil,
			"e0b2d4f6-8a1c-4e0b-b2d4-f6a8c0e1b3d5",
		)
	}

	rewritten := strings.TrimSpace(respBody.Choices[0].Message.Content)
	if rewritten == "" {
		return draft, nil
	}
	return rewritten, nil
}
