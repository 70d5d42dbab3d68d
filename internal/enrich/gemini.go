package enrich

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/jujurly/go-feedback-backend/internal/config"
)

// Gemini is the functional Summarizer, backed by Google's Gemini API.
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGemini constructs a Gemini summarizer. It fails when the API key is
// absent or the underlying client cannot be built; callers typically wrap
// that failure with Disabled() instead of aborting startup.
func NewGemini(ctx context.Context, apiKey, model string, timeout time.Duration) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrNotConfigured)
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{client: client, model: model, timeout: timeout}, nil
}

// Summarize sends exactly one generation request and decodes the reply.
// The request inherits ctx; when ctx carries no deadline the configured
// per-call timeout is applied so a hung provider cannot stall the caller
// indefinitely.
func (g *Gemini) Summarize(ctx context.Context, p Payload) (Result, error) {
	if g.client == nil {
		return Fallback(), ErrNotConfigured
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	contents := []*genai.Content{
		genai.NewContentFromText(userMessage(p), genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		ResponseMIMEType:  "application/json",
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return Fallback(), fmt.Errorf("gemini generate: %w", err)
	}
	raw := resp.Text()
	if raw == "" {
		return Fallback(), errors.New("gemini returned an empty reply")
	}
	return ParseReply(raw)
}

// New builds the Summarizer selected by cfg. It never fails: when the
// selected provider is unusable the returned Summarizer degrades to the
// fallback triple on every call, which keeps startup independent of
// credentials being present.
func New(ctx context.Context, cfg config.LLMConfig) Summarizer {
	switch cfg.Provider {
	case "gemini":
		g, err := NewGemini(ctx, cfg.GeminiAPIKey, cfg.Model, cfg.Timeout)
		if err != nil {
			return Disabled(err)
		}
		return g
	case "openai", "anthropic":
		return unsupported{provider: cfg.Provider}
	default:
		return Disabled(fmt.Errorf("%w: %s", ErrProviderNotSupported, cfg.Provider))
	}
}
