// Package llm wraps the Gemini client behind a small interface so the
// research service can be tested with fakes and degrade cleanly when no
// API key is configured.
package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/fundsight/Fund-Analytics-Backend/internal/apperrors"
)

// Client defines the interface for generating research answers.
type Client interface {
	// Generate produces a free-text answer for the given prompt.
	Generate(ctx context.Context, prompt string) (string, error)

	// Enabled reports whether a real backend is configured. A disabled
	// client is the visible degraded state when no API key is present.
	Enabled() bool
}

// Gemini generates answers through the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini client for the given API key and model name.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Generate sends the prompt as a single-turn chat and returns the first
// candidate's text.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	chat, err := g.client.Chats.Create(ctx, g.model, nil, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}

	resp, err := chat.Send(ctx, &genai.Part{Text: prompt})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", apperrors.ErrUpstreamUnavailable)
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// Enabled always reports true for a constructed Gemini client.
func (g *Gemini) Enabled() bool {
	return true
}

// Disabled is the no-backend state used when GEMINI_API_KEY is absent.
// Every Generate call fails with ErrResearchDisabled; callers translate
// that into a placeholder answer rather than a crash.
type Disabled struct{}

// Generate always fails with ErrResearchDisabled.
func (Disabled) Generate(context.Context, string) (string, error) {
	return "", apperrors.ErrResearchDisabled
}

// Enabled always reports false.
func (Disabled) Enabled() bool {
	return false
}
