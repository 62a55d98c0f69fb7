// Package generator turns a story idea into a structured screenplay using Gemini.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"scriptforge/internal/logging"
	"scriptforge/internal/script"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Service is the generation boundary consumed by the front ends.
type Service interface {
	Generate(ctx context.Context, prompt string, length script.Length) (*script.Result, error)
}

// Config holds what the Gemini generator needs.
type Config struct {
	APIKey   string
	ModelKey string // flash, pro, flash-2
}

// contentModel is satisfied by *genai.GenerativeModel.
type contentModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini generates scripts with the Gemini API.
type Gemini struct {
	client    *genai.Client
	model     contentModel
	modelName string
	logger    *slog.Logger
}

// NewGemini creates a generator. A missing API key is not an error here: every
// Generate call then fails with ErrInvalidCredential so the UI can report it.
func NewGemini(ctx context.Context, cfg Config, logger *slog.Logger) (*Gemini, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	key, mc := ResolveModel(cfg.ModelKey)
	g := &Gemini{
		modelName: mc.Name,
		logger:    logging.WithComponent(logger, "generator").With("model", key),
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		g.logger.Warn("gemini api key not configured")
		return g, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	g.client = client
	g.model = configureModel(client.GenerativeModel(mc.Name), mc)
	return g, nil
}

func configureModel(model *genai.GenerativeModel, mc ModelConfig) *genai.GenerativeModel {
	model.SetTemperature(mc.Temperature)
	model.SetTopP(mc.TopP)
	model.SetTopK(mc.TopK)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = responseSchema()
	return model
}

// Generate asks Gemini for a screenplay of the requested length.
func (g *Gemini) Generate(ctx context.Context, prompt string, length script.Length) (*script.Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}
	opt, ok := length.Option()
	if !ok {
		return nil, fmt.Errorf("unknown length %q", length)
	}
	if g.model == nil {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrInvalidCredential)
	}

	start := time.Now()
	g.logger.Debug("generating script", "length", length, "prompt_chars", len(prompt))

	resp, err := g.model.GenerateContent(ctx, genai.Text(BuildPrompt(prompt, opt)))
	if err != nil {
		return nil, wrapAPIError(err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	result, err := ParseResult(text)
	if err != nil {
		return nil, err
	}

	g.logger.Info("script generated",
		"title", result.Title,
		"scenes", len(result.Scenes),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return result, nil
}

// Close releases the Gemini client.
func (g *Gemini) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", ErrEmptyResponse
	}
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			return "", fmt.Errorf("%w: %s", ErrBlocked, resp.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyResponse
	}

	cand := resp.Candidates[0]
	if cand.FinishReason == genai.FinishReasonSafety {
		return "", ErrBlocked
	}
	if cand.Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}

// ParseResult decodes a JSON screenplay, validates it and puts scenes in order.
func ParseResult(text string) (*script.Result, error) {
	var result script.Result
	if err := json.Unmarshal([]byte(cleanJSON(text)), &result); err != nil {
		return nil, fmt.Errorf("malformed script response: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script response: %w", err)
	}
	result.Normalize()
	return &result, nil
}

// cleanJSON removes markdown code fences if present.
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
