package generator

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"scriptforge/internal/script"

	"github.com/google/generative-ai-go/genai"
)

const heistJSON = `{
  "title": "Cloudbreak",
  "characters": [{"name": "Mira", "bio": "A retired safecracker."}],
  "plot_outline": "A crew robs a floating city.",
  "plot_outline_hindi": "एक दल तैरते शहर को लूटता है।",
  "detailed_synopsis": "Mira assembles a crew...",
  "scenes": [
    {"scene_number": 3, "description": "Escape", "dialogues": ["MIRA: Jump."], "location": "Edge", "mood": "Tense"},
    {"scene_number": 1, "description": "Recruit", "dialogues": [], "location": "Docks", "mood": "Calm"},
    {"scene_number": 2, "description": "Vault", "dialogues": ["KAI: Now.", "MIRA: Wait."], "location": "Vault", "mood": "Electric"}
  ]
}`

// fakeModel implements contentModel for testing
type fakeModel struct {
	resp   *genai.GenerateContentResponse
	err    error
	prompt string
}

func (f *fakeModel) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if len(parts) > 0 {
		if t, ok := parts[0].(genai.Text); ok {
			f.prompt = string(t)
		}
	}
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text(text)}},
		}},
	}
}

func TestGenerate_Success(t *testing.T) {
	fm := &fakeModel{resp: textResponse(heistJSON)}
	g := &Gemini{model: fm, logger: testLogger()}

	result, err := g.Generate(context.Background(), "A heist in a floating city", script.LengthStandard)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if result.Title != "Cloudbreak" {
		t.Errorf("Expected title 'Cloudbreak', got '%s'", result.Title)
	}
	if len(result.Scenes) != 3 {
		t.Fatalf("Expected 3 scenes, got %d", len(result.Scenes))
	}
	for i, sc := range result.Scenes {
		if sc.Number != i+1 {
			t.Errorf("Expected scene %d at position %d, got %d", i+1, i, sc.Number)
		}
	}

	if !strings.Contains(fm.prompt, "A heist in a floating city") {
		t.Error("Expected prompt to contain the story idea")
	}
	if !strings.Contains(fm.prompt, "between 5 and 7 scenes") {
		t.Errorf("Expected standard scene range in prompt, got:\n%s", fm.prompt)
	}
}

func TestGenerate_MissingKey(t *testing.T) {
	g, err := NewGemini(context.Background(), Config{}, nil)
	if err != nil {
		t.Fatalf("Expected no error creating keyless generator, got: %v", err)
	}

	_, err = g.Generate(context.Background(), "idea", script.LengthConcise)
	if !errors.Is(err, ErrInvalidCredential) {
		t.Fatalf("Expected ErrInvalidCredential, got: %v", err)
	}
	if !strings.Contains(err.Error(), "API_KEY") {
		t.Errorf("Expected error text to mention API_KEY, got %q", err.Error())
	}
}

func TestGenerate_RejectsInput(t *testing.T) {
	g := &Gemini{model: &fakeModel{resp: textResponse(heistJSON)}, logger: testLogger()}

	if _, err := g.Generate(context.Background(), "   ", script.LengthStandard); !errors.Is(err, ErrEmptyPrompt) {
		t.Errorf("Expected ErrEmptyPrompt, got: %v", err)
	}
	if _, err := g.Generate(context.Background(), "idea", script.Length("epic")); err == nil {
		t.Error("Expected error for unknown length")
	}
}

func TestGenerate_APIErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		wantCredential bool
	}{
		{"rejected key", errors.New("googleapi: Error 400: API key not valid. Please pass a valid API key."), true},
		{"quota", errors.New("googleapi: Error 429: quota exceeded"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Gemini{model: &fakeModel{err: tt.err}, logger: testLogger()}
			_, err := g.Generate(context.Background(), "idea", script.LengthExtended)
			if err == nil {
				t.Fatal("Expected error")
			}
			if got := errors.Is(err, ErrInvalidCredential); got != tt.wantCredential {
				t.Errorf("errors.Is(ErrInvalidCredential) = %v; want %v (err: %v)", got, tt.wantCredential, err)
			}
			if !errors.Is(err, tt.err) {
				t.Error("Expected original error to stay in the chain")
			}
		})
	}
}

func TestResponseText(t *testing.T) {
	blocked := &genai.GenerateContentResponse{
		PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety},
	}
	safety := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
	}

	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		wantErr error
	}{
		{"nil", nil, ErrEmptyResponse},
		{"no candidates", &genai.GenerateContentResponse{}, ErrEmptyResponse},
		{"prompt blocked", blocked, ErrBlocked},
		{"answer blocked", safety, ErrBlocked},
		{"blank text", textResponse("  "), ErrEmptyResponse},
		{"ok", textResponse("{}"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := responseText(tt.resp)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("responseText() = %v; want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseResult(t *testing.T) {
	fenced := "```json\n" + heistJSON + "\n```"
	result, err := ParseResult(fenced)
	if err != nil {
		t.Fatalf("Expected fenced JSON to parse, got: %v", err)
	}
	if result.PlotOutlineHindi == "" {
		t.Error("Expected Hindi outline to be decoded")
	}
	if result.DialogueCount() != 3 {
		t.Errorf("Expected 3 dialogue lines, got %d", result.DialogueCount())
	}

	if _, err := ParseResult("not json"); err == nil {
		t.Error("Expected error for malformed JSON")
	}
	if _, err := ParseResult(`{"title": "", "scenes": []}`); !errors.Is(err, script.ErrNoTitle) {
		t.Errorf("Expected ErrNoTitle, got: %v", err)
	}
}

func TestResolveModel(t *testing.T) {
	key, mc := ResolveModel("pro")
	if key != "pro" || mc.Name != "gemini-pro-latest" {
		t.Errorf("ResolveModel(pro) = %s, %s", key, mc.Name)
	}

	key, mc = ResolveModel("unknown")
	if key != DefaultModelKey || mc.Name != AvailableModels[DefaultModelKey].Name {
		t.Errorf("Expected fallback to %s, got %s", DefaultModelKey, key)
	}
}

func TestResponseSchemaCoversResult(t *testing.T) {
	s := responseSchema()
	for _, field := range []string{"title", "characters", "plot_outline", "plot_outline_hindi", "detailed_synopsis", "scenes"} {
		if _, ok := s.Properties[field]; !ok {
			t.Errorf("schema missing property %q", field)
		}
	}
	sceneProps := s.Properties["scenes"].Items.Properties
	if sceneProps["scene_number"].Type != genai.TypeInteger {
		t.Error("Expected scene_number to be an integer")
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
