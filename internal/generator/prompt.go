package generator

import (
	"fmt"
	"strings"

	"scriptforge/internal/script"

	"github.com/google/generative-ai-go/genai"
)

const systemInstruction = `You are a senior film screenwriter for Indian and international cinema.
You turn a one-line idea into a production-ready screenplay breakdown.
Write the title, characters, synopsis, scenes and dialogue in English.
Write plot_outline in English and plot_outline_hindi as the same outline in Hindi (Devanagari script).
Number scenes consecutively starting at 1.`

// BuildPrompt renders the user request for one generation.
func BuildPrompt(idea string, opt script.LengthOption) string {
	return fmt.Sprintf(`Create a complete movie script from this idea:

%s

Length: %s (%s).
Write between %d and %d scenes. Each scene needs a location, a mood, a vivid description
and the key lines of dialogue formatted as "CHARACTER: line".
Introduce every major character with a short biography.
The detailed synopsis should cover the full arc from setup to resolution.

Return ONLY JSON matching the response schema.`,
		strings.TrimSpace(idea), opt.Label, opt.Description, opt.MinScenes, opt.MaxScenes)
}

// responseSchema describes script.Result for structured output.
func responseSchema() *genai.Schema {
	str := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Description: desc}
	}

	character := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name": str("Character name"),
			"bio":  str("Short biography"),
		},
		Required: []string{"name", "bio"},
	}

	scene := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"scene_number": {Type: genai.TypeInteger, Description: "1-based scene order"},
			"description":  str("What happens in the scene"),
			"dialogues": {
				Type:  genai.TypeArray,
				Items: str("One line of dialogue"),
			},
			"location": str("Where the scene takes place"),
			"mood":     str("Emotional tone of the scene"),
		},
		Required: []string{"scene_number", "description", "dialogues", "location", "mood"},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":              str("Movie title"),
			"characters":         {Type: genai.TypeArray, Items: character},
			"plot_outline":       str("Plot outline in English"),
			"plot_outline_hindi": str("Plot outline in Hindi"),
			"detailed_synopsis":  str("Detailed synopsis"),
			"scenes":             {Type: genai.TypeArray, Items: scene},
		},
		Required: []string{"title", "characters", "plot_outline", "plot_outline_hindi", "detailed_synopsis", "scenes"},
	}
}
