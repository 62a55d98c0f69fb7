package generator

// ModelConfig defines configuration for a Gemini model.
type ModelConfig struct {
	Name        string
	Temperature float32
	TopP        float32
	TopK        int32
}

// DefaultModelKey is used when no model is configured.
const DefaultModelKey = "flash"

// AvailableModels defines the Gemini presets selectable by key.
var AvailableModels = map[string]ModelConfig{
	"flash": {
		Name:        "gemini-flash-latest",
		Temperature: 0.9,
		TopP:        0.95,
		TopK:        40,
	},
	"pro": {
		Name:        "gemini-pro-latest",
		Temperature: 0.9,
		TopP:        0.95,
		TopK:        40,
	},
	"flash-2": {
		Name:        "gemini-2.0-flash",
		Temperature: 0.9,
		TopP:        0.95,
		TopK:        40,
	},
}

// ResolveModel returns the preset for key, falling back to the default preset.
func ResolveModel(key string) (string, ModelConfig) {
	if cfg, ok := AvailableModels[key]; ok {
		return key, cfg
	}
	return DefaultModelKey, AvailableModels[DefaultModelKey]
}
