package gateway

import (
	"maps"
	"slices"

	"github.com/google/generative-ai-go/genai"
)

const (
	DefaultChatModel  = "gemini-pro"
	DefaultTutorModel = "gemini-1.5-flash"
)

// GenerationConfig carries the model name plus the generation and safety parameters for
// one call. Zero MaxOutputTokens and nil Temperature leave the model defaults in place.
type GenerationConfig struct {
	Model           string
	MaxOutputTokens int32
	Temperature     *float32
	Safety          map[genai.HarmCategory]genai.HarmBlockThreshold
}

// ChatConfig is the permissive configuration used by the interactive chat.
func ChatConfig(model string) GenerationConfig {
	if model == "" {
		model = DefaultChatModel
	}
	temperature := float32(0.7)
	return GenerationConfig{
		Model:           model,
		MaxOutputTokens: 2048,
		Temperature:     &temperature,
		Safety: map[genai.HarmCategory]genai.HarmBlockThreshold{
			genai.HarmCategoryHarassment:       genai.HarmBlockNone,
			genai.HarmCategoryHateSpeech:       genai.HarmBlockNone,
			genai.HarmCategorySexuallyExplicit: genai.HarmBlockNone,
			genai.HarmCategoryDangerousContent: genai.HarmBlockNone,
		},
	}
}

// TutorConfig only blocks high-severity harassment and hate speech.
func TutorConfig(model string) GenerationConfig {
	if model == "" {
		model = DefaultTutorModel
	}
	return GenerationConfig{
		Model: model,
		Safety: map[genai.HarmCategory]genai.HarmBlockThreshold{
			genai.HarmCategoryHarassment: genai.HarmBlockOnlyHigh,
			genai.HarmCategoryHateSpeech: genai.HarmBlockOnlyHigh,
		},
	}
}

// safetySettings returns the thresholds ordered by category.
func (c GenerationConfig) safetySettings() []*genai.SafetySetting {
	settings := make([]*genai.SafetySetting, 0, len(c.Safety))
	for _, category := range slices.Sorted(maps.Keys(c.Safety)) {
		settings = append(settings, &genai.SafetySetting{
			Category:  category,
			Threshold: c.Safety[category],
		})
	}
	return settings
}
