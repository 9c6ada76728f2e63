package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiBackend calls the Gemini API through the official client. The function fields are
// the network boundary; tests replace them.
type GeminiBackend struct {
	client *genai.Client

	newModel        func(name string) *genai.GenerativeModel
	generateContent func(ctx context.Context, m *genai.GenerativeModel, parts ...genai.Part) (*genai.GenerateContentResponse, error)
	sendMessage     func(ctx context.Context, cs *genai.ChatSession, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

func NewGeminiBackend(ctx context.Context, apiKey string) (*GeminiBackend, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiBackend{
		client:   client,
		newModel: client.GenerativeModel,
		generateContent: func(ctx context.Context, m *genai.GenerativeModel, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
			return m.GenerateContent(ctx, parts...)
		},
		sendMessage: func(ctx context.Context, cs *genai.ChatSession, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
			return cs.SendMessage(ctx, parts...)
		},
	}, nil
}

func (b *GeminiBackend) Close() error {
	if b.client == nil {
		return nil
	}
	return b.client.Close()
}

func (b *GeminiBackend) Generate(ctx context.Context, req Request) (string, error) {
	model := b.newModel(req.Config.Model)
	applyConfig(model, req.Config)

	var (
		resp *genai.GenerateContentResponse
		err  error
	)
	switch req.Mode {
	case Interactive:
		cs := model.StartChat()
		cs.History = toContents(req.History)
		resp, err = b.sendMessage(ctx, cs, genai.Text(req.Prompt))
	default:
		resp, err = b.generateContent(ctx, model, genai.Text(req.Prompt))
	}
	if err != nil {
		return "", err
	}

	text := extractText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func applyConfig(model *genai.GenerativeModel, cfg GenerationConfig) {
	if cfg.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(cfg.MaxOutputTokens)
	}
	if cfg.Temperature != nil {
		model.SetTemperature(*cfg.Temperature)
	}
	model.SafetySettings = cfg.safetySettings()
}

func toContents(turns []Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		role := RoleUser
		if t.Role == RoleModel {
			role = RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(t.Text)},
		})
	}
	return contents
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
