package llm

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"google.golang.org/genai"

	"github.com/mercellinas/mia-bot/internal/domain"
)

const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiConfig selects the Vertex AI backend when Project is set, the Gemini
// API backend otherwise.
type GeminiConfig struct {
	Project   string
	Location  string
	APIKey    string
	ModelName string
}

type GeminiClient struct {
	client    *genai.Client
	modelName string
}

// NewGeminiClient creates a domain.CompletionStreamer backed by Gemini.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig) (*GeminiClient, error) {
	cc := &genai.ClientConfig{}
	switch {
	case cfg.Project != "":
		if cfg.Location == "" {
			return nil, fmt.Errorf("location is required for the Vertex AI backend")
		}
		cc.Project = cfg.Project
		cc.Location = cfg.Location
		cc.Backend = genai.BackendVertexAI
	case cfg.APIKey != "":
		cc.APIKey = cfg.APIKey
		cc.Backend = genai.BackendGeminiAPI
	default:
		return nil, fmt.Errorf("either a GCP project or a Gemini API key must be set")
	}

	modelName := cfg.ModelName
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		modelName: modelName,
	}, nil
}

// StreamCompletion implements domain.CompletionStreamer using Gemini.
func (g *GeminiClient) StreamCompletion(ctx context.Context, messages []domain.ChatMessage) iter.Seq2[string, error] {
	system, contents := toGeminiContents(messages)

	temp := float32(0.7)
	cfg := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if system != "" {
		// According to official examples, the role here is usually RoleUser, not "system"
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	return func(yield func(string, error) bool) {
		for res, err := range g.client.Models.GenerateContentStream(ctx, g.modelName, contents, cfg) {
			if err != nil {
				yield("", fmt.Errorf("gemini stream: %w", err))
				return
			}
			if !yield(res.Text(), nil) {
				return
			}
		}
	}
}

// toGeminiContents splits system messages off into one instruction, since
// Gemini takes the persona separately from the conversation.
func toGeminiContents(messages []domain.ChatMessage) (string, []*genai.Content) {
	var (
		system   []string
		contents []*genai.Content
	)
	for _, m := range messages {
		if m.Role == domain.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
	}
	return strings.Join(system, "\n\n"), contents
}
