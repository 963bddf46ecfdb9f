package llm

import (
	"context"
	"fmt"
	"iter"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/mercellinas/mia-bot/internal/domain"
)

const (
	DefaultTogetherBaseURL = "https://api.together.xyz/v1"
	DefaultTogetherModel   = "meta-llama/Llama-3.3-70B-Instruct-Turbo-Free"
)

// OpenAIClient streams completions from any OpenAI-compatible chat endpoint.
// Together AI is the default target.
type OpenAIClient struct {
	client    openai.Client
	modelName string
}

// NewOpenAIClient creates a streaming client. An empty baseURL keeps the
// library default, an empty model uses DefaultTogetherModel.
func NewOpenAIClient(apiKey, baseURL, modelName string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is required for the openai-compatible client")
	}
	if modelName == "" {
		modelName = DefaultTogetherModel
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	return &OpenAIClient{
		client:    openai.NewClient(opts...),
		modelName: modelName,
	}, nil
}

// StreamCompletion implements domain.CompletionStreamer.
func (c *OpenAIClient) StreamCompletion(ctx context.Context, messages []domain.ChatMessage) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		params := openai.ChatCompletionNewParams{
			Model:    openai.ChatModel(c.modelName),
			Messages: toOpenAIMessages(messages),
		}

		stream := c.client.Chat.Completions.NewStreaming(ctx, params)
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			if !yield(chunk.Choices[0].Delta.Content, nil) {
				return
			}
		}
		if err := stream.Err(); err != nil {
			yield("", fmt.Errorf("openai stream: %w", err))
		}
	}
}

func toOpenAIMessages(messages []domain.ChatMessage) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case domain.RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
