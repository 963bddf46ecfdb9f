package llm

import (
	"context"
	"fmt"
	"iter"
	"strings"

	"github.com/mercellinas/mia-bot/internal/domain"
)

// MockLLM streams a canned stylist answer word by word. Useful for local runs
// without credentials.
type MockLLM struct{}

func NewMockLLM() *MockLLM {
	return &MockLLM{}
}

func (m *MockLLM) StreamCompletion(ctx context.Context, messages []domain.ChatMessage) iter.Seq2[string, error] {
	var prompt string
	if n := len(messages); n > 0 {
		prompt = messages[n-1].Content
	}
	reply := fmt.Sprintf("Ooh, love that question! You asked %q – a sleek bob or a soft frontal would look fabulous on you. 💇‍♀️", prompt)

	return func(yield func(string, error) bool) {
		words := strings.SplitAfter(reply, " ")
		for _, w := range words {
			if err := ctx.Err(); err != nil {
				yield("", err)
				return
			}
			if !yield(w, nil) {
				return
			}
		}
	}
}
