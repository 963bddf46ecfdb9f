package conversation

import (
	"context"
	"fmt"
	"strings"

	"github.com/mercellinas/mia-bot/internal/catalog"
	"github.com/mercellinas/mia-bot/internal/domain"
	"github.com/mercellinas/mia-bot/internal/observability"
)

// Service turns a user prompt into MIA's reply and enforces the contact block.
type Service struct {
	llm domain.CompletionStreamer
}

func NewService(llm domain.CompletionStreamer) *Service {
	return &Service{llm: llm}
}

// GenerateReply answers a single prompt. Prompts that ask for contact details
// always end with the canonical contact block, whatever the model said.
// Every failure wraps domain.ErrInferenceFailure.
func (s *Service) GenerateReply(ctx context.Context, prompt string) (string, error) {
	log := observability.LoggerFromContext(ctx).With("prompt_len", len(prompt))

	var (
		reply     strings.Builder
		fragments int
	)
	for fragment, err := range s.llm.StreamCompletion(ctx, BuildMessages(prompt)) {
		if err != nil {
			observability.InferenceFailures.Inc()
			log.Error("completion stream failed", "error", err, "fragments", fragments)
			return "", fmt.Errorf("%w: %w", domain.ErrInferenceFailure, err)
		}
		if fragment == "" {
			continue
		}
		reply.WriteString(fragment)
		fragments++
	}

	if fragments == 0 {
		observability.InferenceFailures.Inc()
		log.Error("completion stream was empty")
		return "", fmt.Errorf("%w: empty completion stream", domain.ErrInferenceFailure)
	}

	text := strings.TrimSpace(reply.String())

	enforced := AsksForContact(prompt)
	if enforced {
		text += "\n\n" + catalog.ContactBlock
	}

	observability.RepliesTotal.WithLabelValues(fmt.Sprint(enforced)).Inc()
	log.Info("reply generated", "fragments", fragments, "contact_enforced", enforced)

	return text, nil
}
