package conversation_test

import (
	"context"
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/mercellinas/mia-bot/internal/adapters/llm"
	"github.com/mercellinas/mia-bot/internal/app/conversation"
	"github.com/mercellinas/mia-bot/internal/catalog"
	"github.com/mercellinas/mia-bot/internal/domain"
)

// scriptedLLM streams fixed fragments, then an optional error.
type scriptedLLM struct {
	fragments []string
	err       error
	got       []domain.ChatMessage
}

func (s *scriptedLLM) StreamCompletion(_ context.Context, messages []domain.ChatMessage) iter.Seq2[string, error] {
	s.got = messages
	return func(yield func(string, error) bool) {
		for _, f := range s.fragments {
			if !yield(f, nil) {
				return
			}
		}
		if s.err != nil {
			yield("", s.err)
		}
	}
}

func TestGenerateReplyConcatenatesFragmentsInOrder(t *testing.T) {
	svc := conversation.NewService(&scriptedLLM{fragments: []string{"Hel", "lo", " world"}})

	got, err := svc.GenerateReply(context.Background(), "hi MIA")
	if err != nil {
		t.Fatalf("GenerateReply failed: %v", err)
	}
	if got != "Hello world" {
		t.Fatalf("expected %q, got %q", "Hello world", got)
	}
}

func TestGenerateReplyTrimsAndSkipsEmptyFragments(t *testing.T) {
	svc := conversation.NewService(&scriptedLLM{fragments: []string{"  ", "", "Curls", " are", " in!\n"}})

	got, err := svc.GenerateReply(context.Background(), "what's trending?")
	if err != nil {
		t.Fatalf("GenerateReply failed: %v", err)
	}
	if got != "Curls are in!" {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestGenerateReplyEnforcesContactBlock(t *testing.T) {
	prompts := []string{
		"how do I book an appointment for a bob wig",
		"What's your PHONE?",
		"can i place an OrDeR",
		"Where is your location",
		"How do I get in touch with you",
		"my number is 123",
	}

	for _, p := range prompts {
		t.Run(p, func(t *testing.T) {
			svc := conversation.NewService(&scriptedLLM{
				fragments: []string{"Call us at 555-FAKE ", "or email fake@example.com"},
			})

			got, err := svc.GenerateReply(context.Background(), p)
			if err != nil {
				t.Fatalf("GenerateReply failed: %v", err)
			}

			lines := strings.Split(got, "\n")
			if len(lines) < 2 {
				t.Fatalf("reply too short: %q", got)
			}
			last2 := lines[len(lines)-2:]
			if last2[0] != catalog.WhatsAppLine || last2[1] != catalog.InstagramLine {
				t.Fatalf("contact block not at the end: %q", got)
			}
			if !strings.HasPrefix(got, "Call us at 555-FAKE or email fake@example.com\n\n") {
				t.Fatalf("model text not preserved before block: %q", got)
			}
		})
	}
}

func TestGenerateReplyKeepsDuplicateContactInfo(t *testing.T) {
	svc := conversation.NewService(&scriptedLLM{fragments: []string{catalog.ContactBlock}})

	got, err := svc.GenerateReply(context.Background(), "contact?")
	if err != nil {
		t.Fatalf("GenerateReply failed: %v", err)
	}
	if n := strings.Count(got, catalog.WhatsAppLine); n != 2 {
		t.Fatalf("expected the block twice, found WhatsApp line %d times", n)
	}
}

func TestGenerateReplyWithoutKeywordHasNoBlock(t *testing.T) {
	svc := conversation.NewService(&scriptedLLM{fragments: []string{"Try a ", "pixie cut!"}})

	got, err := svc.GenerateReply(context.Background(), "what suits a round face?")
	if err != nil {
		t.Fatalf("GenerateReply failed: %v", err)
	}
	if got != "Try a pixie cut!" {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestGenerateReplySendsPersonaThenPrompt(t *testing.T) {
	fake := &scriptedLLM{fragments: []string{"ok"}}
	svc := conversation.NewService(fake)

	if _, err := svc.GenerateReply(context.Background(), "hello"); err != nil {
		t.Fatalf("GenerateReply failed: %v", err)
	}

	if len(fake.got) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(fake.got))
	}
	if fake.got[0].Role != domain.RoleSystem || !strings.Contains(fake.got[0].Content, "MIA") {
		t.Fatalf("first message is not the persona: %+v", fake.got[0])
	}
	if fake.got[1].Role != domain.RoleUser || fake.got[1].Content != "hello" {
		t.Fatalf("second message is not the prompt: %+v", fake.got[1])
	}
}

func TestGenerateReplyFailures(t *testing.T) {
	boom := errors.New("connection reset")

	cases := map[string]*scriptedLLM{
		"stream error":      {fragments: []string{"partial"}, err: boom},
		"empty stream":      {},
		"only empty chunks": {fragments: []string{"", ""}},
	}

	for name, fake := range cases {
		t.Run(name, func(t *testing.T) {
			svc := conversation.NewService(fake)
			_, err := svc.GenerateReply(context.Background(), "book me")
			if !errors.Is(err, domain.ErrInferenceFailure) {
				t.Fatalf("expected ErrInferenceFailure, got %v", err)
			}
		})
	}
}

func TestGenerateReplyWithMockLLM(t *testing.T) {
	svc := conversation.NewService(llm.NewMockLLM())

	got, err := svc.GenerateReply(context.Background(), "Hola MIA")
	if err != nil {
		t.Fatalf("GenerateReply failed: %v", err)
	}
	if got == "" {
		t.Fatalf("expected non-empty reply")
	}
}
