package conversation

import (
	"strings"

	"github.com/mercellinas/mia-bot/internal/catalog"
	"github.com/mercellinas/mia-bot/internal/domain"
)

const systemPrompt = "You are MIA, a fun and friendly stylist for Mercellinas Hair. " +
	"Be stylish, upbeat, and helpful with hair, fashion, and nail advice. " +
	"NEVER make up contact info. Only give:\n" + catalog.ContactBlock

// contactKeywords trigger the canonical contact block. Matched as substrings
// of the lower-cased prompt.
var contactKeywords = []string{
	"contact",
	"book",
	"appointment",
	"order",
	"reach",
	"phone",
	"email",
	"location",
	"number",
	"how do i get in touch",
}

// BuildMessages returns the persona followed by the user's prompt.
func BuildMessages(prompt string) []domain.ChatMessage {
	return []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: systemPrompt},
		{Role: domain.RoleUser, Content: prompt},
	}
}

// AsksForContact reports whether the prompt mentions any contact keyword.
func AsksForContact(prompt string) bool {
	p := strings.ToLower(prompt)
	for _, k := range contactKeywords {
		if strings.Contains(p, k) {
			return true
		}
	}
	return false
}
