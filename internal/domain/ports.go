package domain

import (
	"context"
	"iter"
)

// CompletionStreamer defines how the core application talks to an LLM service.
// The returned sequence is lazy, finite and can only be ranged over once.
type CompletionStreamer interface {
	StreamCompletion(ctx context.Context, messages []ChatMessage) iter.Seq2[string, error]
}

// Button is one inline keyboard button.
type Button struct {
	Label   string
	Payload string
}

// Photo is an image read from disk, ready to upload.
type Photo struct {
	Name string
	Data []byte
}

// Transport defines the outbound side of the messaging platform.
type Transport interface {
	// SendText sends text, with one button per row when buttons is not empty.
	SendText(ctx context.Context, chat ChatID, text string, buttons []Button) error
	SendPhoto(ctx context.Context, chat ChatID, photo Photo, caption string) error
	// Acknowledge clears the pending indicator of a button tap.
	Acknowledge(ctx context.Context, callbackID string) error
}

// SessionLog records free-text messages per user for the lifetime of the process.
type SessionLog interface {
	Append(userID UserID, entry LogEntry) error
	Flush(path string) error
}
