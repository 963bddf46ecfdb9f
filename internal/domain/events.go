package domain

// ChatEvent is an inbound event delivered by the transport.
// The variants are StartCommand, TextMessage and ButtonTap.
type ChatEvent interface {
	Kind() string
	Sender() UserID
}

// StartCommand is the /start command.
type StartCommand struct {
	UserID UserID
	ChatID ChatID
}

// TextMessage is any free-text message that is not a command.
type TextMessage struct {
	UserID UserID
	ChatID ChatID
	Text   string
}

// ButtonTap is a tap on an inline keyboard button; StyleName is the payload.
type ButtonTap struct {
	UserID     UserID
	ChatID     ChatID
	CallbackID string
	StyleName  string
}

func (StartCommand) Kind() string { return "start" }
func (TextMessage) Kind() string  { return "text" }
func (ButtonTap) Kind() string    { return "button" }

func (e StartCommand) Sender() UserID { return e.UserID }
func (e TextMessage) Sender() UserID  { return e.UserID }
func (e ButtonTap) Sender() UserID    { return e.UserID }
