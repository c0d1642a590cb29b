package model

import (
	"context"
	"strings"
	"time"
)

// ChatStore persists the ordered chat log.
type ChatStore interface {
	Append(ctx context.Context, message ChatMessage) (ChatMessage, error)
	ListAll(ctx context.Context) ([]ChatMessage, error)
	ListByUsername(ctx context.Context, username string) ([]ChatMessage, error)
}

// MessageType selects how chat text is transformed before storage.
type MessageType string

const (
	// MessageTypeSay keeps the text unchanged.
	MessageTypeSay MessageType = "Say"
	// MessageTypeShout upper-cases the text.
	MessageTypeShout MessageType = "Shout"
	// MessageTypeWhisper lower-cases the text.
	MessageTypeWhisper MessageType = "Whisper"
)

// Valid reports whether t is a known message type.
func (t MessageType) Valid() bool {
	switch t {
	case MessageTypeSay, MessageTypeShout, MessageTypeWhisper:
		return true
	}
	return false
}

// Apply transforms text according to t.
func (t MessageType) Apply(text string) string {
	switch t {
	case MessageTypeShout:
		return strings.ToUpper(text)
	case MessageTypeWhisper:
		return strings.ToLower(text)
	default:
		return text
	}
}

// ChatMessage is one entry of the chat log.
type ChatMessage struct {
	ID        int64       `json:"messageId"`
	Username  string      `json:"username"`
	Text      string      `json:"messageText"`
	Type      MessageType `json:"messageType"`
	CreatedAt time.Time   `json:"createdAt"`
}
