package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dtroode/atlas-server/internal/logger"
	"github.com/dtroode/atlas-server/internal/model"
)

// Chat appends transformed messages to the persisted chat log.
type Chat struct {
	store     model.ChatStore
	forbidden []string
	logger    *logger.Logger
}

func NewChat(store model.ChatStore, forbidden []string, logger *logger.Logger) *Chat {
	words := make([]string, 0, len(forbidden))
	for _, w := range forbidden {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return &Chat{store: store, forbidden: words, logger: logger}
}

// Post transforms text by msgType and stores it unless the result contains
// a forbidden word. Matching is case-sensitive.
func (s *Chat) Post(ctx context.Context, username, text string, msgType model.MessageType) (model.ChatMessage, error) {
	if username == "" {
		return model.ChatMessage{}, model.NewValidationError("username", "is required")
	}
	if strings.TrimSpace(text) == "" {
		return model.ChatMessage{}, model.NewValidationError("messageText", "is required")
	}
	if !msgType.Valid() {
		return model.ChatMessage{}, model.NewValidationError("messageType", "must be Say, Shout or Whisper")
	}

	transformed := msgType.Apply(text)
	if word, ok := s.containsForbidden(transformed); ok {
		s.logger.Info("Chat service: message filtered", "username", username, "word", word)
		return model.ChatMessage{}, model.ErrMessageFiltered
	}

	msg, err := s.store.Append(ctx, model.ChatMessage{
		Username: username,
		Text:     transformed,
		Type:     msgType,
	})
	if err != nil {
		s.logger.Error("Chat service: failed to store message", "username", username, "error", err)
		return model.ChatMessage{}, fmt.Errorf("failed to store message: %w", err)
	}

	return msg, nil
}

func (s *Chat) List(ctx context.Context) ([]model.ChatMessage, error) {
	msgs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

func (s *Chat) ListByUsername(ctx context.Context, username string) ([]model.ChatMessage, error) {
	msgs, err := s.store.ListByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

func (s *Chat) containsForbidden(text string) (string, bool) {
	for _, w := range s.forbidden {
		if strings.Contains(text, w) {
			return w, true
		}
	}
	return "", false
}
