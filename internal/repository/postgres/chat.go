package postgres

import (
	"context"
	"fmt"

	"github.com/dtroode/atlas-server/internal/model"
)

var _ model.ChatStore = (*ChatRepository)(nil)

// ChatRepository is the append-only chat log.
type ChatRepository struct {
	db DBTX
}

func NewChatRepository(db DBTX) *ChatRepository {
	return &ChatRepository{db: db}
}

const chatColumns = `id, username, text, type, created_at`

func (r *ChatRepository) Append(ctx context.Context, m model.ChatMessage) (model.ChatMessage, error) {
	query := `INSERT INTO chat_messages (username, text, type) VALUES ($1, $2, $3) RETURNING ` + chatColumns

	saved, err := scanMessage(r.db.QueryRowContext(ctx, query, m.Username, m.Text, string(m.Type)))
	if err != nil {
		return model.ChatMessage{}, fmt.Errorf("failed to append chat message: %w", err)
	}
	return saved, nil
}

func (r *ChatRepository) ListAll(ctx context.Context) ([]model.ChatMessage, error) {
	return r.list(ctx, `SELECT `+chatColumns+` FROM chat_messages ORDER BY id`)
}

func (r *ChatRepository) ListByUsername(ctx context.Context, username string) ([]model.ChatMessage, error) {
	return r.list(ctx, `SELECT `+chatColumns+` FROM chat_messages WHERE username = $1 ORDER BY id`, username)
}

func (r *ChatRepository) list(ctx context.Context, query string, args ...any) ([]model.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	result := make([]model.ChatMessage, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chat messages: %w", err)
	}
	return result, nil
}

func scanMessage(row scanner) (model.ChatMessage, error) {
	var m model.ChatMessage
	var msgType string
	if err := row.Scan(&m.ID, &m.Username, &m.Text, &msgType, &m.CreatedAt); err != nil {
		return model.ChatMessage{}, err
	}
	m.Type = model.MessageType(msgType)
	return m, nil
}
