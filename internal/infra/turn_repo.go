package infra

import (
	"context"
	"database/sql"
	"time"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

type turnRepo struct {
	db *sql.DB
}

func NewTurnRepo(db *sql.DB) ports.TurnRepo {
	return &turnRepo{db: db}
}

func (r *turnRepo) SaveExchange(ctx context.Context, userTurn, botTurn ports.Turn) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertTurn(ctx, tx, userTurn); err != nil {
		return err
	}
	if err := insertTurn(ctx, tx, botTurn); err != nil {
		return err
	}
	return tx.Commit()
}

func insertTurn(ctx context.Context, tx *sql.Tx, t ports.Turn) error {
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO conversation_turns (conversation_id, user_id, role, text, intent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, t.ConversationID, t.UserID, t.Role, t.Text, t.Intent, createdAt)
	return err
}

func (r *turnRepo) GetRecent(ctx context.Context, conversationID string, n int) ([]ports.Turn, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, conversation_id, user_id, role, text, intent, created_at
		FROM conversation_turns
		WHERE conversation_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, conversationID, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []ports.Turn
	for rows.Next() {
		var t ports.Turn
		if err := rows.Scan(
			&t.ID,
			&t.ConversationID,
			&t.UserID,
			&t.Role,
			&t.Text,
			&t.Intent,
			&t.CreatedAt,
		); err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// chronological order
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

func (r *turnRepo) DeleteByConversation(ctx context.Context, conversationID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM conversation_turns
		WHERE conversation_id = $1
	`, conversationID)
	return err
}
