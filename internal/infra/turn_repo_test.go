package infra

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

func TestSaveExchangeCommitsBothTurns(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO conversation_turns").
		WithArgs("conv-1", "user-1", ports.RoleUser, "what is my balance", "check_balance", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO conversation_turns").
		WithArgs("conv-1", "user-1", ports.RoleAssistant, "Your balance is 5000 XAF.", "check_balance", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	repo := NewTurnRepo(db)
	err = repo.SaveExchange(context.Background(),
		ports.Turn{ConversationID: "conv-1", UserID: "user-1", Role: ports.RoleUser, Text: "what is my balance", Intent: "check_balance"},
		ports.Turn{ConversationID: "conv-1", UserID: "user-1", Role: ports.RoleAssistant, Text: "Your balance is 5000 XAF.", Intent: "check_balance"},
	)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveExchangeRollsBackOnFailure(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO conversation_turns").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	repo := NewTurnRepo(db)
	err = repo.SaveExchange(context.Background(),
		ports.Turn{ConversationID: "conv-1", UserID: "user-1", Role: ports.RoleUser, Text: "hi"},
		ports.Turn{ConversationID: "conv-1", UserID: "user-1", Role: ports.RoleAssistant, Text: "hello"},
	)
	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecentReturnsChronologicalOrder(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	base := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	// The query returns newest first; callers get chronological order.
	rows := sqlmock.NewRows([]string{"id", "conversation_id", "user_id", "role", "text", "intent", "created_at"}).
		AddRow(int64(2), "conv-1", "user-1", ports.RoleAssistant, "Your balance is 5000 XAF.", "check_balance", base.Add(time.Minute)).
		AddRow(int64(1), "conv-1", "user-1", ports.RoleUser, "what is my balance", "check_balance", base)

	mock.ExpectQuery("SELECT id, conversation_id, user_id, role, text, intent, created_at").
		WithArgs("conv-1", 10).
		WillReturnRows(rows)

	repo := NewTurnRepo(db)
	turns, err := repo.GetRecent(context.Background(), "conv-1", 10)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, int64(1), turns[0].ID)
	assert.Equal(t, ports.RoleUser, turns[0].Role)
	assert.Equal(t, int64(2), turns[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByConversation(t *testing.T) {
	t.Parallel()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM conversation_turns").
		WithArgs("conv-1").
		WillReturnResult(sqlmock.NewResult(0, 4))

	repo := NewTurnRepo(db)
	require.NoError(t, repo.DeleteByConversation(context.Background(), "conv-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}
