package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bafoka-network/voice-assistant/internal/ports"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	state := ports.NewConversationState("conv-1", "user-1", "+237650000001")
	state.StartFlow(ports.FlowWithdrawal, "ask_amount")
	state.AddData("amount", "5000")

	require.NoError(t, store.Save(ctx, state))

	got, err := store.Get(ctx, "conv-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, ports.FlowWithdrawal, got.FlowType)
	assert.Equal(t, "ask_amount", got.FlowStep)
	assert.Equal(t, "5000", got.CollectedData["amount"])
}

func TestMemoryStoreCopiesState(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	state := ports.NewConversationState("conv-2", "user-2", "+237650000002")
	require.NoError(t, store.Save(ctx, state))

	// Mutating the saved or loaded state must not leak into the store.
	state.AddData("amount", "9999")
	first, err := store.Get(ctx, "conv-2")
	require.NoError(t, err)
	first.AddData("pin", "1234")

	second, err := store.Get(ctx, "conv-2")
	require.NoError(t, err)
	assert.Empty(t, second.CollectedData["amount"])
	assert.Empty(t, second.CollectedData["pin"])
}

func TestMemoryStoreExpires(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(time.Hour)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }
	ctx := context.Background()

	state := ports.NewConversationState("conv-3", "user-3", "+237650000003")
	require.NoError(t, store.Save(ctx, state))

	current = current.Add(59 * time.Minute)
	got, err := store.Get(ctx, "conv-3")
	require.NoError(t, err)
	assert.NotNil(t, got)

	current = current.Add(2 * time.Minute)
	got, err = store.Get(ctx, "conv-3")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreSweep(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(time.Hour)
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, ports.NewConversationState("conv-old", "user-1", "+237650000001")))

	current = current.Add(30 * time.Minute)
	require.NoError(t, store.Save(ctx, ports.NewConversationState("conv-new", "user-2", "+237650000002")))

	current = current.Add(45 * time.Minute)
	assert.Equal(t, 1, store.Sweep())

	got, err := store.Get(ctx, "conv-new")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestMemoryStoreGetUnknownConversation(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(time.Hour)
	got, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreDelete(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	state := ports.NewConversationState("conv-4", "user-4", "+237650000004")
	require.NoError(t, store.Save(ctx, state))
	require.NoError(t, store.Delete(ctx, "conv-4"))

	got, err := store.Get(ctx, "conv-4")
	require.NoError(t, err)
	assert.Nil(t, got)
}
