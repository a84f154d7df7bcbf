package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memeclash/internal/model"
)

func testRoom(code string, version int64) *model.Room {
	return &model.Room{
		Code:    code,
		Status:  model.RoomStatusLobby,
		Version: version,
		Players: []model.Player{{ID: "u_host", IsHost: true}},
	}
}

func TestMemoryGetMissing(t *testing.T) {
	m := NewMemory()

	room, err := m.Get(context.Background(), "ABCDEF")
	require.NoError(t, err)
	assert.Nil(t, room)
}

func TestMemoryPutGet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, testRoom("ABCDEF", 1)))

	room, err := m.Get(ctx, "ABCDEF")
	require.NoError(t, err)
	require.NotNil(t, room)
	assert.Equal(t, int64(1), room.Version)
}

func TestMemoryGetReturnsCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, testRoom("ABCDEF", 1)))

	first, err := m.Get(ctx, "ABCDEF")
	require.NoError(t, err)
	first.Players[0].Score = 99
	first.Status = model.RoomStatusVoting

	second, err := m.Get(ctx, "ABCDEF")
	require.NoError(t, err)
	assert.Zero(t, second.Players[0].Score)
	assert.Equal(t, model.RoomStatusLobby, second.Status)
}

func TestMemoryCompareAndSwap(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, testRoom("ABCDEF", 1)))

	next := testRoom("ABCDEF", 2)
	require.NoError(t, m.CompareAndSwap(ctx, next, 1))

	room, err := m.Get(ctx, "ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, int64(2), room.Version)
}

func TestMemoryCompareAndSwapConflict(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Put(ctx, testRoom("ABCDEF", 5)))

	// Stale expected version loses.
	err := m.CompareAndSwap(ctx, testRoom("ABCDEF", 6), 4)
	assert.ErrorIs(t, err, ErrVersionConflict)

	// Missing room loses too.
	err = m.CompareAndSwap(ctx, testRoom("GHIJKL", 1), 0)
	assert.ErrorIs(t, err, ErrVersionConflict)
}
