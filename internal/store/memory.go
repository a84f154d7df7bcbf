package store

import (
	"context"
	"sync"

	"memeclash/internal/model"
)

// Memory is a mutex-guarded in-process RoomStore. Rooms are deep-copied on
// the way in and out so callers never alias stored state.
type Memory struct {
	mu    sync.Mutex
	rooms map[string]*model.Room
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{rooms: make(map[string]*model.Room)}
}

func (m *Memory) Get(_ context.Context, code string) (*model.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[code]
	if !ok {
		return nil, nil
	}
	return room.Clone(), nil
}

func (m *Memory) Put(_ context.Context, room *model.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rooms[room.Code] = room.Clone()
	return nil
}

func (m *Memory) CompareAndSwap(_ context.Context, room *model.Room, expectedVersion int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.rooms[room.Code]
	if !ok || current.Version != expectedVersion {
		return ErrVersionConflict
	}
	m.rooms[room.Code] = room.Clone()
	return nil
}
