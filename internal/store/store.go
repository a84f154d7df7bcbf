// Package store provides keyed storage of rooms with optimistic
// concurrency. Every engine mutation is a single read-modify-write:
// Get, mutate a copy, CompareAndSwap against the version that was read.
package store

import (
	"context"
	"errors"

	"memeclash/internal/model"
)

// ErrVersionConflict is returned by CompareAndSwap when the stored room
// changed since the caller read it. Callers are expected to re-read and
// retry.
var ErrVersionConflict = errors.New("store: room version conflict")

// RoomStore is the only shared mutable resource in the system. All
// implementations must serialize writes per room code.
type RoomStore interface {
	// Get returns the room for the given code, or (nil, nil) when absent.
	Get(ctx context.Context, code string) (*model.Room, error)

	// Put unconditionally writes a room. Used for creation.
	Put(ctx context.Context, room *model.Room) error

	// CompareAndSwap writes room only if the stored version still equals
	// expectedVersion. Returns ErrVersionConflict otherwise.
	CompareAndSwap(ctx context.Context, room *model.Room, expectedVersion int64) error
}
