package game

import "errors"

var (
	// ErrUnauthenticated means the operation requires a resolved identity
	// and none was present.
	ErrUnauthenticated = errors.New("not signed in")

	// ErrRoomNotFound means no room matches the given code.
	ErrRoomNotFound = errors.New("room not found")

	// ErrCodeAlreadyInUse means explicit-code creation hit an existing room.
	ErrCodeAlreadyInUse = errors.New("room code already in use")

	// ErrNotHost means a host-only action was attempted by a guest.
	ErrNotHost = errors.New("only the host may start the game")

	// ErrGameAlreadyStarted means a join arrived after the room left the
	// lobby.
	ErrGameAlreadyStarted = errors.New("game already started")

	// ErrOracleUnavailable means the caption oracle failed and no fallback
	// applies.
	ErrOracleUnavailable = errors.New("caption oracle unavailable")

	// errRetriesExhausted means the optimistic write kept losing races.
	errRetriesExhausted = errors.New("room update retries exhausted")
)
