package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"memeclash/internal/game"
	"memeclash/internal/model"
)

// Engine is the slice of the room lifecycle engine a client needs.
type Engine interface {
	Fetcher
	CreateRoom(ctx context.Context, themeID string, requester model.Identity) (*model.Room, error)
	CreateRoomWithCode(ctx context.Context, code, themeID string, requester model.Identity) (*model.Room, error)
	JoinRoom(ctx context.Context, code string, requester model.Identity) (*model.Room, error)
	StartGame(ctx context.Context, code string, requester model.Identity) (*model.Room, error)
	SubmitCard(ctx context.Context, code, playerID, text string) (*model.Room, error)
	Vote(ctx context.Context, code, cardID string) (*model.Room, error)
}

// JoinError reports a failed join along with the normalized code, so the
// caller can offer to create a room at that code instead of dead-ending.
type JoinError struct {
	Code string
	Err  error
}

func (e *JoinError) Error() string {
	return fmt.Sprintf("join room %s: %v", e.Code, e.Err)
}

func (e *JoinError) Unwrap() error {
	return e.Err
}

// CanCreate reports whether creating a room at the failed code is a
// sensible recovery (the room simply does not exist).
func (e *JoinError) CanCreate() bool {
	return errors.Is(e.Err, game.ErrRoomNotFound)
}

// Client is one player's handle on a room. All reads go through the
// local snapshot; all writes go to the engine, and the polling loop folds
// the resulting state back in.
type Client struct {
	engine   Engine
	identity model.Identity
	interval time.Duration

	mu       sync.Mutex
	room     *model.Room
	onUpdate func(*model.Room)
	stop     context.CancelFunc
}

// New creates a client for the given identity. pollInterval <= 0 uses the
// default.
func New(engine Engine, identity model.Identity, pollInterval time.Duration) *Client {
	return &Client{
		engine:   engine,
		identity: identity,
		interval: pollInterval,
	}
}

// OnUpdate registers a hook invoked with every fresh snapshot, including
// the ones produced by this client's own actions. This is how a guest
// observes the host starting the game.
func (c *Client) OnUpdate(fn func(*model.Room)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onUpdate = fn
}

// Room returns the latest snapshot this client holds, or nil outside a
// room.
func (c *Client) Room() *model.Room {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.room == nil {
		return nil
	}
	return c.room.Clone()
}

// CreateRoom creates a room and starts polling it.
func (c *Client) CreateRoom(ctx context.Context, themeID string) (*model.Room, error) {
	room, err := c.engine.CreateRoom(ctx, themeID, c.identity)
	if err != nil {
		return nil, err
	}
	c.enter(room)
	return room, nil
}

// CreateRoomAt creates a room at an explicit code, the recovery path
// after a failed join.
func (c *Client) CreateRoomAt(ctx context.Context, code, themeID string) (*model.Room, error) {
	room, err := c.engine.CreateRoomWithCode(ctx, code, themeID, c.identity)
	if err != nil {
		return nil, err
	}
	c.enter(room)
	return room, nil
}

// Join joins the room with the given code and starts polling it. Failure
// is reported as a *JoinError.
func (c *Client) Join(ctx context.Context, code string) (*model.Room, error) {
	room, err := c.engine.JoinRoom(ctx, code, c.identity)
	if err != nil {
		return nil, &JoinError{Code: game.NormalizeCode(code), Err: err}
	}
	c.enter(room)
	return room, nil
}

// Start asks the engine to start the game in the current room.
func (c *Client) Start(ctx context.Context) error {
	code, err := c.currentCode()
	if err != nil {
		return err
	}
	room, err := c.engine.StartGame(ctx, code, c.identity)
	if err != nil {
		return err
	}
	c.apply(room)
	return nil
}

// Submit plays a caption for the current round.
func (c *Client) Submit(ctx context.Context, text string) error {
	code, err := c.currentCode()
	if err != nil {
		return err
	}
	room, err := c.engine.SubmitCard(ctx, code, c.identity.ID, text)
	if err != nil {
		return err
	}
	c.apply(room)
	return nil
}

// Vote casts the round's adjudicated vote for a card.
func (c *Client) Vote(ctx context.Context, cardID string) error {
	code, err := c.currentCode()
	if err != nil {
		return err
	}
	room, err := c.engine.Vote(ctx, code, cardID)
	if err != nil {
		return err
	}
	c.apply(room)
	return nil
}

// Leave stops polling and drops the local snapshot. The seat in the room
// is kept; there is no voluntary leave in the room model.
func (c *Client) Leave() {
	c.mu.Lock()
	stop := c.stop
	c.stop = nil
	c.room = nil
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
}

func (c *Client) currentCode() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.room == nil {
		return "", game.ErrRoomNotFound
	}
	return c.room.Code, nil
}

func (c *Client) enter(room *model.Room) {
	c.mu.Lock()
	if c.stop != nil {
		c.stop()
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.stop = cancel
	c.room = room.Clone()
	c.mu.Unlock()

	poller := NewPoller(c.engine, c.interval)
	go poller.Run(ctx, room.Code, c.apply)
}

// apply replaces the local snapshot if the incoming one is fresher.
func (c *Client) apply(room *model.Room) {
	if room == nil {
		return
	}

	c.mu.Lock()
	if c.room != nil && room.Version <= c.room.Version {
		c.mu.Unlock()
		return
	}
	c.room = room.Clone()
	fn := c.onUpdate
	c.mu.Unlock()

	if fn != nil {
		fn(room)
	}
}
