package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"memeclash/internal/model"
	"memeclash/internal/store"
)

// ImageCatalog supplies theme-scoped random images for rounds.
type ImageCatalog interface {
	RandomImage(ctx context.Context, themeID string) (model.MemeImage, error)
}

// Scoreboard mirrors player scores into a queryable leaderboard. Mirror
// failures must never block the state machine.
type Scoreboard interface {
	UpdateScore(ctx context.Context, roomCode, playerID string, score int) error
}

// MatchArchive persists the durable record of a finished game.
type MatchArchive interface {
	Save(ctx context.Context, result *model.MatchResult) error
}

// How many times an operation re-reads and retries after losing an
// optimistic write race.
const casRetries = 5

// How many fresh codes to try before giving up on creation.
const codeAttempts = 10

// errNoChange signals that a mutation decided the room is already in the
// desired state; the update loop returns the room without writing.
var errNoChange = errors.New("no change")

// RoomService owns the room state machine: creation, join admission,
// round lifecycle, voting and advancement. Every mutation is one atomic
// read-modify-write against the store; concurrent writers retry on
// version conflicts so no update is ever lost.
type RoomService struct {
	store     store.RoomStore
	images    ImageCatalog
	board     Scoreboard
	archive   MatchArchive
	maxRounds int
}

// NewRoomService creates a room service. maxRounds is the fixed round
// count assigned to new rooms.
func NewRoomService(st store.RoomStore, images ImageCatalog, maxRounds int) *RoomService {
	return &RoomService{
		store:     st,
		images:    images,
		maxRounds: maxRounds,
	}
}

// SetScoreboard attaches the optional leaderboard mirror.
func (s *RoomService) SetScoreboard(b Scoreboard) {
	s.board = b
}

// SetArchive attaches the optional finished-game archive.
func (s *RoomService) SetArchive(a MatchArchive) {
	s.archive = a
}

// CreateRoom creates a room with a freshly generated code and the
// requester as its host.
func (s *RoomService) CreateRoom(ctx context.Context, themeID string, requester model.Identity) (*model.Room, error) {
	if requester.IsZero() {
		return nil, ErrUnauthenticated
	}

	for attempt := 0; attempt < codeAttempts; attempt++ {
		code, err := newRoomCode()
		if err != nil {
			return nil, err
		}
		existing, err := s.store.Get(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("check room code: %w", err)
		}
		if existing != nil {
			continue
		}

		room := s.newRoom(code, themeID, requester)
		if err := s.store.Put(ctx, room); err != nil {
			return nil, fmt.Errorf("create room: %w", err)
		}
		return room, nil
	}

	return nil, fmt.Errorf("failed to generate unique room code")
}

// CreateRoomWithCode creates a room at a caller-chosen code. This is the
// recovery path offered when a join fails, so a collision is surfaced to
// the user instead of silently regenerating.
func (s *RoomService) CreateRoomWithCode(ctx context.Context, code, themeID string, requester model.Identity) (*model.Room, error) {
	if requester.IsZero() {
		return nil, ErrUnauthenticated
	}

	code = NormalizeCode(code)
	existing, err := s.store.Get(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("check room code: %w", err)
	}
	if existing != nil {
		return nil, ErrCodeAlreadyInUse
	}

	room := s.newRoom(code, themeID, requester)
	if err := s.store.Put(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	return room, nil
}

// JoinRoom seats the requester in the room with the given code. Joining a
// room the requester is already seated in returns the room unchanged, at
// any status.
func (s *RoomService) JoinRoom(ctx context.Context, code string, requester model.Identity) (*model.Room, error) {
	if requester.IsZero() {
		return nil, ErrUnauthenticated
	}

	room, err := s.update(ctx, NormalizeCode(code), func(r *model.Room) error {
		if r.FindPlayer(requester.ID) != nil {
			return errNoChange
		}
		if r.Status != model.RoomStatusLobby {
			return ErrGameAlreadyStarted
		}
		r.Players = append(r.Players, model.Player{
			ID:       requester.ID,
			Name:     requester.Name,
			Avatar:   requester.Avatar,
			Score:    0,
			IsHost:   false,
			JoinedAt: time.Now(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// GetRoom is the pure snapshot read used by polling. A missing room is
// (nil, nil), never an error, so a poll against a vanished room cannot
// crash the client.
func (s *RoomService) GetRoom(ctx context.Context, code string) (*model.Room, error) {
	return s.store.Get(ctx, NormalizeCode(code))
}

// StartGame transitions the room out of the lobby and deals the first
// image. Only the host may start; starting an already started game is a
// no-op.
func (s *RoomService) StartGame(ctx context.Context, code string, requester model.Identity) (*model.Room, error) {
	if requester.IsZero() {
		return nil, ErrUnauthenticated
	}

	room, err := s.update(ctx, NormalizeCode(code), func(r *model.Room) error {
		if r.HostID != requester.ID {
			return ErrNotHost
		}
		if r.Status != model.RoomStatusLobby {
			return errNoChange
		}
		img, err := s.images.RandomImage(ctx, r.ThemeID)
		if err != nil {
			return fmt.Errorf("draw image: %w", err)
		}
		r.Status = model.RoomStatusPlaying
		r.CurrentImage = &img
		return nil
	})
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// SubmitCard records a player's caption for the current round.
// Resubmission replaces the player's previous entry rather than appending
// a duplicate, so the round never holds more captions than players. Once
// every seated player has submitted, the room moves to voting. Missing
// room or player is a no-op.
func (s *RoomService) SubmitCard(ctx context.Context, code, playerID, text string) (*model.Room, error) {
	return s.update(ctx, NormalizeCode(code), func(r *model.Room) error {
		if r.Status != model.RoomStatusPlaying {
			return errNoChange
		}
		player := r.FindPlayer(playerID)
		if player == nil {
			return errNoChange
		}

		card := model.CaptionCard{
			ID:      uuid.New().String(),
			Text:    text,
			OwnerID: playerID,
		}
		player.CurrentCard = &card

		replaced := false
		for i := range r.RoundCaptions {
			if r.RoundCaptions[i].OwnerID == playerID {
				r.RoundCaptions[i] = card
				replaced = true
				break
			}
		}
		if !replaced {
			r.RoundCaptions = append(r.RoundCaptions, card)
		}

		if r.AllSubmitted() {
			r.Status = model.RoomStatusVoting
		}
		return nil
	})
}

// Vote awards the round to the owner of the given card and advances the
// room: next round with a fresh image, or the final leaderboard after the
// last round. One adjudicated vote decides a round; a vote for a card
// that is no longer on the table is a no-op, so a stale duplicate vote
// cannot double-score.
func (s *RoomService) Vote(ctx context.Context, code, cardID string) (*model.Room, error) {
	finished := false

	room, err := s.update(ctx, NormalizeCode(code), func(r *model.Room) error {
		finished = false
		if r.Status != model.RoomStatusVoting {
			return errNoChange
		}
		card := r.FindCaption(cardID)
		if card == nil {
			return errNoChange
		}

		if winner := r.FindPlayer(card.OwnerID); winner != nil {
			winner.Score++
		}

		if r.CurrentRound >= r.MaxRounds {
			r.Status = model.RoomStatusLeaderboard
			finished = true
			return nil
		}

		img, err := s.images.RandomImage(ctx, r.ThemeID)
		if err != nil {
			return fmt.Errorf("draw image: %w", err)
		}
		r.CurrentRound++
		r.Status = model.RoomStatusPlaying
		r.CurrentImage = &img
		r.RoundCaptions = nil
		for i := range r.Players {
			r.Players[i].CurrentCard = nil
		}
		return nil
	})
	if err != nil || room == nil {
		return room, err
	}

	s.mirrorScores(ctx, room)
	if finished {
		s.archiveMatch(ctx, room)
	}
	return room, nil
}

func (s *RoomService) newRoom(code, themeID string, host model.Identity) *model.Room {
	return &model.Room{
		Code:         code,
		HostID:       host.ID,
		ThemeID:      themeID,
		Status:       model.RoomStatusLobby,
		CurrentRound: 1,
		MaxRounds:    s.maxRounds,
		Players: []model.Player{{
			ID:       host.ID,
			Name:     host.Name,
			Avatar:   host.Avatar,
			Score:    0,
			IsHost:   true,
			JoinedAt: time.Now(),
		}},
		Version:   1,
		CreatedAt: time.Now(),
	}
}

// update runs one atomic read-modify-write against the store, retrying a
// bounded number of times when a concurrent writer wins the race. A nil
// room result means the room does not exist; callers decide whether that
// is an error or a no-op.
func (s *RoomService) update(ctx context.Context, code string, mutate func(*model.Room) error) (*model.Room, error) {
	for attempt := 0; attempt < casRetries; attempt++ {
		room, err := s.store.Get(ctx, code)
		if err != nil {
			return nil, err
		}
		if room == nil {
			return nil, nil
		}

		expected := room.Version
		if err := mutate(room); err != nil {
			if errors.Is(err, errNoChange) {
				return room, nil
			}
			return nil, err
		}
		room.Version++

		err = s.store.CompareAndSwap(ctx, room, expected)
		if err == nil {
			return room, nil
		}
		if !errors.Is(err, store.ErrVersionConflict) {
			return nil, err
		}
	}
	return nil, errRetriesExhausted
}

func (s *RoomService) mirrorScores(ctx context.Context, room *model.Room) {
	if s.board == nil {
		return
	}
	for _, p := range room.Players {
		if err := s.board.UpdateScore(ctx, room.Code, p.ID, p.Score); err != nil {
			log.Warn().Err(err).Str("room", room.Code).Msg("leaderboard mirror failed")
			return
		}
	}
}

func (s *RoomService) archiveMatch(ctx context.Context, room *model.Room) {
	if s.archive == nil {
		return
	}

	standings := make([]model.Standing, len(room.Players))
	for i, p := range room.Players {
		standings[i] = model.Standing{
			PlayerID: p.ID,
			Name:     p.Name,
			Score:    p.Score,
		}
	}
	// Rank by score, stable on join order.
	for i := 1; i < len(standings); i++ {
		for j := i; j > 0 && standings[j].Score > standings[j-1].Score; j-- {
			standings[j], standings[j-1] = standings[j-1], standings[j]
		}
	}
	for i := range standings {
		standings[i].Rank = i + 1
	}

	result := &model.MatchResult{
		RoomCode:   room.Code,
		ThemeID:    room.ThemeID,
		Rounds:     room.MaxRounds,
		Standings:  standings,
		FinishedAt: time.Now(),
	}
	if err := s.archive.Save(ctx, result); err != nil {
		log.Warn().Err(err).Str("room", room.Code).Msg("match archive failed")
	}
}
