// Package client drives a single player's perspective on a room: issuing
// intents against the lifecycle engine and keeping a local snapshot fresh
// by polling. There is no push channel; consistency is eventual, bounded
// by the polling interval.
package client

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"memeclash/internal/model"
)

// Fetcher reads the authoritative room snapshot.
type Fetcher interface {
	GetRoom(ctx context.Context, code string) (*model.Room, error)
}

// Poller re-reads a room on a fixed interval and hands fresh snapshots to
// a callback. Snapshots are applied wholesale, last-received-wins by room
// version: an in-flight read that loses the race against a newer one is
// dropped, never applied backwards.
type Poller struct {
	fetch    Fetcher
	interval time.Duration
}

// NewPoller creates a poller with the given refresh interval.
func NewPoller(fetch Fetcher, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Poller{fetch: fetch, interval: interval}
}

// Run polls the room until ctx is cancelled. apply is called with each
// snapshot strictly newer than any previously delivered one. A fetch
// error or a vanished room skips the tick; the next tick tries again.
func (p *Poller) Run(ctx context.Context, code string, apply func(*model.Room)) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var lastVersion int64

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		room, err := p.fetch.GetRoom(ctx, code)
		if err != nil {
			log.Warn().Err(err).Str("room", code).Msg("poll failed")
			continue
		}
		if room == nil || room.Version <= lastVersion {
			continue
		}
		lastVersion = room.Version
		apply(room)
	}
}
