package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"memeclash/internal/model"
)

// Redis stores each room as a JSON blob under room:<CODE> with a TTL, so
// abandoned rooms age out on their own. CompareAndSwap runs under
// WATCH/MULTI to get single-writer semantics per room key.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed RoomStore.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (s *Redis) key(code string) string {
	return fmt.Sprintf("room:%s", code)
}

func (s *Redis) Get(ctx context.Context, code string) (*model.Room, error) {
	data, err := s.client.Get(ctx, s.key(code)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var room model.Room
	if err := json.Unmarshal([]byte(data), &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Redis) Put(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(room.Code), data, s.ttl).Err()
}

func (s *Redis) CompareAndSwap(ctx context.Context, room *model.Room, expectedVersion int64) error {
	key := s.key(room.Code)

	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err == redis.Nil {
			return ErrVersionConflict
		}
		if err != nil {
			return err
		}

		var current model.Room
		if err := json.Unmarshal([]byte(data), &current); err != nil {
			return err
		}
		if current.Version != expectedVersion {
			return ErrVersionConflict
		}

		payload, err := json.Marshal(room)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, s.ttl)
			return nil
		})
		return err
	}, key)

	// A concurrent write between WATCH and EXEC aborts the transaction;
	// report it the same way as a version mismatch.
	if err == redis.TxFailedErr {
		return ErrVersionConflict
	}
	return err
}
