package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"memeclash/internal/model"
)

// MatchRepo handles MongoDB operations for finished-game records.
type MatchRepo interface {
	Save(ctx context.Context, result *model.MatchResult) error
	GetByRoomCode(ctx context.Context, roomCode string) (*model.MatchResult, error)
}

type matchRepo struct {
	collection *mongo.Collection
}

// NewMatchRepo creates a new match repository.
func NewMatchRepo(db *mongo.Database) MatchRepo {
	return &matchRepo{
		collection: db.Collection("matches"),
	}
}

func (r *matchRepo) Save(ctx context.Context, result *model.MatchResult) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"roomCode": result.RoomCode}, result, opts)
	return err
}

func (r *matchRepo) GetByRoomCode(ctx context.Context, roomCode string) (*model.MatchResult, error) {
	var result model.MatchResult
	err := r.collection.FindOne(ctx, bson.M{"roomCode": roomCode}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
