package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"memeclash/internal/model"
)

// ThemeRepo handles MongoDB operations for theme packs.
type ThemeRepo interface {
	Upsert(ctx context.Context, pack *model.ThemePack) error
	GetByID(ctx context.Context, id string) (*model.ThemePack, error)
	List(ctx context.Context) ([]model.ThemePack, error)
}

type themeRepo struct {
	collection *mongo.Collection
}

// NewThemeRepo creates a new theme repository.
func NewThemeRepo(db *mongo.Database) ThemeRepo {
	return &themeRepo{
		collection: db.Collection("themes"),
	}
}

func (r *themeRepo) Upsert(ctx context.Context, pack *model.ThemePack) error {
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": pack.ID}, pack, opts)
	return err
}

func (r *themeRepo) GetByID(ctx context.Context, id string) (*model.ThemePack, error) {
	var pack model.ThemePack
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pack)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pack, nil
}

func (r *themeRepo) List(ctx context.Context) ([]model.ThemePack, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var packs []model.ThemePack
	if err := cursor.All(ctx, &packs); err != nil {
		return nil, err
	}
	return packs, nil
}
