package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"memeclash/internal/model"
)

// ErrNoImages is returned when the catalog holds no image at all.
var ErrNoImages = errors.New("no images in catalog")

// ImageRepo handles MongoDB operations for the meme image catalog.
type ImageRepo interface {
	Insert(ctx context.Context, images []model.MemeImage) error
	RandomImage(ctx context.Context, themeID string) (model.MemeImage, error)
	Count(ctx context.Context) (int64, error)
}

type imageRepo struct {
	collection *mongo.Collection
}

// NewImageRepo creates a new image repository.
func NewImageRepo(db *mongo.Database) ImageRepo {
	return &imageRepo{
		collection: db.Collection("images"),
	}
}

func (r *imageRepo) Insert(ctx context.Context, images []model.MemeImage) error {
	docs := make([]interface{}, len(images))
	for i, img := range images {
		docs[i] = img
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// RandomImage draws one image uniformly at random among those tagged with
// the theme, with replacement. An unknown theme falls back to the whole
// catalog.
func (r *imageRepo) RandomImage(ctx context.Context, themeID string) (model.MemeImage, error) {
	img, err := r.sample(ctx, bson.M{"themeId": themeID})
	if err == nil {
		return img, nil
	}
	if !errors.Is(err, ErrNoImages) {
		return model.MemeImage{}, err
	}
	return r.sample(ctx, bson.M{})
}

func (r *imageRepo) sample(ctx context.Context, match bson.M) (model.MemeImage, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sample", Value: bson.M{"size": 1}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return model.MemeImage{}, err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return model.MemeImage{}, ErrNoImages
	}
	var img model.MemeImage
	if err := cursor.Decode(&img); err != nil {
		return model.MemeImage{}, err
	}
	return img, nil
}

func (r *imageRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
