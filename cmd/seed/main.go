// Seeds the meme image and theme pack catalog into MongoDB.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"memeclash/internal/catalog"
	"memeclash/internal/config"
	"memeclash/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB)

	themeRepo := repository.NewThemeRepo(db)
	for i := range catalog.ThemePacks {
		if err := themeRepo.Upsert(ctx, &catalog.ThemePacks[i]); err != nil {
			log.Fatalf("Failed to seed theme %s: %v", catalog.ThemePacks[i].ID, err)
		}
	}
	log.Printf("Seeded %d theme packs", len(catalog.ThemePacks))

	imageRepo := repository.NewImageRepo(db)
	count, err := imageRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count images: %v", err)
	}
	if count > 0 {
		log.Printf("Images already seeded (%d present), skipping", count)
		return
	}

	if err := imageRepo.Insert(ctx, catalog.MemeImages); err != nil {
		log.Fatalf("Failed to seed images: %v", err)
	}
	log.Printf("Seeded %d images", len(catalog.MemeImages))
}
