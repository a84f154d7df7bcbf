package catalog

import (
	"context"
	"errors"
	"math/rand"
	"sync"

	"memeclash/internal/model"
)

// ErrEmptyCatalog is returned when no image exists at all.
var ErrEmptyCatalog = errors.New("catalog: no images available")

// Static serves random images from the embedded tables without any
// external storage. Selection is uniform with replacement; an unknown
// theme falls back to the whole catalog.
type Static struct {
	mu      sync.Mutex
	rng     *rand.Rand
	byTheme map[string][]model.MemeImage
	all     []model.MemeImage
}

// NewStatic builds a Static catalog over the embedded image table.
func NewStatic(seed int64) *Static {
	byTheme := make(map[string][]model.MemeImage)
	for _, img := range MemeImages {
		byTheme[img.ThemeID] = append(byTheme[img.ThemeID], img)
	}
	return &Static{
		rng:     rand.New(rand.NewSource(seed)),
		byTheme: byTheme,
		all:     MemeImages,
	}
}

func (s *Static) RandomImage(_ context.Context, themeID string) (model.MemeImage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool := s.byTheme[themeID]
	if len(pool) == 0 {
		pool = s.all
	}
	if len(pool) == 0 {
		return model.MemeImage{}, ErrEmptyCatalog
	}
	return pool[s.rng.Intn(len(pool))], nil
}
