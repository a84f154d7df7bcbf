package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"memeclash/internal/model"
)

// SoloService runs the single-player game: the human picks a caption from
// a dealt hand, the AI opponent plays its own, and the oracle judges the
// pair. All oracle calls degrade to fallbacks, so a solo round always
// completes.
type SoloService struct {
	images   ImageCatalog
	captions *CaptionService
}

// NewSoloService creates a solo game service.
func NewSoloService(images ImageCatalog, captions *CaptionService) *SoloService {
	return &SoloService{
		images:   images,
		captions: captions,
	}
}

// NewRound draws a theme-scoped image and deals the player's hand.
func (s *SoloService) NewRound(ctx context.Context, themeID string) (*model.SoloRound, error) {
	img, err := s.images.RandomImage(ctx, themeID)
	if err != nil {
		return nil, fmt.Errorf("draw image: %w", err)
	}

	texts := s.captions.GenerateHand(ctx, img)
	hand := make([]model.CaptionCard, len(texts))
	for i, text := range texts {
		hand[i] = model.CaptionCard{
			ID:   uuid.New().String(),
			Text: text,
		}
	}

	return &model.SoloRound{Image: img, Hand: hand}, nil
}

// Play pits the chosen caption against the AI opponent and returns the
// judged outcome.
func (s *SoloService) Play(ctx context.Context, image model.MemeImage, chosenCaption string) (*model.SoloOutcome, error) {
	aiText := s.captions.GenerateMove(ctx, image)
	result := s.captions.Judge(ctx, image, chosenCaption, aiText)

	return &model.SoloOutcome{
		PlayerCard: model.CaptionCard{
			ID:   uuid.New().String(),
			Text: chosenCaption,
		},
		AICard: model.CaptionCard{
			ID:   uuid.New().String(),
			Text: aiText,
			IsAI: true,
		},
		Result: result,
	}, nil
}
