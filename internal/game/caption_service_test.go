package game

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memeclash/internal/config"
	"memeclash/internal/model"
)

func newDisabledCaptionService() *CaptionService {
	return &CaptionService{
		config: &config.AIConfig{APIKey: "", TimeoutMS: 100},
		client: &http.Client{Timeout: 100 * time.Millisecond},
	}
}

func TestGenerateHandFallback(t *testing.T) {
	svc := newDisabledCaptionService()

	hand := svc.GenerateHand(context.Background(), model.MemeImage{ID: "1", URL: "http://example.invalid/img.jpg"})
	assert.Len(t, hand, 5)
	for _, text := range hand {
		assert.NotEmpty(t, text)
	}
}

func TestGenerateMoveFallback(t *testing.T) {
	svc := newDisabledCaptionService()

	move := svc.GenerateMove(context.Background(), model.MemeImage{ID: "1"})
	assert.NotEmpty(t, move)
}

func TestJudgeFallbackIsTie(t *testing.T) {
	svc := newDisabledCaptionService()

	result := svc.Judge(context.Background(), model.MemeImage{ID: "1"}, "caption a", "caption b")
	assert.Equal(t, model.VerdictTie, result.Winner)
	assert.Equal(t, 50, result.UserScore)
	assert.Equal(t, 50, result.AIScore)
	assert.NotEmpty(t, result.Commentary)
}

func TestJudgeUnreachableAPIFallsBack(t *testing.T) {
	// API key set but endpoint unreachable: the call must degrade to the
	// tie verdict, never an error.
	svc := &CaptionService{
		config: &config.AIConfig{
			APIKey:    "test-key",
			BaseURL:   "http://127.0.0.1:1/models",
			Models:    config.GeminiModels{Hand: "m", Move: "m", Judge: "m"},
			TimeoutMS: 100,
		},
		client: &http.Client{Timeout: 100 * time.Millisecond},
	}

	result := svc.Judge(context.Background(), model.MemeImage{ID: "1", URL: "http://127.0.0.1:1/img.jpg"}, "a", "b")
	require.Equal(t, model.VerdictTie, result.Winner)

	hand := svc.GenerateHand(context.Background(), model.MemeImage{ID: "1", URL: "http://127.0.0.1:1/img.jpg"})
	assert.Len(t, hand, 5)
}
