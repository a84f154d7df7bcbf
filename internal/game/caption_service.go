package game

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"memeclash/internal/catalog"
	"memeclash/internal/config"
	"memeclash/internal/model"
)

// CaptionService is the caption oracle: it deals hands, plays the AI
// opponent's move, and judges rounds via the Gemini API. Every call
// degrades to a canned fallback rather than surfacing a failure; the
// game must never stall because the oracle is down.
type CaptionService struct {
	config *config.AIConfig
	client *http.Client
}

// NewCaptionService creates a caption service from the default AI config.
func NewCaptionService() *CaptionService {
	cfg := config.DefaultAIConfig()
	return &CaptionService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// GenerateHand returns candidate captions for the player to choose from.
func (s *CaptionService) GenerateHand(ctx context.Context, image model.MemeImage) []string {
	if !s.config.IsEnabled() {
		return s.fallbackHand()
	}

	prompt := "Analyze this image. Generate 5 distinct, hilarious, short meme captions that could fit this image. " +
		"They should be relatable situations or funny reactions. " +
		`Return ONLY valid JSON: {"captions": ["...", "...", "...", "...", "..."]}`

	response, err := s.callGemini(ctx, s.config.Models.Hand, image.URL, prompt)
	if err != nil {
		log.Warn().Err(err).Str("image", image.ID).Msg("hand generation failed, dealing fallback hand")
		return s.fallbackHand()
	}

	var parsed struct {
		Captions []string `json:"captions"`
	}
	if err := json.Unmarshal([]byte(response), &parsed); err != nil || len(parsed.Captions) == 0 {
		return s.fallbackHand()
	}
	return parsed.Captions
}

// GenerateMove returns the AI opponent's caption for an image.
func (s *CaptionService) GenerateMove(ctx context.Context, image model.MemeImage) string {
	const fallbackMove = "I am speechless."

	if !s.config.IsEnabled() {
		return fallbackMove
	}

	prompt := "You are a meme master. Look at this image and write ONE incredibly funny, clever, and perfectly " +
		"fitting caption. It needs to be better than a human's caption. " +
		`Return ONLY valid JSON: {"caption": "..."}`

	response, err := s.callGemini(ctx, s.config.Models.Move, image.URL, prompt)
	if err != nil {
		log.Warn().Err(err).Str("image", image.ID).Msg("AI move failed, using fallback caption")
		return fallbackMove
	}

	var parsed struct {
		Caption string `json:"caption"`
	}
	if err := json.Unmarshal([]byte(response), &parsed); err != nil || parsed.Caption == "" {
		return fallbackMove
	}
	return parsed.Caption
}

// Judge rules on a pair of captions for an image. The fallback is a tie.
func (s *CaptionService) Judge(ctx context.Context, image model.MemeImage, userCaption, aiCaption string) model.JudgeResult {
	tie := model.JudgeResult{
		Winner:     model.VerdictTie,
		UserScore:  50,
		AIScore:    50,
		Commentary: "The judge is out to lunch. It's a draw.",
		Funniest:   "N/A",
	}

	if !s.config.IsEnabled() {
		return tie
	}

	prompt := fmt.Sprintf(`You are the Judge of the Meme Court. Here is the image.

Contestant 1 (Human) Caption: %q
Contestant 2 (AI) Caption: %q

Decide who is funnier based on the image context. Be strict but fair.
Return ONLY valid JSON:
{"winner": "user" or "ai" or "tie", "userScore": 0-100, "aiScore": 0-100, "commentary": "...", "funniestCaption": "..."}`,
		userCaption, aiCaption)

	response, err := s.callGemini(ctx, s.config.Models.Judge, image.URL, prompt)
	if err != nil {
		log.Warn().Err(err).Str("image", image.ID).Msg("judging failed, ruling a tie")
		return tie
	}

	var result model.JudgeResult
	if err := json.Unmarshal([]byte(response), &result); err != nil || result.Winner == "" {
		return tie
	}
	return result
}

func (s *CaptionService) fallbackHand() []string {
	hand := make([]string, 0, 5)
	hand = append(hand, catalog.FallbackCaptions[:5]...)
	return hand
}

// callGemini sends a multimodal request (image + prompt) to the Gemini API
// and returns the text of the first candidate.
func (s *CaptionService) callGemini(ctx context.Context, modelName, imageURL, prompt string) (string, error) {
	imageData, err := s.fetchImage(ctx, imageURL)
	if err != nil {
		return "", fmt.Errorf("fetch image: %w", err)
	}

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"inline_data": map[string]string{
							"mime_type": "image/jpeg",
							"data":      imageData,
						},
					},
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(modelName), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", ErrOracleUnavailable
}

func (s *CaptionService) fetchImage(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
