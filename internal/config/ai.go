package config

import "os"

// GeminiModels defines which Gemini models back each caption task.
type GeminiModels struct {
	// Hand deals the player's candidate captions (needs to be fast).
	Hand string `json:"hand"`

	// Move produces the AI opponent's single caption.
	Move string `json:"move"`

	// Judge rules on a pair of captions (quality over speed).
	Judge string `json:"judge"`
}

// AIConfig holds all AI-related configuration.
type AIConfig struct {
	APIKey    string       `json:"-"` // Never serialize
	BaseURL   string       `json:"baseUrl"`
	Models    GeminiModels `json:"models"`
	TimeoutMS int          `json:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: "https://generativelanguage.googleapis.com/v1beta/models",
		Models: GeminiModels{
			Hand:  getEnvOrDefault("GEMINI_MODEL_HAND", "gemini-2.5-flash"),
			Move:  getEnvOrDefault("GEMINI_MODEL_MOVE", "gemini-2.5-flash"),
			Judge: getEnvOrDefault("GEMINI_MODEL_JUDGE", "gemini-2.5-flash"),
		},
		TimeoutMS: 10000,
	}
}

// IsEnabled returns true if the AI API is configured.
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ModelEndpoint returns the full endpoint for a given model.
func (c *AIConfig) ModelEndpoint(model string) string {
	return c.BaseURL + "/" + model + ":generateContent"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
