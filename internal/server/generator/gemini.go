package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/avdeluna/whispernote/internal/common"
)

const (
	// DefaultTemperature is the creativity used for authored prompts;
	// RandomTemperature is the higher setting for the random-fallback path.
	DefaultTemperature float32 = 0.6
	RandomTemperature  float32 = 0.9

	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 30 * time.Second

	// Output is bounded; generated messages are at most a few sentences.
	maxOutputTokens = 200
	topP    float32 = 0.8
)

// GeminiConfig holds settings for the Gemini-backed generator.
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// GeminiGenerator implements Generator on the Gemini API.
type GeminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiGenerator constructs a generator. The API key is required; model
// and timeout fall back to defaults.
func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("generator API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client error: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &GeminiGenerator{client: client, model: model, timeout: timeout}, nil
}

// Generate makes a single bounded-time attempt against the provider. Any
// failure, including an empty completion, maps to ErrorGenerationFailed so
// callers can fall back without inspecting provider detail.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	if temperature <= 0 {
		temperature = DefaultTemperature
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature:     genai.Ptr(temperature),
			TopP:            genai.Ptr(topP),
			MaxOutputTokens: maxOutputTokens,
		})
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorGenerationFailed, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", common.ErrorGenerationFailed)
	}
	return text, nil
}
