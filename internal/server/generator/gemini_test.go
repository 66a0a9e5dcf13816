package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/avdeluna/whispernote/internal/common"
)

func TestDisabledGenerator(t *testing.T) {
	_, err := Disabled().Generate(context.Background(), "prompt", DefaultTemperature)
	if !errors.Is(err, common.ErrorGenerationFailed) {
		t.Fatalf("want ErrorGenerationFailed, got %v", err)
	}
}

func TestNewGeminiGenerator_RequiresAPIKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), GeminiConfig{})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestNewGeminiGenerator_Defaults(t *testing.T) {
	g, err := NewGeminiGenerator(context.Background(), GeminiConfig{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.model != defaultModel {
		t.Fatalf("want default model %q, got %q", defaultModel, g.model)
	}
	if g.timeout != defaultTimeout {
		t.Fatalf("want default timeout %v, got %v", defaultTimeout, g.timeout)
	}
}
