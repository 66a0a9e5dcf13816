// Package generator defines the text-generation contract used by the lookup
// flow, and its Gemini-backed implementation.
package generator

import (
	"context"
	"fmt"

	"github.com/avdeluna/whispernote/internal/common"
)

// Generator produces a short message for a prompt. The temperature parameter
// controls creativity; implementations apply their own default when it is 0.
// A single attempt is made per call; any provider failure surfaces as
// common.ErrorGenerationFailed.
type Generator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}

type disabledGenerator struct{}

func (disabledGenerator) Generate(context.Context, string, float32) (string, error) {
	return "", fmt.Errorf("%w: no provider configured", common.ErrorGenerationFailed)
}

// Disabled returns a Generator for deployments without a provider API key.
// Every call fails with ErrorGenerationFailed.
func Disabled() Generator {
	return disabledGenerator{}
}
