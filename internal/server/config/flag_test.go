package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-d", "db", "-s", "sweep-secret",
			"-u", "unlock-secret", "-t", "48", "-k", "api-key", "-m", "gemini-2.5-pro", "-g", "10",
		}, expectPanic: false,
			expected: &Config{
				EndpointAddr:      "127.0.0.1:9090",
				DatabaseDSN:       "db",
				SweepSecret:       "sweep-secret",
				UnlockSecret:      "unlock-secret",
				MessageTTL:        48 * time.Hour,
				GeminiAPIKey:      "api-key",
				GeminiModel:       "gemini-2.5-pro",
				GenerationTimeout: 10 * time.Second,
			}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
