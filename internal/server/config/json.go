package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avdeluna/whispernote/internal/flagx"
	"github.com/avdeluna/whispernote/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "24h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddr      string         `json:"endpoint_addr"`
	DatabaseDSN       string         `json:"database_dsn"`
	SweepSecret       string         `json:"sweep_secret"`
	UnlockSecret      string         `json:"unlock_secret"`
	MessageTTL        timex.Duration `json:"message_ttl"`
	GeminiAPIKey      string         `json:"gemini_api_key"`
	GeminiModel       string         `json:"gemini_model"`
	GenerationTimeout timex.Duration `json:"generation_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The file path is taken from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.SweepSecret = c.SweepSecret
	config.UnlockSecret = c.UnlockSecret
	config.MessageTTL = time.Duration(c.MessageTTL.Duration)
	config.GeminiAPIKey = c.GeminiAPIKey
	config.GeminiModel = c.GeminiModel
	config.GenerationTimeout = time.Duration(c.GenerationTimeout.Duration)
}
