package config

import (
	"flag"
	"os"
	"time"

	"github.com/avdeluna/whispernote/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   sweep bearer secret
//	-u string   unlock token secret
//	-t int      message TTL, hours
//	-k string   Gemini API key
//	-m string   Gemini model name
//	-g int      generation timeout, seconds
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes
//     using flagx.FilterArgs, avoiding collisions with other components.
//   - Duration flags are accepted as integers and then converted to
//     time.Duration values.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-u", "-t", "-k", "-m", "-g"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SweepSecret, "s", config.SweepSecret, "sweep bearer secret")
	fs.StringVar(&config.UnlockSecret, "u", config.UnlockSecret, "unlock token secret")

	messageTTL := fs.Int("t", int(config.MessageTTL.Hours()), "message TTL (in hours)")

	fs.StringVar(&config.GeminiAPIKey, "k", config.GeminiAPIKey, "Gemini API key")
	fs.StringVar(&config.GeminiModel, "m", config.GeminiModel, "Gemini model")

	generationTimeout := fs.Int("g", int(config.GenerationTimeout.Seconds()), "generation timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.MessageTTL = time.Duration(*messageTTL) * time.Hour
	config.GenerationTimeout = time.Duration(*generationTimeout) * time.Second
}
