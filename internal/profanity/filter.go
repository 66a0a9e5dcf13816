// Package profanity screens message bodies for prohibited content before they
// are accepted for storage. The predicate is pure and deterministic: the
// go-away dictionary extended with a curated list embedded at build time.
package profanity

import (
	_ "embed"
	"encoding/json"
	"fmt"

	goaway "github.com/TwiN/go-away"
)

//go:embed profanity.json
var wordListJSON []byte

type wordList struct {
	Words []string `json:"words"`
}

// Filter answers whether a text contains prohibited content.
type Filter struct {
	detector *goaway.ProfanityDetector
}

// New builds a Filter from the library dictionary plus the embedded curated
// word list.
func New() (*Filter, error) {
	var extra wordList
	if err := json.Unmarshal(wordListJSON, &extra); err != nil {
		return nil, fmt.Errorf("word list parse error: %w", err)
	}

	profanities := make([]string, 0, len(goaway.DefaultProfanities)+len(extra.Words))
	profanities = append(profanities, goaway.DefaultProfanities...)
	profanities = append(profanities, extra.Words...)

	detector := goaway.NewProfanityDetector().WithCustomDictionary(
		profanities,
		goaway.DefaultFalsePositives,
		goaway.DefaultFalseNegatives,
	)

	return &Filter{detector: detector}, nil
}

// ContainsProhibited reports whether text matches any prohibited entry.
func (f *Filter) ContainsProhibited(text string) bool {
	return f.detector.IsProfane(text)
}
