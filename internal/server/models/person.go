package models

import "time"

// KnownPerson is a pre-seeded record mapping name aliases to a custom
// message-generation prompt and an optional permanently cached result.
// Records are seeded out-of-band and mutated at most once (cache fill).
type KnownPerson struct {
	ID        int64
	Aliases   []string
	Prompt    string
	AIMessage string // empty until the first generation is cached
	CreatedAt time.Time
}
