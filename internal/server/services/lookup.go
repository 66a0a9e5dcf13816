// This file implements LookupService: resolving a display name to an
// AI-authored message, with a permanent cache for known persons and a
// randomized-prompt fallback for everyone else.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/avdeluna/whispernote/internal/common"
	"github.com/avdeluna/whispernote/internal/logging"
	"github.com/avdeluna/whispernote/internal/server/generator"
	"github.com/avdeluna/whispernote/internal/server/repositories/repomanager"
)

// Fixed vocabularies for the randomized fallback prompt. One entry of each
// is drawn uniformly per request.
var (
	tones    = []string{"sweet", "funny", "poetic", "casual", "warm", "playful", "inspirational", "gratitude"}
	themes   = []string{"adventurous", "nostalgic", "quirky", "sincere", "motivational", "friendship"}
	emotions = []string{"joy", "gratitude", "admiration", "excitement", "happiness", "love"}
)

// Resolution is a resolved message together with the prompt that produced it.
type Resolution struct {
	Message string
	Prompt  string
}

// LookupService resolves display names to messages.
type LookupService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	generator   generator.Generator
	logger      logging.Logger
}

// NewLookupService constructs a LookupService.
func NewLookupService(db *sql.DB, m repomanager.RepositoryManager, g generator.Generator, l logging.Logger) *LookupService {
	return &LookupService{
		db:          db,
		repomanager: m,
		generator:   g,
		logger:      l.With("module", "lookup_service"),
	}
}

// ResolveMessageForName returns a message for name. Known persons get their
// authored prompt (cached permanently after the first generation); everyone
// else gets a randomized prompt at a higher creativity setting. Any failure
// along the known-person path, storage included, falls back to the random
// path, so the caller only sees an error when the fallback generation
// itself fails.
func (s *LookupService) ResolveMessageForName(ctx context.Context, name string) (*Resolution, error) {
	res, err := s.resolveKnown(ctx, name)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		s.logger.Warn(ctx, "known-person path failed, falling back", "name", name, "error", err.Error())
	}
	return s.generateRandom(ctx, name)
}

// CheckNameExists reports whether a known person's alias set contains name.
// Storage errors degrade to false.
func (s *LookupService) CheckNameExists(ctx context.Context, name string) bool {
	_, err := s.repomanager.Persons(s.db).FindByAlias(ctx, name)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "alias check failed", "name", name, "error", err.Error())
		}
		return false
	}
	return true
}

func (s *LookupService) resolveKnown(ctx context.Context, name string) (*Resolution, error) {
	repo := s.repomanager.Persons(s.db)

	person, err := repo.FindByAlias(ctx, name)
	if err != nil {
		return nil, err
	}

	if person.AIMessage != "" {
		return &Resolution{Message: person.AIMessage, Prompt: person.Prompt}, nil
	}

	text, err := s.generator.Generate(ctx, person.Prompt, generator.DefaultTemperature)
	if err != nil {
		return nil, err
	}

	// First write wins; a concurrent caller may already have filled the
	// cache. Either way this caller keeps its own text.
	won, err := repo.CacheAIMessage(ctx, person.ID, text)
	if err != nil {
		return nil, err
	}
	if !won {
		s.logger.Info(ctx, "generation cache already filled", "person_id", person.ID)
	}

	return &Resolution{Message: text, Prompt: person.Prompt}, nil
}

func (s *LookupService) generateRandom(ctx context.Context, name string) (*Resolution, error) {
	tone := tones[rand.IntN(len(tones))]
	theme := themes[rand.IntN(len(themes))]
	emotion := emotions[rand.IntN(len(emotions))]

	prompt := fmt.Sprintf(
		"Make a %s for %s, %s message that expresses %s. Keep it brief but complete, no more than 4 sentences. Add a bit of creativity!. Keep the focus entirely on them and avoid mentioning the sender",
		tone, name, theme, emotion)

	text, err := s.generator.Generate(ctx, prompt, generator.RandomTemperature)
	if err != nil {
		return nil, err
	}

	// random-path results are deliberately not persisted
	return &Resolution{Message: text, Prompt: prompt}, nil
}
