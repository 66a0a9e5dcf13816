// Package services contains server-side business logic. This file implements
// MessageService, the temporary message lifecycle: creation with content
// screening, reads with lazy expiry, passphrase verification, and the
// administrative sweep.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avdeluna/whispernote/internal/common"
	"github.com/avdeluna/whispernote/internal/cryptox"
	"github.com/avdeluna/whispernote/internal/dbx"
	"github.com/avdeluna/whispernote/internal/logging"
	"github.com/avdeluna/whispernote/internal/server/auth"
	"github.com/avdeluna/whispernote/internal/server/config"
	"github.com/avdeluna/whispernote/internal/server/models"
	"github.com/avdeluna/whispernote/internal/server/repositories/repomanager"
)

// ContentFilter is the prohibited-content predicate applied at submission
// time. It is pure and pluggable; the production implementation lives in
// internal/profanity.
type ContentFilter interface {
	ContainsProhibited(text string) bool
}

// CreateMessageRequest carries the fields of a new temporary message.
// Passphrase is optional; a non-empty value locks the message.
type CreateMessageRequest struct {
	SenderName    string
	RecipientName string
	Salutation    string
	Message       string
	Closing       string
	Passphrase    string
}

// VerifyResult is the outcome of a passphrase verification. On success the
// plaintext message and an unlock token are set.
type VerifyResult struct {
	Success     bool
	Message     string
	UnlockToken string
}

// MessageService orchestrates the temporary message lifecycle.
type MessageService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	filter       ContentFilter
	logger       logging.Logger
	sweepSecret  string
	unlockSecret []byte
	messageTTL   time.Duration

	// now is a seam for tests.
	now func() time.Time
}

// NewMessageService constructs a MessageService using repositories, the
// content filter, and server config.
func NewMessageService(db *sql.DB, m repomanager.RepositoryManager, filter ContentFilter, cfg *config.Config, l logging.Logger) *MessageService {
	return &MessageService{
		db:           db,
		repomanager:  m,
		filter:       filter,
		logger:       l.With("module", "message_service"),
		sweepSecret:  cfg.SweepSecret,
		unlockSecret: []byte(cfg.UnlockSecret),
		messageTTL:   cfg.MessageTTL,
		now:          time.Now,
	}
}

// Create screens the message body, applies default templates to blank
// salutation/closing fields, assigns the expiry, and stores the record.
// Returns the generated id. A screening failure performs no write.
func (s *MessageService) Create(ctx context.Context, req *CreateMessageRequest) (string, error) {
	if s.filter.ContainsProhibited(req.Message) {
		return "", common.ErrorContentRejected
	}

	salutation := req.Salutation
	if salutation == "" {
		salutation = common.DefaultSalutation
	}
	closing := req.Closing
	if closing == "" {
		closing = common.DefaultClosing
	}

	var passphraseHash string
	if req.Passphrase != "" {
		var err error
		passphraseHash, err = cryptox.HashPassphrase(req.Passphrase)
		if err != nil {
			return "", fmt.Errorf("passphrase hashing error: %w", err)
		}
	}

	expiresAt := s.now().Add(s.messageTTL)
	m := &models.TemporaryMessage{
		ID:             uuid.NewString(),
		SenderName:     req.SenderName,
		RecipientName:  req.RecipientName,
		Salutation:     salutation,
		Message:        req.Message,
		Closing:        closing,
		PassphraseHash: passphraseHash,
		ExpiresAt:      &expiresAt,
	}

	repo := s.repomanager.Messages(s.db)
	if err := repo.Create(ctx, m); err != nil {
		s.logger.Error(ctx, "message insert failed", "error", err.Error())
		return "", fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}
	return m.ID, nil
}

// Get returns the message view for id. Locked messages come back with the
// body redacted unless unlockToken proves a prior successful verification
// of the same id.
func (s *MessageService) Get(ctx context.Context, id string, unlockToken string) (*models.MessageView, error) {
	m, err := s.getLive(ctx, id)
	if err != nil {
		return nil, err
	}

	view := &models.MessageView{
		ID:            m.ID,
		SenderName:    m.SenderName,
		RecipientName: m.RecipientName,
		Salutation:    m.Salutation,
		Message:       m.Message,
		Closing:       m.Closing,
		CreatedAt:     m.CreatedAt,
	}

	if !m.Locked() {
		return view, nil
	}

	if unlockToken != "" {
		tokenID, err := auth.GetMessageIDFromToken(unlockToken, s.unlockSecret)
		if err == nil && tokenID == m.ID {
			return view, nil
		}
	}

	view.Message = ""
	view.Locked = true
	return view, nil
}

// Verify checks the supplied passphrase against the stored digest. Expired
// and absent ids, and any mismatch, yield Success=false; the record is never
// mutated beyond lazy expiry.
func (s *MessageService) Verify(ctx context.Context, id string, passphrase string) (*VerifyResult, error) {
	m, err := s.getLive(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &VerifyResult{Success: false}, nil
		}
		return nil, err
	}

	if !cryptox.CheckPassphrase(m.PassphraseHash, passphrase) {
		return &VerifyResult{Success: false}, nil
	}

	validity := s.messageTTL
	if m.ExpiresAt != nil {
		validity = m.ExpiresAt.Sub(s.now())
	}
	token, err := auth.GenerateUnlockToken(m.ID, s.unlockSecret, validity)
	if err != nil {
		s.logger.Error(ctx, "unlock token signing failed", "error", err.Error())
		return nil, common.ErrorInternal
	}

	return &VerifyResult{Success: true, Message: m.Message, UnlockToken: token}, nil
}

// SweepExpired deletes every row whose expiry has passed. The caller
// authenticates with the configured shared secret.
func (s *MessageService) SweepExpired(ctx context.Context, token string) (int64, error) {
	if s.sweepSecret == "" {
		return 0, common.ErrorMisconfigured
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(s.sweepSecret)) != 1 {
		return 0, common.ErrorUnauthorized
	}

	n, err := s.repomanager.Messages(s.db).DeleteExpired(ctx, s.now())
	if err != nil {
		s.logger.Error(ctx, "sweep failed", "error", err.Error())
		return 0, fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}
	return n, nil
}

// getLive loads a message and enforces lazy expiry: the first read that
// observes an expired row deletes it inside the same transaction and
// reports not found.
func (s *MessageService) getLive(ctx context.Context, id string) (*models.TemporaryMessage, error) {
	var m *models.TemporaryMessage
	expired := false

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Messages(tx)

		found, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if found.ExpiredAt(s.now()) {
			// the delete must commit, so the expired flag travels outside
			// the transaction instead of an error
			expired = true
			return repo.Delete(ctx, id)
		}
		m = found
		return nil
	})

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "message read failed", "error", err.Error())
		return nil, fmt.Errorf("%w: %v", common.ErrorStoreUnavailable, err)
	}
	if expired {
		return nil, common.ErrorNotFound
	}
	return m, nil
}
