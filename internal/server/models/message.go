// Package models defines server-side data models for Whisper Note.
package models

import "time"

// TemporaryMessage is a persisted, time-limited, optionally
// passphrase-protected message shareable via its opaque id.
type TemporaryMessage struct {
	ID            string
	SenderName    string
	RecipientName string
	Salutation    string
	Message       string
	Closing       string

	// PassphraseHash holds the argon2id digest of the passphrase, or an
	// empty string for unprotected messages.
	PassphraseHash string

	// ExpiresAt is nullable in the schema; normal creation always sets it.
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// Locked reports whether the message withholds its body pending passphrase
// verification.
func (m *TemporaryMessage) Locked() bool {
	return m.PassphraseHash != ""
}

// ExpiredAt reports whether the message is logically deleted at the given
// instant. A message with no expiry never expires.
func (m *TemporaryMessage) ExpiredAt(now time.Time) bool {
	return m.ExpiresAt != nil && !m.ExpiresAt.After(now)
}

// MessageView is the read model returned to callers. For locked messages the
// body is redacted.
type MessageView struct {
	ID            string    `json:"id"`
	SenderName    string    `json:"senderName"`
	RecipientName string    `json:"recipientName"`
	Salutation    string    `json:"salutation"`
	Message       string    `json:"message"`
	Closing       string    `json:"closing"`
	Locked        bool      `json:"locked"`
	CreatedAt     time.Time `json:"createdAt"`
}
