// Package models contains client-side data transfer objects for the
// Whisper Note API and the local unlock cache.
package models

import "time"

// MessageDraft is a new message as entered by the user.
type MessageDraft struct {
	SenderName    string `json:"senderName"`
	RecipientName string `json:"recipientName"`
	Salutation    string `json:"salutation,omitempty"`
	Message       string `json:"message"`
	Closing       string `json:"closing,omitempty"`
	Passphrase    string `json:"passphrase,omitempty"`
}

// MessageView is a message as returned by the server. For a locked message
// the body is empty and Locked is true.
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

// VerifyResult is the outcome of a passphrase check.
type VerifyResult struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	UnlockToken string `json:"unlockToken"`
}

// Resolution is a lookup result.
type Resolution struct {
	Message string `json:"message"`
	Prompt  string `json:"prompt"`
}

// UnlockedMessage is a locally cached plaintext of a message the user has
// unlocked with its passphrase.
type UnlockedMessage struct {
	MessageID   string
	Message     string
	UnlockToken string
	UnlockedAt  time.Time
}
