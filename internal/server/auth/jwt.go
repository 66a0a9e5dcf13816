// Package auth mints and checks unlock tokens. A token is issued after a
// successful passphrase verification and lets the holder re-read the
// plaintext of one message without resending the passphrase.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avdeluna/whispernote/internal/common"
)

// Claims carries the standard claims plus the id of the unlocked message.
type Claims struct {
	jwt.RegisteredClaims
	MessageID string
}

// GenerateUnlockToken signs an HS256 token for the given message id.
// validityDuration should not outlive the message's remaining TTL.
func GenerateUnlockToken(messageID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		MessageID: messageID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetMessageIDFromToken validates the token and returns the message id it
// unlocks. Expired or malformed tokens yield ErrInvalidToken.
func GetMessageIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.MessageID, nil
}
