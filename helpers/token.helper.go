package helpers

import (
	"time"

	"github.com/o1egl/paseto"
)

const tokenFooter = "velomart"

const tokenTTL = 7 * 24 * time.Hour

// GenerateToken issues a paseto v2 local token carrying the user id.
func GenerateToken(secret []byte, userID string) (string, error) {
	now := time.Now()
	jsonToken := paseto.JSONToken{
		Subject:    userID,
		IssuedAt:   now,
		Expiration: now.Add(tokenTTL),
	}
	return paseto.NewV2().Encrypt(secret, jsonToken, tokenFooter)
}

// ParseToken decrypts and validates a token and returns the user id.
func ParseToken(secret []byte, token string) (string, error) {
	var jsonToken paseto.JSONToken
	var footer string
	if err := paseto.NewV2().Decrypt(token, secret, &jsonToken, &footer); err != nil {
		return "", err
	}
	if err := jsonToken.Validate(); err != nil {
		return "", err
	}
	return jsonToken.Subject, nil
}
