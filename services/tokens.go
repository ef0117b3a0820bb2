package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

const ConfirmationTokenBytes = 32

// NewConfirmationToken returns 32 random bytes, hex encoded.
func NewConfirmationToken() (string, error) {
	b := make([]byte, ConfirmationTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate confirmation token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func NewAppointmentID() string {
	return uuid.NewString()
}
