package pkg

import "github.com/google/uuid"

// GenerateGameID - returns a new random game identifier.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateNewSessionID - returns a new random player identifier.
func GenerateNewSessionID() string {
	return uuid.NewString()
}
