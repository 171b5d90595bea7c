package pkg

import "github.com/google/uuid"

// GenerateGameID returns a random identifier for a new game session.
func GenerateGameID() string {
	return uuid.NewString()
}
