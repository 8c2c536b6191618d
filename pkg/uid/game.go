package uid

import "github.com/google/uuid"

// GenerateGameID returns a random identifier for a newly started game.
func GenerateGameID() string {
	return uuid.NewString()
}
