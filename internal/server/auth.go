package server

import (
	"crypto/subtle"
	"strings"

	"dead-air/internal/db"
)

// requireHostPin is the single credential check in front of every mutating
// operation. The host PIN is a bare shared string carried in links; there
// are no sessions or tokens.
func requireHostPin(game *db.Game, pin string) error {
	provided := strings.TrimSpace(pin)
	if provided == "" {
		return unauthorizedError("host pin is required")
	}
	if subtle.ConstantTimeCompare([]byte(provided), []byte(game.HostPin)) != 1 {
		return unauthorizedError("host pin does not match")
	}
	return nil
}
