package server

import (
	"strings"

	"dead-air/internal/db"
)

type redeemResult struct {
	GameID  uint
	HostPin string
}

// redeemPurchase exchanges a redeem code for the game id and host PIN.
// It is a pure lookup: redeeming the same code twice returns the same
// pair and writes nothing.
func (s *Server) redeemPurchase(code string) (*redeemResult, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, validationError("code is required")
	}
	purchase, err := s.findPurchaseByCode(normalized)
	if err != nil {
		return nil, err
	}
	if purchase.Status != db.PurchaseStatusPaid {
		return nil, unauthorizedError("purchase is not active")
	}
	game, err := s.findGame(purchase.GameID)
	if err != nil {
		return nil, err
	}
	return &redeemResult{
		GameID:  game.ID,
		HostPin: game.HostPin,
	}, nil
}
