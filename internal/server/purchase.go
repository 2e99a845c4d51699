package server

import (
	"context"
	"fmt"
	"log"

	"dead-air/internal/db"
	"dead-air/internal/mail"
)

type purchaseResult struct {
	RedeemCode  string
	GameID      uint
	HostPin     string
	PlayerCount int
}

// createMockPurchase stands in for a real checkout: it creates the game
// shell and a paid purchase row whose redeem code the buyer shares with
// the host. No money moves anywhere.
func (s *Server) createMockPurchase(ctx context.Context, packSize int, email string) (*purchaseResult, error) {
	game := db.Game{
		HostPin:     newHostPin(),
		PlayerCount: packSize,
		Status:      db.GameStatusSetup,
	}
	if err := s.db.Create(&game).Error; err != nil {
		return nil, storeError(err)
	}

	var purchase db.Purchase
	inserted := false
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		purchase = db.Purchase{
			RedeemCode: newRedeemCode(),
			PackSize:   packSize,
			Status:     db.PurchaseStatusPaid,
			GameID:     game.ID,
			Email:      email,
		}
		err := s.db.Create(&purchase).Error
		if err == nil {
			inserted = true
			break
		}
		if isUniqueViolation(err) {
			log.Printf("redeem code collision, regenerating game_id=%d attempt=%d", game.ID, attempt+1)
			continue
		}
		return nil, storeError(err)
	}
	if !inserted {
		return nil, storeError(fmt.Errorf("exhausted %d redeem code attempts", maxCodeAttempts))
	}

	if email != "" {
		s.sendPurchaseConfirmation(ctx, email, purchase.RedeemCode)
	}

	log.Printf("mock purchase created game_id=%d redeem_code=%s pack_size=%d", game.ID, purchase.RedeemCode, packSize)
	return &purchaseResult{
		RedeemCode:  purchase.RedeemCode,
		GameID:      game.ID,
		HostPin:     game.HostPin,
		PlayerCount: packSize,
	}, nil
}

// Confirmation mail is best-effort: a failed send never fails the purchase.
func (s *Server) sendPurchaseConfirmation(ctx context.Context, email, redeemCode string) {
	msg := mail.Message{
		To:      email,
		Subject: "Your Dead Air game is ready",
		HTML: fmt.Sprintf(
			"<p>Thanks for picking up Dead Air.</p><p>Your redeem code is <strong>%s</strong>. Enter it at <a href=\"%s\">%s</a> to set up your game.</p>",
			redeemCode, s.cfg.BaseURL, s.cfg.BaseURL,
		),
	}
	if _, err := s.mail.Send(ctx, msg); err != nil {
		log.Printf("purchase confirmation send failed email=%s: %v", email, err)
	}
}
