package server

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"dead-air/internal/db"
	"dead-air/internal/mail"
)

type inviteResult struct {
	Email     string
	MessageID string
	IntakeURL string
}

// invitePlayer emails a player their personal intake link. A new address
// replaces the stored one; with no address at all there is nothing to
// send to, which is the caller's mistake, not the notifier's.
func (s *Server) invitePlayer(ctx context.Context, gameID, playerID uint, pin, email string) (*inviteResult, error) {
	game, err := s.findGame(gameID)
	if err != nil {
		return nil, err
	}
	if err := requireHostPin(game, pin); err != nil {
		return nil, err
	}
	player, err := s.findGamePlayer(game.ID, playerID)
	if err != nil {
		return nil, err
	}

	address := strings.TrimSpace(email)
	if address != "" && address != player.InviteEmail {
		err := s.db.Model(&db.Player{}).Where("id = ?", player.ID).Update("invite_email", address).Error
		if err != nil {
			return nil, storeError(err)
		}
	}
	if address == "" {
		address = player.InviteEmail
	}
	if address == "" {
		return nil, validationError("email is required")
	}

	intakeURL := s.intakeURL(player.JoinCode)
	msg := mail.Message{
		To:      address,
		Subject: "You're in a game of Dead Air",
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your host invited you to a game of Dead Air. Before the party, fill out your intake form:</p><p><a href=\"%s\">%s</a></p><p>Keep this link to yourself. The game uses it to show you your private text.</p>",
			html.EscapeString(player.Name), intakeURL, intakeURL,
		),
	}
	messageID, err := s.mail.Send(ctx, msg)
	if err != nil {
		return nil, notifierError(err)
	}
	log.Printf("player invited game_id=%d player_id=%d email=%s", game.ID, player.ID, address)
	return &inviteResult{
		Email:     address,
		MessageID: messageID,
		IntakeURL: intakeURL,
	}, nil
}

func (s *Server) intakeURL(joinCode string) string {
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/intake/" + joinCode
}
