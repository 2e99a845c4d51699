package server

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log"
	"strings"

	"dead-air/internal/config"
	"dead-air/internal/db"
	"dead-air/internal/mail"

	"gorm.io/datatypes"
)

// intakeAnswers is the questionnaire shape. The three selects are
// required on the form; the store accepts whatever shape arrives, so a
// player can save a partial intake and finish it later.
type intakeAnswers struct {
	SocialStyle string `json:"socialStyle"`
	Comfort     string `json:"comfort"`
	Drink       string `json:"drink"`
	Allergies   string `json:"allergies,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type intakeStatus struct {
	Ready           bool
	Total           int
	Complete        int
	Notified        bool
	AlreadyNotified bool
}

// saveIntake stores the raw answer blob and marks the player complete in
// one update. Saving again overwrites; completion never un-sets.
func (s *Server) saveIntake(code string, answers intakeAnswers) (*db.Player, error) {
	player, err := s.findPlayerByJoinCode(strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, validationError("answers could not be encoded")
	}
	updates := map[string]any{
		"intake_json":     datatypes.JSON(raw),
		"intake_complete": true,
	}
	if err := s.db.Model(&db.Player{}).Where("id = ?", player.ID).Updates(updates).Error; err != nil {
		return nil, storeError(err)
	}
	log.Printf("intake saved game_id=%d player_id=%d", player.GameID, player.ID)
	return player, nil
}

// afterIntakeSubmit recomputes the game's intake tally and, on the last
// completion, notifies the operator exactly once. Winner selection is the
// unique insert on (game_id, type): of two racing "last player" calls,
// the one whose insert lands sends the summary, the other sees the
// constraint hit and treats it as already handled.
func (s *Server) afterIntakeSubmit(ctx context.Context, gameID uint) (*intakeStatus, error) {
	game, err := s.findGame(gameID)
	if err != nil {
		return nil, err
	}
	players, err := s.findGamePlayers(game.ID)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, notFoundError("game has no players")
	}

	complete := 0
	for _, player := range players {
		if player.IntakeComplete {
			complete++
		}
	}
	status := &intakeStatus{Total: len(players), Complete: complete}
	if complete < len(players) {
		return status, nil
	}
	status.Ready = true

	if s.cfg.NotifyOrder == config.NotifySendBeforeCommit {
		return s.notifySendBeforeCommit(ctx, game, players, status)
	}
	return s.notifyCommitBeforeSend(ctx, game, players, status)
}

// Default ordering: commit the dedup row, then send best-effort. A send
// failure after the row landed is logged and never retried, so delivery
// is at-most-once.
func (s *Server) notifyCommitBeforeSend(ctx context.Context, game *db.Game, players []db.Player, status *intakeStatus) (*intakeStatus, error) {
	won, err := s.insertIntakesCompleteRow(game.ID)
	if err != nil {
		return nil, err
	}
	if !won {
		status.AlreadyNotified = true
		return status, nil
	}
	if _, err := s.mail.Send(ctx, s.intakeSummaryMessage(game, players)); err != nil {
		log.Printf("intake summary send failed game_id=%d: %v", game.ID, err)
	}
	status.Notified = true
	return status, nil
}

// Alternate ordering: send first, commit after a confirmed send. A send
// failure leaves no row, so the next submit retries; the cost is a
// possible duplicate summary when callers race or crash mid-sequence.
func (s *Server) notifySendBeforeCommit(ctx context.Context, game *db.Game, players []db.Player, status *intakeStatus) (*intakeStatus, error) {
	if _, err := s.mail.Send(ctx, s.intakeSummaryMessage(game, players)); err != nil {
		return nil, notifierError(err)
	}
	won, err := s.insertIntakesCompleteRow(game.ID)
	if err != nil {
		return nil, err
	}
	if !won {
		status.AlreadyNotified = true
		return status, nil
	}
	status.Notified = true
	return status, nil
}

func (s *Server) insertIntakesCompleteRow(gameID uint) (bool, error) {
	row := db.AdminNotification{
		GameID: gameID,
		Type:   db.NotificationIntakesComplete,
	}
	if err := s.db.Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, storeError(err)
	}
	return true, nil
}

func (s *Server) intakeSummaryMessage(game *db.Game, players []db.Player) mail.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "<p>All %d intakes for game %d are in.</p>", len(players), game.ID)
	b.WriteString("<table border=\"1\" cellpadding=\"4\"><tr><th>Player</th><th>Social style</th><th>Comfort</th><th>Drink</th><th>Allergies</th><th>Notes</th></tr>")
	for _, player := range players {
		var answers intakeAnswers
		if len(player.IntakeJSON) > 0 {
			_ = json.Unmarshal(player.IntakeJSON, &answers)
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			html.EscapeString(player.Name),
			html.EscapeString(answers.SocialStyle),
			html.EscapeString(answers.Comfort),
			html.EscapeString(answers.Drink),
			html.EscapeString(answers.Allergies),
			html.EscapeString(answers.Notes),
		)
	}
	b.WriteString("</table>")
	return mail.Message{
		To:      s.cfg.OperatorEmail,
		Subject: fmt.Sprintf("Dead Air game %d: all intakes complete", game.ID),
		HTML:    b.String(),
	}
}
