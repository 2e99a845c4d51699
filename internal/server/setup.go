package server

import (
	"fmt"
	"log"
	"strings"

	"dead-air/internal/db"

	"gorm.io/gorm/clause"
)

const roundsPerGame = 4

type setupResult struct {
	AlreadySetUp bool
	Players      []db.Player
}

// setupGame turns a confirmed guest list into player rows plus the
// placeholder round and private-content rows the authoring step fills in
// later. Every write is individually idempotent, so re-running the flow
// after a mid-sequence crash converges instead of duplicating rows.
func (s *Server) setupGame(gameID uint, pin string, names []string) (*setupResult, error) {
	game, err := s.findGame(gameID)
	if err != nil {
		return nil, err
	}
	if err := requireHostPin(game, pin); err != nil {
		return nil, err
	}

	existing, err := s.findGamePlayers(game.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		// Double-submission guard: the batch already landed. Re-run the
		// idempotent seeds anyway so a crash between player insert and
		// round seeding heals on the next submit.
		if err := s.seedRounds(game.ID); err != nil {
			return nil, err
		}
		if err := s.seedPlayerContent(game.ID, existing); err != nil {
			return nil, err
		}
		if err := s.advanceToCollecting(game.ID); err != nil {
			return nil, err
		}
		return &setupResult{AlreadySetUp: true, Players: existing}, nil
	}

	cleaned := make([]string, len(names))
	for i, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return nil, validationError("player %d needs a name", i+1)
		}
		cleaned[i] = trimmed
	}

	players, err := s.insertPlayerBatch(game.ID, cleaned)
	if err != nil {
		return nil, err
	}
	if err := s.seedRounds(game.ID); err != nil {
		return nil, err
	}
	if err := s.seedPlayerContent(game.ID, players); err != nil {
		return nil, err
	}
	if err := s.advanceToCollecting(game.ID); err != nil {
		return nil, err
	}
	log.Printf("game set up game_id=%d players=%d", game.ID, len(players))
	return &setupResult{Players: players}, nil
}

// insertPlayerBatch writes the whole guest list in one INSERT. A join
// code collision anywhere in the batch aborts the statement, so the loop
// regenerates every code and retries.
func (s *Server) insertPlayerBatch(gameID uint, names []string) ([]db.Player, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		players := make([]db.Player, len(names))
		for i, name := range names {
			players[i] = db.Player{
				GameID:      gameID,
				Name:        name,
				JoinCode:    newPlayerJoinCode(),
				PlayerIndex: i,
			}
		}
		err := s.db.Create(&players).Error
		if err == nil {
			return players, nil
		}
		if isUniqueViolation(err) {
			log.Printf("join code collision, regenerating batch game_id=%d attempt=%d", gameID, attempt+1)
			continue
		}
		return nil, storeError(err)
	}
	return nil, storeError(fmt.Errorf("exhausted %d join code attempts", maxCodeAttempts))
}

func (s *Server) seedRounds(gameID uint) error {
	rounds := make([]db.Round, roundsPerGame)
	for i := range rounds {
		rounds[i] = db.Round{
			GameID: gameID,
			Number: i + 1,
			Title:  fmt.Sprintf("Round %d", i+1),
		}
	}
	err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rounds).Error
	if err != nil {
		return storeError(err)
	}
	return nil
}

func (s *Server) seedPlayerContent(gameID uint, players []db.Player) error {
	content := make([]db.PlayerRoundContent, 0, len(players)*roundsPerGame)
	for _, player := range players {
		for number := 1; number <= roundsPerGame; number++ {
			content = append(content, db.PlayerRoundContent{
				GameID:      gameID,
				PlayerID:    player.ID,
				RoundNumber: number,
			})
		}
	}
	if len(content) == 0 {
		return nil
	}
	err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&content).Error
	if err != nil {
		return storeError(err)
	}
	return nil
}

func (s *Server) advanceToCollecting(gameID uint) error {
	err := s.db.Model(&db.Game{}).
		Where("id = ?", gameID).
		Update("status", db.GameStatusCollectingIntakes).Error
	if err != nil {
		return storeError(err)
	}
	return nil
}
