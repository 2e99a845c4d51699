package server

import (
	"errors"

	"dead-air/internal/db"

	"github.com/jackc/pgconn"
	"gorm.io/gorm"
)

func (s *Server) findGame(gameID uint) (*db.Game, error) {
	var game db.Game
	if err := s.db.First(&game, gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("game not found")
		}
		return nil, storeError(err)
	}
	return &game, nil
}

func (s *Server) findGamePlayers(gameID uint) ([]db.Player, error) {
	var players []db.Player
	err := s.db.Where("game_id = ?", gameID).
		Order("player_index ASC").
		Find(&players).Error
	if err != nil {
		return nil, storeError(err)
	}
	return players, nil
}

func (s *Server) findPlayerByJoinCode(code string) (*db.Player, error) {
	var player db.Player
	if err := s.db.Where("join_code = ?", code).First(&player).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("player not found")
		}
		return nil, storeError(err)
	}
	return &player, nil
}

func (s *Server) findGamePlayer(gameID, playerID uint) (*db.Player, error) {
	var player db.Player
	err := s.db.Where("game_id = ? AND id = ?", gameID, playerID).First(&player).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("player not found")
		}
		return nil, storeError(err)
	}
	return &player, nil
}

func (s *Server) findPurchaseByCode(code string) (*db.Purchase, error) {
	var purchase db.Purchase
	if err := s.db.Where("redeem_code = ?", code).First(&purchase).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError("no purchase matches that code")
		}
		return nil, storeError(err)
	}
	return &purchase, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
