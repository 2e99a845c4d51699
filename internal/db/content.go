package db

import "time"

type PlayerRoundContent struct {
	ID          uint      `gorm:"primaryKey"`
	GameID      uint      `gorm:"index;not null;uniqueIndex:idx_content_game_player_round"`
	PlayerID    uint      `gorm:"not null;uniqueIndex:idx_content_game_player_round"`
	RoundNumber int       `gorm:"not null;uniqueIndex:idx_content_game_player_round"`
	PrivateText string    `gorm:"type:text"`
	Authored    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}
