package db

import "time"

// Round rows are seeded as placeholders at setup time. Authored stays
// false until the narration tooling replaces the placeholder, which is
// how the player view tells "not written yet" from "intentionally blank".
type Round struct {
	ID                uint      `gorm:"primaryKey"`
	GameID            uint      `gorm:"index;not null;uniqueIndex:idx_rounds_game_number"`
	Number            int       `gorm:"not null;uniqueIndex:idx_rounds_game_number"`
	Title             string    `gorm:"size:128"`
	NarrationText     string    `gorm:"type:text"`
	NarrationAudioURL string    `gorm:"size:512"`
	Authored          bool      `gorm:"not null;default:false"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}
