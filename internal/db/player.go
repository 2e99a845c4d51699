package db

import (
	"time"

	"gorm.io/datatypes"
)

// Player.JoinCode is the public lookup key for the intake form and the
// phone view; it carries no authorization beyond possession.
type Player struct {
	ID             uint           `gorm:"primaryKey"`
	GameID         uint           `gorm:"index;not null"`
	Name           string         `gorm:"size:64;not null"`
	JoinCode       string         `gorm:"size:12;uniqueIndex;not null"`
	PlayerIndex    int            `gorm:"not null;default:0"`
	IntakeComplete bool           `gorm:"not null;default:false"`
	IntakeJSON     datatypes.JSON `gorm:"type:jsonb"`
	InviteEmail    string         `gorm:"size:254"`
	InvitePhone    string         `gorm:"size:32"`
	CreatedAt      time.Time      `gorm:"not null"`
	UpdatedAt      time.Time      `gorm:"not null"`
}
