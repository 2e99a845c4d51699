package db

import "time"

const (
	GameStatusSetup             = "setup"
	GameStatusCollectingIntakes = "collecting_intakes"
	GameStatusReady             = "ready"
)

type Game struct {
	ID             uint      `gorm:"primaryKey"`
	HostPin        string    `gorm:"size:12;not null"`
	PlayerCount    int       `gorm:"not null;default:0"`
	Status         string    `gorm:"size:32;not null"`
	CurrentRound   int       `gorm:"not null;default:0"`
	StoryGenerated bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
	Players        []Player
	Rounds         []Round
}
