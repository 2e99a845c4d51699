package db

import "time"

const NotificationIntakesComplete = "intakes_complete"

// AdminNotification existence is the dedup guard for operator emails:
// the unique index on (game_id, type) picks exactly one winner when
// concurrent callers race to notify.
type AdminNotification struct {
	ID        uint      `gorm:"primaryKey"`
	GameID    uint      `gorm:"not null;uniqueIndex:idx_notifications_game_type"`
	Type      string    `gorm:"size:64;not null;uniqueIndex:idx_notifications_game_type"`
	CreatedAt time.Time `gorm:"not null"`
}
