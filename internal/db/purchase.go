package db

import "time"

const PurchaseStatusPaid = "paid"

type Purchase struct {
	ID         uint      `gorm:"primaryKey"`
	RedeemCode string    `gorm:"size:16;uniqueIndex;not null"`
	PackSize   int       `gorm:"not null"`
	Status     string    `gorm:"size:32;not null"`
	GameID     uint      `gorm:"index;not null"`
	Email      string    `gorm:"size:254"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}
