package models

import "time"

// Purchase links a paid-for game to its buyer. The composite unique index
// dedupes duplicate success callbacks for the same (user, game) pair.
type Purchase struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_purchases_user_game" json:"userId"`
	GameID    uint      `gorm:"not null;uniqueIndex:idx_purchases_user_game" json:"gameId"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Game      Game      `gorm:"foreignKey:GameID" json:"game"`
	OrderID   string    `gorm:"size:64" json:"orderId"`
	PaymentID string    `gorm:"size:64" json:"paymentId"`
	CreatedAt time.Time `json:"createdAt"`
}
