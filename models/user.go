package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"unique;not null" json:"username" validate:"required,min=3,max=50"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:user" json:"role" validate:"required,oneof=user admin"`
	OwnedGames   []Game    `gorm:"many2many:user_owned_games" json:"ownedGames"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterInput - form payload for registration
type RegisterInput struct {
	Username string `form:"username" validate:"required,min=3,max=50"`
	Password string `form:"password" validate:"required,min=6,max=100"`
}

// LoginInput - form payload for login
type LoginInput struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
