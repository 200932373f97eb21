package models

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	GameID    uint      `gorm:"not null;index" json:"gameId"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	Game      Game      `gorm:"foreignKey:GameID" json:"game"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentInput - form payload for posting a comment
type CommentInput struct {
	Body      string `form:"comment" validate:"required,min=1,max=500"`
	GameToken string `form:"game_token"`
}
