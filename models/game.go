package models

type Game struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	PricePaise  int64  `gorm:"not null" json:"pricePaise"`
	Image       string `json:"image"`
	Developer   string `json:"developer"`
}

// GameInput - admin form payload for catalog entries
type GameInput struct {
	Name        string `form:"name" json:"name" validate:"required,min=1,max=200"`
	Description string `form:"description" json:"description" validate:"max=2000"`
	PricePaise  int64  `form:"pricePaise" json:"pricePaise" validate:"gte=0"`
	Image       string `form:"image" json:"image" validate:"omitempty,url"`
	Developer   string `form:"developer" json:"developer" validate:"max=200"`
}
