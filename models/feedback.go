package models

import "time"

// Feedback is an anonymous free-form submission, write-only from the
// application's point of view.
type Feedback struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:200" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedbackInput - form payload for feedback submissions
type FeedbackInput struct {
	Name    string `form:"name" validate:"max=100"`
	Email   string `form:"email" validate:"omitempty,email"`
	Message string `form:"message" validate:"required,min=1,max=1000"`
}
