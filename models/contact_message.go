package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a message submitted through the site's contact form
type ContactMessage struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required,max=200"`
	Email       string    `json:"email" validate:"required,email,max=320"`
	Message     string    `json:"message" validate:"required,max=5000"`
	SubmittedAt time.Time `json:"submittedAt"`
}
