package services

import (
	"strings"
	"time"

	"foundation_api/dto"
	"foundation_api/model"
)

// NewContactMessage builds a stored contact message from a validated payload.
// Emails are lowercased so operators can search them consistently.
func NewContactMessage(in dto.ContactInput, now time.Time) model.ContactMessage {
	return model.ContactMessage{
		Name:      strings.TrimSpace(in.Name),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		Message:   strings.TrimSpace(in.Message),
		CreatedAt: now,
	}
}
