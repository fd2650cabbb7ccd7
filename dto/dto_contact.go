package dto

import "time"

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name    string `json:"name"    example:"Jane Doe"`
	Email   string `json:"email"   example:"jane@example.org"`
	Phone   string `json:"phone,omitempty" example:"+66 81 234 5678"`
	Message string `json:"message" example:"I would like to volunteer."`
}

// ContactReceipt acknowledges a stored message without echoing its content.
type ContactReceipt struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}
