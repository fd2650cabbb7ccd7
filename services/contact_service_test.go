package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"foundation_api/dto"
)

func TestNewContactMessageNormalizes(t *testing.T) {
	msg := NewContactMessage(dto.ContactInput{
		Name:    "  Jane Doe  ",
		Email:   " Jane@Example.ORG ",
		Phone:   " +1 555 0100 ",
		Message: "  I would like to volunteer.  ",
	}, now)

	assert.Equal(t, "Jane Doe", msg.Name)
	assert.Equal(t, "jane@example.org", msg.Email)
	assert.Equal(t, "+1 555 0100", msg.Phone)
	assert.Equal(t, "I would like to volunteer.", msg.Message)
	assert.Equal(t, now, msg.CreatedAt)
}
