package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AdminUser is created out-of-band by cmd/seedadmin, never via the HTTP API.
type AdminUser struct {
	ID           bson.ObjectID `json:"id"    bson:"_id,omitempty"`
	Email        string        `json:"email" bson:"email"`
	PasswordHash string        `json:"-"     bson:"password_hash"`
	CreatedAt    time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" bson:"updated_at"`
}
