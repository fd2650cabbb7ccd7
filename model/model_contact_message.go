package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ContactMessage is write-only from the API's perspective: created by the
// public contact form and never read back over HTTP.
type ContactMessage struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Name      string        `json:"name"      bson:"name"`
	Email     string        `json:"email"     bson:"email"`
	Phone     string        `json:"phone"     bson:"phone"`
	Message   string        `json:"message"   bson:"message"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
