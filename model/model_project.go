package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Project statuses accepted by the API.
const (
	ProjectStatusOngoing   = "ongoing"
	ProjectStatusCompleted = "completed"
	ProjectStatusUpcoming  = "upcoming"
)

var ProjectStatuses = []string{ProjectStatusOngoing, ProjectStatusCompleted, ProjectStatusUpcoming}

type Project struct {
	ID               bson.ObjectID `json:"id"               bson:"_id,omitempty"`
	Title            string        `json:"title"            bson:"title"`
	Slug             string        `json:"slug"             bson:"slug"`
	ShortDescription string        `json:"shortDescription" bson:"short_description"`
	LongDescription  string        `json:"longDescription"  bson:"long_description"`
	ThumbnailURL     string        `json:"thumbnailUrl"     bson:"thumbnail_url"`
	Status           string        `json:"status"           bson:"status"`
	StartDate        *time.Time    `json:"startDate"        bson:"start_date,omitempty"`
	EndDate          *time.Time    `json:"endDate"          bson:"end_date,omitempty"`
	IsHighlighted    bool          `json:"isHighlighted"    bson:"is_highlighted"`
	ImageURLs        []string      `json:"imageUrls"        bson:"image_urls"`
	CreatedAt        time.Time     `json:"createdAt"        bson:"created_at"`
	UpdatedAt        time.Time     `json:"updatedAt"        bson:"updated_at"`
}

func IsValidProjectStatus(s string) bool {
	for _, v := range ProjectStatuses {
		if s == v {
			return true
		}
	}
	return false
}
