package dto

import (
	"time"

	"foundation_api/model"
)

// PostInput is the admin create/update payload. Pointer fields distinguish
// "key absent" from "key present with zero value" so partial updates leave
// untouched fields alone.
type PostInput struct {
	Title            *string    `json:"title"`
	Slug             *string    `json:"slug"`
	Type             *string    `json:"type"`
	Excerpt          *string    `json:"excerpt"`
	Content          *string    `json:"content"`
	FeaturedImageURL *string    `json:"featuredImageUrl"`
	VideoURL         *string    `json:"videoUrl"`
	ImageURLs        *[]string  `json:"imageUrls"`
	Categories       *[]string  `json:"categories"`
	Tags             *[]string  `json:"tags"`
	IsFeatured       *bool      `json:"isFeatured"`
	EventStartDate   *time.Time `json:"eventStartDate"`
	EventEndDate     *time.Time `json:"eventEndDate"`
	Location         *string    `json:"location"`
	Published        *bool      `json:"published"`
}

type PostList struct {
	Items      []model.Post `json:"items"`
	Pagination Pagination   `json:"pagination"`
}

// EventList has no pagination: upcoming events are a bounded lookahead.
type EventList struct {
	Items []model.Post `json:"items"`
}
