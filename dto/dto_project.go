package dto

import (
	"time"

	"foundation_api/model"
)

// ProjectInput mirrors PostInput: pointer fields keep partial updates honest.
type ProjectInput struct {
	Title            *string    `json:"title"`
	Slug             *string    `json:"slug"`
	ShortDescription *string    `json:"shortDescription"`
	LongDescription  *string    `json:"longDescription"`
	ThumbnailURL     *string    `json:"thumbnailUrl"`
	Status           *string    `json:"status"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	IsHighlighted    *bool      `json:"isHighlighted"`
	ImageURLs        *[]string  `json:"imageUrls"`
}

type ProjectList struct {
	Items      []model.Project `json:"items"`
	Pagination Pagination      `json:"pagination"`
}
