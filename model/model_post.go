package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Post types accepted by the API.
const (
	PostTypeNews  = "news"
	PostTypeStory = "story"
	PostTypeBlog  = "blog"
	PostTypePress = "press"
	PostTypeEvent = "event"
)

// PostTypes lists every valid post type, in the order error messages cite them.
var PostTypes = []string{PostTypeNews, PostTypeStory, PostTypeBlog, PostTypePress, PostTypeEvent}

// MaxGalleryImages caps imageUrls on posts and projects.
const MaxGalleryImages = 12

type Post struct {
	ID               bson.ObjectID `json:"id"               bson:"_id,omitempty"`
	Title            string        `json:"title"            bson:"title"`
	Slug             string        `json:"slug"             bson:"slug"`
	Type             string        `json:"type"             bson:"type"`
	Excerpt          string        `json:"excerpt"          bson:"excerpt"`
	Content          string        `json:"content"          bson:"content"`
	FeaturedImageURL string        `json:"featuredImageUrl" bson:"featured_image_url"`
	VideoURL         string        `json:"videoUrl"         bson:"video_url"`
	ImageURLs        []string      `json:"imageUrls"        bson:"image_urls"`
	Categories       []string      `json:"categories"       bson:"categories"`
	Tags             []string      `json:"tags"             bson:"tags"`
	IsFeatured       bool          `json:"isFeatured"       bson:"is_featured"`
	EventStartDate   *time.Time    `json:"eventStartDate"   bson:"event_start_date,omitempty"`
	EventEndDate     *time.Time    `json:"eventEndDate"     bson:"event_end_date,omitempty"`
	Location         string        `json:"location"         bson:"location"`
	Published        bool          `json:"published"        bson:"published"`
	// PublishedAt is non-nil iff Published is true.
	PublishedAt *time.Time `json:"publishedAt" bson:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"   bson:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt"   bson:"updated_at"`
}

func IsValidPostType(t string) bool {
	for _, v := range PostTypes {
		if t == v {
			return true
		}
	}
	return false
}
