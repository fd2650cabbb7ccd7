package services

import (
	"strings"
	"time"

	"foundation_api/dto"
	"foundation_api/internal/slugify"
	"foundation_api/model"
)

// NormalizePostInput trims string fields and cleans array fields in place.
// On create, absent gallery fields materialize as empty values; on update
// they stay absent so the stored values survive untouched. When a gallery is
// supplied and no featured image is, the first gallery entry becomes the
// featured image.
func NormalizePostInput(in *dto.PostInput, isUpdate bool) {
	trimPtr(in.Title)
	trimPtr(in.Slug)
	trimPtr(in.Type)
	trimPtr(in.Excerpt)
	trimPtr(in.Content)
	trimPtr(in.VideoURL)
	trimPtr(in.Location)
	trimPtr(in.FeaturedImageURL)

	if in.Categories != nil {
		*in.Categories = normalizeStringSlice(*in.Categories)
	}
	if in.Tags != nil {
		*in.Tags = normalizeStringSlice(*in.Tags)
	}

	if !isUpdate && in.ImageURLs == nil {
		in.ImageURLs = &[]string{}
	}
	if in.ImageURLs != nil {
		*in.ImageURLs = normalizeStringSlice(*in.ImageURLs)
	}

	if !isUpdate && in.FeaturedImageURL == nil {
		empty := ""
		in.FeaturedImageURL = &empty
	}

	if in.ImageURLs != nil && len(*in.ImageURLs) > 0 && deref(in.FeaturedImageURL) == "" {
		first := (*in.ImageURLs)[0]
		in.FeaturedImageURL = &first
	}
}

// NewPost builds a Post from a validated, normalized create payload. The slug
// is derived from the title when absent; publishedAt is stamped iff the post
// is created already published.
func NewPost(in dto.PostInput, now time.Time) model.Post {
	p := model.Post{
		Title:            deref(in.Title),
		Slug:             strings.ToLower(deref(in.Slug)),
		Type:             deref(in.Type),
		Excerpt:          deref(in.Excerpt),
		Content:          deref(in.Content),
		FeaturedImageURL: deref(in.FeaturedImageURL),
		VideoURL:         deref(in.VideoURL),
		Location:         deref(in.Location),
		ImageURLs:        []string{},
		Categories:       []string{},
		Tags:             []string{},
		EventStartDate:   in.EventStartDate,
		EventEndDate:     in.EventEndDate,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if in.ImageURLs != nil {
		p.ImageURLs = *in.ImageURLs
	}
	if in.Categories != nil {
		p.Categories = *in.Categories
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	if in.IsFeatured != nil {
		p.IsFeatured = *in.IsFeatured
	}

	if p.Slug == "" {
		p.Slug = slugify.Slugify(p.Title)
	}

	if in.Published != nil && *in.Published {
		p.Published = true
		publishedAt := now
		p.PublishedAt = &publishedAt
	}

	return p
}

// ApplyPostUpdate merges a validated, normalized partial payload into an
// existing post. Only present fields change; image-bearing fields replace
// wholesale. Changing the title without supplying a slug re-derives the slug.
func ApplyPostUpdate(p *model.Post, in dto.PostInput, now time.Time) {
	if in.Title != nil {
		if deref(in.Slug) == "" && *in.Title != p.Title {
			p.Slug = slugify.Slugify(*in.Title)
		}
		p.Title = *in.Title
	}
	if deref(in.Slug) != "" {
		p.Slug = strings.ToLower(*in.Slug)
	}
	if in.Type != nil {
		p.Type = *in.Type
	}
	if in.Excerpt != nil {
		p.Excerpt = *in.Excerpt
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if in.FeaturedImageURL != nil {
		p.FeaturedImageURL = *in.FeaturedImageURL
	}
	if in.VideoURL != nil {
		p.VideoURL = *in.VideoURL
	}
	if in.ImageURLs != nil {
		p.ImageURLs = *in.ImageURLs
	}
	if in.Categories != nil {
		p.Categories = *in.Categories
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	if in.IsFeatured != nil {
		p.IsFeatured = *in.IsFeatured
	}
	if in.EventStartDate != nil {
		p.EventStartDate = in.EventStartDate
	}
	if in.EventEndDate != nil {
		p.EventEndDate = in.EventEndDate
	}
	if in.Location != nil {
		p.Location = *in.Location
	}

	if in.Published != nil {
		p.Published = *in.Published
		if p.Published && p.PublishedAt == nil {
			publishedAt := now
			p.PublishedAt = &publishedAt
		}
		if !p.Published {
			p.PublishedAt = nil
		}
	}

	p.UpdatedAt = now
}
