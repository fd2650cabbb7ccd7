package services

import (
	"strings"
	"time"

	"foundation_api/dto"
	"foundation_api/internal/slugify"
	"foundation_api/model"
)

// NormalizeProjectInput mirrors NormalizePostInput for projects: the
// thumbnail falls back to the first gallery image when absent.
func NormalizeProjectInput(in *dto.ProjectInput, isUpdate bool) {
	trimPtr(in.Title)
	trimPtr(in.Slug)
	trimPtr(in.ShortDescription)
	trimPtr(in.LongDescription)
	trimPtr(in.Status)
	trimPtr(in.ThumbnailURL)

	if !isUpdate && in.ImageURLs == nil {
		in.ImageURLs = &[]string{}
	}
	if in.ImageURLs != nil {
		*in.ImageURLs = normalizeStringSlice(*in.ImageURLs)
	}

	if !isUpdate && in.ThumbnailURL == nil {
		empty := ""
		in.ThumbnailURL = &empty
	}

	if in.ImageURLs != nil && len(*in.ImageURLs) > 0 && deref(in.ThumbnailURL) == "" {
		first := (*in.ImageURLs)[0]
		in.ThumbnailURL = &first
	}
}

// NewProject builds a Project from a validated, normalized create payload.
// Status defaults to "ongoing" when omitted.
func NewProject(in dto.ProjectInput, now time.Time) model.Project {
	p := model.Project{
		Title:            deref(in.Title),
		Slug:             strings.ToLower(deref(in.Slug)),
		ShortDescription: deref(in.ShortDescription),
		LongDescription:  deref(in.LongDescription),
		ThumbnailURL:     deref(in.ThumbnailURL),
		Status:           deref(in.Status),
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		ImageURLs:        []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if in.ImageURLs != nil {
		p.ImageURLs = *in.ImageURLs
	}
	if in.IsHighlighted != nil {
		p.IsHighlighted = *in.IsHighlighted
	}
	if p.Status == "" {
		p.Status = model.ProjectStatusOngoing
	}
	if p.Slug == "" {
		p.Slug = slugify.Slugify(p.Title)
	}

	return p
}

// ApplyProjectUpdate merges a validated, normalized partial payload into an
// existing project.
func ApplyProjectUpdate(p *model.Project, in dto.ProjectInput, now time.Time) {
	if in.Title != nil {
		if deref(in.Slug) == "" && *in.Title != p.Title {
			p.Slug = slugify.Slugify(*in.Title)
		}
		p.Title = *in.Title
	}
	if deref(in.Slug) != "" {
		p.Slug = strings.ToLower(*in.Slug)
	}
	if in.ShortDescription != nil {
		p.ShortDescription = *in.ShortDescription
	}
	if in.LongDescription != nil {
		p.LongDescription = *in.LongDescription
	}
	if in.ThumbnailURL != nil {
		p.ThumbnailURL = *in.ThumbnailURL
	}
	if deref(in.Status) != "" {
		p.Status = *in.Status
	}
	if in.StartDate != nil {
		p.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		p.EndDate = in.EndDate
	}
	if in.IsHighlighted != nil {
		p.IsHighlighted = *in.IsHighlighted
	}
	if in.ImageURLs != nil {
		p.ImageURLs = *in.ImageURLs
	}

	p.UpdatedAt = now
}
