package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"foundation_api/dto"
)

func strptr(s string) *string { return &s }

func boolptr(b bool) *bool { return &b }

func validPostInput() dto.PostInput {
	return dto.PostInput{
		Title:   strptr("Clean Water For Schools"),
		Content: strptr("Long form content."),
		Type:    strptr("news"),
	}
}

func TestValidateContactInputEmptyPayload(t *testing.T) {
	res := ValidateContactInput(dto.ContactInput{})

	assert.False(t, res.IsValid)
	assert.Equal(t, "Name is required.", res.Details["name"])
	assert.Equal(t, "Email is required.", res.Details["email"])
	assert.Equal(t, "Message is required.", res.Details["message"])
}

func TestValidateContactInputBadEmail(t *testing.T) {
	res := ValidateContactInput(dto.ContactInput{
		Name:    "Jane",
		Email:   "not-an-email",
		Message: "Hello",
	})

	assert.False(t, res.IsValid)
	assert.Equal(t, "Please enter a valid email address.", res.Details["email"])
	assert.NotContains(t, res.Details, "name")
	assert.NotContains(t, res.Details, "message")
}

func TestValidateContactInputValid(t *testing.T) {
	res := ValidateContactInput(dto.ContactInput{
		Name:    "Jane",
		Email:   "jane@example.org",
		Message: "I would like to volunteer.",
	})

	assert.True(t, res.IsValid)
	assert.Empty(t, res.Details)
}

func TestValidatePostInputRequiredFields(t *testing.T) {
	res := ValidatePostInput(dto.PostInput{
		Title:   strptr("  "),
		Content: strptr(""),
		Type:    strptr(""),
	}, false)

	assert.False(t, res.IsValid)
	assert.Equal(t, "Title is required.", res.Details["title"])
	assert.Equal(t, "Content is required.", res.Details["content"])
	assert.Equal(t, "Type is required.", res.Details["type"])
}

func TestValidatePostInputTypeEnum(t *testing.T) {
	in := validPostInput()
	in.Type = strptr("podcast")
	res := ValidatePostInput(in, false)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Type must be one of: news, story, blog, press, event.", res.Details["type"])

	for _, valid := range []string{"news", "story", "blog", "press", "event"} {
		in.Type = strptr(valid)
		res = ValidatePostInput(in, false)
		assert.NotContains(t, res.Details, "type", "type %q should be accepted", valid)
	}
}

func TestValidatePostInputPublishedRequiredOnUpdate(t *testing.T) {
	in := validPostInput()

	res := ValidatePostInput(in, true)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Published flag is required for updates.", res.Details["published"])

	in.Published = boolptr(false)
	res = ValidatePostInput(in, true)
	assert.True(t, res.IsValid)

	// Create may omit it.
	in.Published = nil
	res = ValidatePostInput(in, false)
	assert.True(t, res.IsValid)
}

func TestValidatePostInputVideoURL(t *testing.T) {
	in := validPostInput()
	in.VideoURL = strptr("ftp://example.org/video.mp4")
	res := ValidatePostInput(in, false)
	assert.Equal(t, "Video URL must be a valid http or https URL.", res.Details["videoUrl"])

	in.VideoURL = strptr("https://example.org/video.mp4")
	res = ValidatePostInput(in, false)
	assert.True(t, res.IsValid)
}

func TestValidatePostInputMediaValues(t *testing.T) {
	in := validPostInput()

	for _, ok := range []string{
		"https://cdn.example.org/a.jpg",
		"http://cdn.example.org/a.jpg",
		"data:image/png;base64,iVBORw0KGgo=",
		"/assets/gallery/a.jpg",
	} {
		in.FeaturedImageURL = strptr(ok)
		res := ValidatePostInput(in, false)
		assert.NotContains(t, res.Details, "featuredImageUrl", "value %q should be accepted", ok)
	}

	in.FeaturedImageURL = strptr("javascript:alert(1)")
	res := ValidatePostInput(in, false)
	assert.Equal(t, "Featured image must be a valid URL, an uploaded image, or a site asset path.", res.Details["featuredImageUrl"])
}

func TestValidatePostInputGalleryCap(t *testing.T) {
	in := validPostInput()

	urls := make([]string, 13)
	for i := range urls {
		urls[i] = "https://cdn.example.org/a.jpg"
	}
	in.ImageURLs = &urls

	res := ValidatePostInput(in, false)
	assert.False(t, res.IsValid)
	assert.Equal(t, "A maximum of 12 images is allowed.", res.Details["imageUrls"])

	twelve := urls[:12]
	in.ImageURLs = &twelve
	res = ValidatePostInput(in, false)
	assert.True(t, res.IsValid)
}

func TestValidatePostInputGalleryEntries(t *testing.T) {
	in := validPostInput()
	in.ImageURLs = &[]string{"https://cdn.example.org/a.jpg", "not a url"}

	res := ValidatePostInput(in, false)
	assert.Equal(t, "Each image must be a valid URL, an uploaded image, or a site asset path.", res.Details["imageUrls"])
}

func TestValidateProjectInputRequiredFields(t *testing.T) {
	res := ValidateProjectInput(dto.ProjectInput{})

	assert.False(t, res.IsValid)
	assert.Equal(t, "Title is required.", res.Details["title"])
	assert.Equal(t, "Short description is required.", res.Details["shortDescription"])
	assert.NotContains(t, res.Details, "status")
}

func TestValidateProjectInputStatusEnum(t *testing.T) {
	in := dto.ProjectInput{
		Title:            strptr("School Build"),
		ShortDescription: strptr("Building a school."),
		Status:           strptr("archived"),
	}

	res := ValidateProjectInput(in)
	assert.False(t, res.IsValid)
	assert.Equal(t, "Status must be one of: ongoing, completed, upcoming.", res.Details["status"])

	for _, valid := range []string{"ongoing", "completed", "upcoming"} {
		in.Status = strptr(valid)
		res = ValidateProjectInput(in)
		assert.True(t, res.IsValid, "status %q should be accepted", valid)
	}

	// Omitting status entirely is valid; it defaults downstream.
	in.Status = nil
	res = ValidateProjectInput(in)
	assert.True(t, res.IsValid)
}
