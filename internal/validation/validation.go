// Package validation holds pure, side-effect-free payload validators. Each
// validator returns a Result whose Details map field name -> message, with at
// most one message per field (the first failing rule wins).
package validation

import (
	"net/url"
	"regexp"
	"strings"

	"foundation_api/dto"
	"foundation_api/model"
)

type Result struct {
	IsValid bool
	Details map[string]string
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// present reports whether an optional string field was supplied with content.
func present(s *string) bool {
	return s != nil && !isBlank(*s)
}

func isHTTPURL(v string) bool {
	parsed, err := url.Parse(strings.TrimSpace(v))
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// isMediaValue accepts the three forms a stored image reference can take:
// an absolute http(s) URL, an inline base64 data URI, or a site-relative
// asset path.
func isMediaValue(v string) bool {
	v = strings.TrimSpace(v)
	if isHTTPURL(v) {
		return true
	}
	if strings.HasPrefix(v, "data:image/") && strings.Contains(v, ";base64,") {
		return true
	}
	return strings.HasPrefix(v, "/")
}

func result(details map[string]string) Result {
	return Result{IsValid: len(details) == 0, Details: details}
}

// ValidateContactInput checks the public contact form payload.
func ValidateContactInput(in dto.ContactInput) Result {
	details := map[string]string{}

	if isBlank(in.Name) {
		details["name"] = "Name is required."
	}

	if isBlank(in.Email) {
		details["email"] = "Email is required."
	} else if !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		details["email"] = "Please enter a valid email address."
	}

	if isBlank(in.Message) {
		details["message"] = "Message is required."
	}

	return result(details)
}

// ValidatePostInput checks an admin post payload. Title, content and type are
// mandatory for both create and update; the published flag is mandatory only
// on update (create defaults it to false downstream).
func ValidatePostInput(in dto.PostInput, isUpdate bool) Result {
	details := map[string]string{}

	if !present(in.Title) {
		details["title"] = "Title is required."
	}

	if !present(in.Content) {
		details["content"] = "Content is required."
	}

	if !present(in.Type) {
		details["type"] = "Type is required."
	} else if !model.IsValidPostType(strings.TrimSpace(*in.Type)) {
		details["type"] = "Type must be one of: news, story, blog, press, event."
	}

	if isUpdate && in.Published == nil {
		details["published"] = "Published flag is required for updates."
	}

	if present(in.VideoURL) && !isHTTPURL(*in.VideoURL) {
		details["videoUrl"] = "Video URL must be a valid http or https URL."
	}

	if present(in.FeaturedImageURL) && !isMediaValue(*in.FeaturedImageURL) {
		details["featuredImageUrl"] = "Featured image must be a valid URL, an uploaded image, or a site asset path."
	}

	if in.ImageURLs != nil {
		if msg := checkGallery(*in.ImageURLs); msg != "" {
			details["imageUrls"] = msg
		}
	}

	return result(details)
}

// ValidateProjectInput checks an admin project payload. Status is optional;
// when supplied it must be a known status.
func ValidateProjectInput(in dto.ProjectInput) Result {
	details := map[string]string{}

	if !present(in.Title) {
		details["title"] = "Title is required."
	}

	if !present(in.ShortDescription) {
		details["shortDescription"] = "Short description is required."
	}

	if present(in.Status) && !model.IsValidProjectStatus(strings.TrimSpace(*in.Status)) {
		details["status"] = "Status must be one of: ongoing, completed, upcoming."
	}

	if present(in.ThumbnailURL) && !isMediaValue(*in.ThumbnailURL) {
		details["thumbnailUrl"] = "Thumbnail must be a valid URL, an uploaded image, or a site asset path."
	}

	if in.ImageURLs != nil {
		if msg := checkGallery(*in.ImageURLs); msg != "" {
			details["imageUrls"] = msg
		}
	}

	return result(details)
}

func checkGallery(urls []string) string {
	if len(urls) > model.MaxGalleryImages {
		return "A maximum of 12 images is allowed."
	}
	for _, u := range urls {
		if !isMediaValue(u) {
			return "Each image must be a valid URL, an uploaded image, or a site asset path."
		}
	}
	return ""
}
