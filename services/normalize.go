// Package services holds the pure payload transformations that run between
// request parsing and persistence: string/array normalization, slug
// derivation, publish-timestamp transitions and gallery fallbacks. Nothing
// here touches the database.
package services

import "strings"

func trimPtr(p *string) {
	if p != nil {
		*p = strings.TrimSpace(*p)
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// normalizeStringSlice trims entries, drops blanks and dedupes while keeping
// the original order.
func normalizeStringSlice(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, item := range in {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
