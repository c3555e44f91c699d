package gallery

import (
	"strings"

	"schooldirectory/internal/domain"
)

// placeholderImage is what the gallery shows when a record has no image or
// the image fetch fails for any reason — the cases are indistinguishable to
// the viewer.
const placeholderImage = "data:image/svg+xml;utf8," +
	"<svg xmlns='http://www.w3.org/2000/svg' width='200' height='200'>" +
	"<rect width='200' height='200' fill='%23F3F4F6'/>" +
	"<circle cx='100' cy='85' r='25' fill='%239B9BA0'/>" +
	"<path d='M55 160c0-25 20-40 45-40s45 15 45 40' fill='%239B9BA0'/></svg>"

// Facets are the filter options the gallery derives from the fetched set:
// every distinct city and state, in first-seen (newest-record-first) order.
type Facets struct {
	Cities []string
	States []string
}

func DeriveFacets(schools []domain.School) Facets {
	var f Facets
	seenCity := make(map[string]bool)
	seenState := make(map[string]bool)

	for _, s := range schools {
		if !seenCity[s.City] {
			seenCity[s.City] = true
			f.Cities = append(f.Cities, s.City)
		}
		if !seenState[s.State] {
			seenState[s.State] = true
			f.States = append(f.States, s.State)
		}
	}
	return f
}

// Filter mirrors the gallery's controls: a free-text search plus optional
// exact city/state selections. Empty fields match everything.
type Filter struct {
	Search string
	City   string
	State  string
}

// Apply filters in memory, preserving order. The search term matches
// case-insensitively as a substring of name, address, or city; city and
// state selections match exactly.
func Apply(schools []domain.School, f Filter) []domain.School {
	filtered := make([]domain.School, 0, len(schools))
	term := strings.ToLower(f.Search)

	for _, s := range schools {
		if term != "" &&
			!strings.Contains(strings.ToLower(s.Name), term) &&
			!strings.Contains(strings.ToLower(s.Address), term) &&
			!strings.Contains(strings.ToLower(s.City), term) {
			continue
		}
		if f.City != "" && s.City != f.City {
			continue
		}
		if f.State != "" && s.State != f.State {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// ImageURL resolves a record's image to a fetchable URL, or the placeholder
// when the record has none.
func (c *Client) ImageURL(image *string) string {
	if image == nil || *image == "" {
		return placeholderImage
	}
	return c.baseURL + "/schoolImages/" + *image
}
