// Package gallery reconstructs a goat's image gallery from the overlapping
// places the storefront has stored pictures over time: the image_urls column,
// the older single image_url column, and JSON payloads that ended up inside
// the free-text description before the array column existed.
package gallery

import (
	"encoding/json"
	"strings"
)

// Listing is the untyped input shape. Only the three image-bearing fields
// matter here; the rest of the goat record is ignored.
type Listing struct {
	ImageURL    string
	ImageURLs   []string
	Description string
}

// descriptionPayload is the structured variant occasionally smuggled inside
// the description field. Both list keys were used at different times.
type descriptionPayload struct {
	Description      string   `json:"description"`
	AdditionalImages []string `json:"additionalImages"`
	Images           []string `json:"images"`
	ImageURL         string   `json:"imageUrl"`
}

// ResolveImages assembles the gallery in precedence order: the list column,
// then the primary image, then whatever the description payload contributes.
// Duplicates are dropped keeping first-seen order. Malformed descriptions
// contribute nothing; they are never an error.
func ResolveImages(listing Listing) []string {
	images := []string{}
	seen := map[string]bool{}

	add := func(url string) {
		url = strings.TrimSpace(url)
		if url == "" || seen[url] {
			return
		}
		seen[url] = true
		images = append(images, url)
	}

	for _, url := range listing.ImageURLs {
		add(url)
	}

	add(listing.ImageURL)

	if listing.Description != "" {
		var payload descriptionPayload
		if err := json.Unmarshal([]byte(listing.Description), &payload); err == nil {
			for _, url := range payload.AdditionalImages {
				add(url)
			}
			for _, url := range payload.Images {
				add(url)
			}
			add(payload.ImageURL)
		} else if looksLikeImageRef(listing.Description) {
			add(listing.Description)
		}
	}

	return images
}

// ProseDescription returns the human-readable description: the payload's
// description field when the column holds JSON, the raw text otherwise, and a
// stock line when there is nothing to show.
func ProseDescription(listing Listing, breed, age, weight string) string {
	fallback := "Premium " + breed + " goat, " + age + ", " + weight + ". Perfect for Eid sacrifice."
	if listing.Description == "" {
		return fallback
	}

	var payload descriptionPayload
	if err := json.Unmarshal([]byte(listing.Description), &payload); err == nil {
		if payload.Description != "" {
			return payload.Description
		}
		return fallback
	}
	return listing.Description
}

// looksLikeImageRef admits prose only when it is plainly a direct image
// reference: a URL on a known image host, or an inline-encoded image.
func looksLikeImageRef(text string) bool {
	if strings.HasPrefix(text, "data:image") {
		return true
	}
	if !strings.HasPrefix(text, "http") {
		return false
	}
	return strings.Contains(text, "imgur") || strings.Contains(text, "cloudinary")
}
