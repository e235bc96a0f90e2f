package entity

import "time"

// Goat is a catalog listing. The three image fields overlap for historical
// reasons: ImageURLs is the current home, ImageURL predates it, and Description
// sometimes smuggles a JSON payload with more URLs. The gallery package is the
// only reader that untangles them; everything else gets the fields verbatim.
type Goat struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Breed        string    `json:"breed"`
	Age          string    `json:"age"`
	Weight       string    `json:"weight"`
	Price        int       `json:"price"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	ImageURLs    []string  `json:"image_urls,omitempty"`
	IsAvailable  bool      `json:"is_available"`
	Gender       string    `json:"gender"`
	Color        string    `json:"color,omitempty"`
	HealthStatus string    `json:"health_status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
