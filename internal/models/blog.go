package models

import "time"

// Blog is an editorial post. ReadingTime is derived from the content word
// count (200 words per minute, minimum one minute) and recomputed whenever
// the content changes.
type Blog struct {
	ID            string    `json:"id"`
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Author        string    `json:"author"`
	FeaturedImage string    `json:"featuredImage"`
	GalleryImages []string  `json:"galleryImages"`
	SourceLink    string    `json:"sourceLink"`
	ReadingTime   int       `json:"readingTime"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
