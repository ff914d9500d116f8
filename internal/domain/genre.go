package domain

// Genre is an entry of the provider's genre listing
type Genre struct {
	Name string `json:"name"` // Display name like "Science Fiction"
	Slug string `json:"slug"` // URL-safe key like "science-fiction"
}
