package models

// Article is a transient search result from the news provider. It is never
// persisted except as a Favorite snapshot.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Category    string `json:"category,omitempty"`
}
