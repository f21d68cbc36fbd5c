// Package response contains the API response bodies.
package response

// Message is the body for plain-status and error responses.
type Message struct {
	Message string `json:"message"`
}

// NewMessage wraps a status string.
func NewMessage(msg string) Message {
	return Message{Message: msg}
}

// FavoritesResponse returns a user's favorite book IDs.
type FavoritesResponse struct {
	Favorites []string `json:"favorites"`
}

// RecommendBooksResponse lists the ranked book IDs.
type RecommendBooksResponse struct {
	BookIDs []string `json:"bookIds"`
}

// RecommendCirclesResponse lists the ranked circle IDs.
type RecommendCirclesResponse struct {
	CircleIDs []string `json:"circleIds"`
}

// OptionsResponse returns the global picker lists.
type OptionsResponse struct {
	Genres    []string `json:"genres"`
	Languages []string `json:"languages"`
	Authors   []string `json:"authors"`
}
