package request

// UpsertOptionsRequest replaces the global picker lists.
type UpsertOptionsRequest struct {
	Genres    []string `json:"genres"`
	Languages []string `json:"languages"`
	Authors   []string `json:"authors"`
}
