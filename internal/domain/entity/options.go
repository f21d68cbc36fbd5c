package entity

// Options is the singleton document holding the enumerable lists offered in
// UI pickers.
type Options struct {
	ID        string   `bson:"id" json:"id"`
	Genres    []string `bson:"genres" json:"genres"`
	Languages []string `bson:"languages" json:"languages"`
	Authors   []string `bson:"authors" json:"authors"`
}
