package entity

// Coordinates is a lat/lng pair attached to user and book locations.
type Coordinates struct {
	Lat *float64 `bson:"lat" json:"lat"`
	Lng *float64 `bson:"lng" json:"lng"`
}

// Location is the structured address shared by users and books.
type Location struct {
	City        string      `bson:"city" json:"city"`
	State       string      `bson:"state" json:"state"`
	Country     string      `bson:"country" json:"country"`
	Coordinates Coordinates `bson:"coordinates" json:"coordinates"`
}

// Preferences holds the set-like preference lists used by the recommenders.
type Preferences struct {
	Genres    []string `bson:"genres" json:"genres"`
	Authors   []string `bson:"authors" json:"authors"`
	Languages []string `bson:"languages" json:"languages"`
}

// User is a member of the platform. ID is an application-generated UUID; the
// Mongo ObjectID is never exposed. CirclesJoined mirrors the set of circles
// whose members list contains this user, maintained by the membership service.
type User struct {
	ID            string      `bson:"id" json:"id"`
	Name          string      `bson:"name" json:"name"`
	Email         string      `bson:"email" json:"email"`
	Password      string      `bson:"password" json:"-"`
	Avatar        string      `bson:"avatar" json:"avatar"`
	Location      Location    `bson:"location" json:"location"`
	Bio           string      `bson:"bio" json:"bio"`
	BooksOwned    []string    `bson:"booksowned" json:"booksowned"`
	CirclesJoined []string    `bson:"circlesjoined" json:"circlesjoined"`
	Favorites     []string    `bson:"favorites" json:"favorites"`
	Preferences   Preferences `bson:"preferences" json:"preferences"`
}

// HasJoined reports whether the user already tracks membership of circleID.
func (u *User) HasJoined(circleID string) bool {
	for _, id := range u.CirclesJoined {
		if id == circleID {
			return true
		}
	}
	return false
}

// RemoveCircle removes circleID from CirclesJoined. Removal is an
// unconditional set-difference so orphaned references are tolerated.
func (u *User) RemoveCircle(circleID string) {
	filtered := u.CirclesJoined[:0]
	for _, id := range u.CirclesJoined {
		if id != circleID {
			filtered = append(filtered, id)
		}
	}
	u.CirclesJoined = filtered
}

// HasFavorite reports whether bookID is in the user's favorites.
func (u *User) HasFavorite(bookID string) bool {
	for _, id := range u.Favorites {
		if id == bookID {
			return true
		}
	}
	return false
}
