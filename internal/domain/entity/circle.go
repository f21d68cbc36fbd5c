package entity

// CirclePrivacy controls circle visibility.
type CirclePrivacy string

const (
	PrivacyPublic  CirclePrivacy = "public"
	PrivacyPrivate CirclePrivacy = "private"
)

// ReadingCircle is a themed group of users with its own discussion feed.
// MembersCount caches len(Members); Posts keeps post IDs in insertion order,
// which is the chronological order of the discussion feed.
type ReadingCircle struct {
	ID           string        `bson:"id" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Description  string        `bson:"description" json:"description"`
	Members      []string      `bson:"members" json:"members"`
	MembersCount int           `bson:"memberscount" json:"memberscount"`
	Posts        []string      `bson:"posts" json:"posts"`
	CurrentBook  string        `bson:"currentbook" json:"currentbook"`
	Avatar       string        `bson:"avatar" json:"avatar"`
	Privacy      CirclePrivacy `bson:"privacy" json:"privacy"`
}

// HasMember reports whether userID is in the members list.
func (c *ReadingCircle) HasMember(userID string) bool {
	for _, id := range c.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// RemoveMember removes userID from the members list without touching the
// cached counter.
func (c *ReadingCircle) RemoveMember(userID string) {
	filtered := c.Members[:0]
	for _, id := range c.Members {
		if id != userID {
			filtered = append(filtered, id)
		}
	}
	c.Members = filtered
}

// MemberCount returns the display member count. A document written before the
// counter existed decodes as zero, so fall back to the members list whenever
// the cached counter carries no information.
func (c *ReadingCircle) MemberCount() int {
	if c.MembersCount > 0 {
		return c.MembersCount
	}
	return len(c.Members)
}
