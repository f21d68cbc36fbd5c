package request

// CreateCircleRequest is the body for creating a reading circle.
type CreateCircleRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Members     []string `json:"members"`
	CurrentBook string   `json:"currentbook"`
	Avatar      string   `json:"avatar"`
	Privacy     string   `json:"privacy"`
}

// MembershipRequest identifies the user joining or leaving a circle.
type MembershipRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// CreatePostRequest is the body for starting a discussion in a circle.
type CreatePostRequest struct {
	AuthorID     string `json:"authorId" binding:"required"`
	AuthorName   string `json:"authorName" binding:"required"`
	AuthorAvatar string `json:"authorAvatar"`
	Content      string `json:"content" binding:"required"`
}

// CreateCommentRequest is the body for commenting on a post.
type CreateCommentRequest struct {
	AuthorID     string `json:"authorId" binding:"required"`
	AuthorName   string `json:"authorName" binding:"required"`
	AuthorAvatar string `json:"authorAvatar"`
	Content      string `json:"content" binding:"required"`
}
