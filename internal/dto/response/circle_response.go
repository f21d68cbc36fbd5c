package response

import "github.com/bookloop/bookloop-go/internal/domain/entity"

// PostView is a post with its comments attached. The embedded post's comment
// ID list is shadowed by the resolved comment documents.
type PostView struct {
	*entity.Post
	Comments []*entity.Comment `json:"comments"`
}

// CircleView is a circle with its discussion tree attached and the member
// count fixed up from the cached counter or the members list.
type CircleView struct {
	*entity.ReadingCircle
	MemberCount int         `json:"memberCount"`
	Posts       []*PostView `json:"posts"`
}

// NewCircleView wraps a circle, fixing up the displayed member count.
func NewCircleView(circle *entity.ReadingCircle, posts []*PostView) *CircleView {
	if posts == nil {
		posts = []*PostView{}
	}
	return &CircleView{
		ReadingCircle: circle,
		MemberCount:   circle.MemberCount(),
		Posts:         posts,
	}
}

// LoginResponse is the authenticated user plus a signed session token.
type LoginResponse struct {
	*entity.User
	Token string `json:"token,omitempty"`
}
