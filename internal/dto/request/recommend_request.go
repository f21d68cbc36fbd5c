package request

import "github.com/bookloop/bookloop-go/internal/domain/entity"

// RecommendBooksRequest carries the user profile and the candidate books to
// rank. Candidates are supplied by the caller rather than loaded server-side.
type RecommendBooksRequest struct {
	User  *entity.User   `json:"user"`
	Books []*entity.Book `json:"books"`
	TopK  int            `json:"topK"`
}

// RecommendCirclesRequest carries the user profile and the candidate circles.
type RecommendCirclesRequest struct {
	User    *entity.User            `json:"user"`
	Circles []*entity.ReadingCircle `json:"circles"`
	TopK    int                     `json:"topK"`
}
