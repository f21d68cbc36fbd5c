package impl

import (
	"context"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
)

// circleRepository implements repository.CircleRepository by delegating to CircleDAO.
type circleRepository struct {
	dao dao.CircleDAO
}

// NewCircleRepository creates a new CircleRepository instance.
func NewCircleRepository(circleDAO dao.CircleDAO) repository.CircleRepository {
	return &circleRepository{dao: circleDAO}
}

func (r *circleRepository) Create(ctx context.Context, circle *entity.ReadingCircle) error {
	return r.dao.Create(ctx, circle)
}

func (r *circleRepository) GetByID(ctx context.Context, id string) (*entity.ReadingCircle, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *circleRepository) List(ctx context.Context) ([]*entity.ReadingCircle, error) {
	return r.dao.FindAll(ctx)
}

func (r *circleRepository) AddMember(ctx context.Context, circleID, userID string) error {
	return r.dao.AddMember(ctx, circleID, userID)
}

func (r *circleRepository) SetMembership(ctx context.Context, circleID string, members []string, count int) error {
	return r.dao.SetMembership(ctx, circleID, members, count)
}

func (r *circleRepository) SetMembersCount(ctx context.Context, circleID string, count int) error {
	return r.dao.SetMembersCount(ctx, circleID, count)
}

func (r *circleRepository) AppendPost(ctx context.Context, circleID, postID string) error {
	return r.dao.AppendPost(ctx, circleID, postID)
}

// postRepository implements repository.PostRepository by delegating to PostDAO.
type postRepository struct {
	dao dao.PostDAO
}

// NewPostRepository creates a new PostRepository instance.
func NewPostRepository(postDAO dao.PostDAO) repository.PostRepository {
	return &postRepository{dao: postDAO}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	return r.dao.Create(ctx, post)
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *postRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Post, error) {
	return r.dao.FindByIDs(ctx, ids)
}

func (r *postRepository) GetByCircleID(ctx context.Context, circleID string) ([]*entity.Post, error) {
	return r.dao.FindByCircleID(ctx, circleID)
}

func (r *postRepository) AppendComment(ctx context.Context, postID, commentID string) error {
	return r.dao.AppendComment(ctx, postID, commentID)
}

// commentRepository implements repository.CommentRepository by delegating to CommentDAO.
type commentRepository struct {
	dao dao.CommentDAO
}

// NewCommentRepository creates a new CommentRepository instance.
func NewCommentRepository(commentDAO dao.CommentDAO) repository.CommentRepository {
	return &commentRepository{dao: commentDAO}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return r.dao.Create(ctx, comment)
}

func (r *commentRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Comment, error) {
	return r.dao.FindByIDs(ctx, ids)
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID string) ([]*entity.Comment, error) {
	return r.dao.FindByPostID(ctx, postID)
}
