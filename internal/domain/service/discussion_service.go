package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
	"github.com/bookloop/bookloop-go/internal/dto/request"
	"github.com/bookloop/bookloop-go/internal/dto/response"
)

// DiscussionService composes circles with their nested posts and comments and
// handles discussion writes.
type DiscussionService interface {
	// ListCircles returns every circle with its full discussion tree. The
	// bulk path uses two batch lookups regardless of circle count.
	ListCircles(ctx context.Context) ([]*response.CircleView, error)

	// GetCircle returns one circle with its full discussion tree
	GetCircle(ctx context.Context, id string) (*response.CircleView, error)

	// CreateCircle creates a reading circle
	CreateCircle(ctx context.Context, req *request.CreateCircleRequest) (*entity.ReadingCircle, error)

	// CreatePost starts a discussion in a circle and notifies its members
	CreatePost(ctx context.Context, circleID string, req *request.CreatePostRequest) (*entity.Post, error)

	// CreateComment adds a comment to a post
	CreateComment(ctx context.Context, postID string, req *request.CreateCommentRequest) (*entity.Comment, error)
}

// discussionService implements DiscussionService
type discussionService struct {
	circleRepo       repository.CircleRepository
	postRepo         repository.PostRepository
	commentRepo      repository.CommentRepository
	notificationRepo repository.NotificationRepository
	publisher        EventPublisher
	logger           *zap.Logger
}

// NewDiscussionService creates a new DiscussionService instance
func NewDiscussionService(
	circleRepo repository.CircleRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	notificationRepo repository.NotificationRepository,
	publisher EventPublisher,
	logger *zap.Logger,
) DiscussionService {
	return &discussionService{
		circleRepo:       circleRepo,
		postRepo:         postRepo,
		commentRepo:      commentRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

func (s *discussionService) ListCircles(ctx context.Context) ([]*response.CircleView, error) {
	circles, err := s.circleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	postIDs := collectIDs(circles, func(c *entity.ReadingCircle) []string { return c.Posts })
	if len(postIDs) == 0 {
		// No circle references any post, so skip the post and comment
		// lookups entirely.
		views := make([]*response.CircleView, len(circles))
		for i, c := range circles {
			views[i] = response.NewCircleView(c, nil)
		}
		return views, nil
	}

	posts, err := s.postRepo.GetByIDs(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	commentIDs := collectIDs(posts, func(p *entity.Post) []string { return p.Comments })
	var comments []*entity.Comment
	if len(commentIDs) > 0 {
		comments, err = s.commentRepo.GetByIDs(ctx, commentIDs)
		if err != nil {
			return nil, err
		}
	}

	// Group comments by their stored postId and posts by their stored
	// circleId; the parent's ID list then dictates the order within each
	// group.
	commentsByPost := make(map[string][]*entity.Comment)
	for _, c := range comments {
		commentsByPost[c.PostID] = append(commentsByPost[c.PostID], c)
	}

	postViewsByCircle := make(map[string][]*response.PostView)
	for _, p := range posts {
		postViewsByCircle[p.CircleID] = append(postViewsByCircle[p.CircleID], s.buildPostView(p, commentsByPost[p.ID]))
	}

	views := make([]*response.CircleView, len(circles))
	for i, c := range circles {
		circlePosts := postViewsByCircle[c.ID]
		orderByIDList(c.Posts, circlePosts, func(v *response.PostView) string { return v.Post.ID })
		views[i] = response.NewCircleView(c, circlePosts)
	}
	return views, nil
}

func (s *discussionService) GetCircle(ctx context.Context, id string) (*response.CircleView, error) {
	circle, err := s.circleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if circle == nil {
		return nil, ErrCircleNotFound
	}

	// The fan-out here is bounded by a single circle's post count, so a
	// per-post comment fetch is fine.
	posts, err := s.postRepo.GetByCircleID(ctx, circle.ID)
	if err != nil {
		return nil, err
	}

	postViews := make([]*response.PostView, 0, len(posts))
	for _, p := range posts {
		comments, err := s.commentRepo.GetByPostID(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if comments == nil {
			comments = []*entity.Comment{}
		}
		postViews = append(postViews, &response.PostView{Post: p, Comments: comments})
	}
	orderByIDList(circle.Posts, postViews, func(v *response.PostView) string { return v.Post.ID })

	return response.NewCircleView(circle, postViews), nil
}

func (s *discussionService) CreateCircle(ctx context.Context, req *request.CreateCircleRequest) (*entity.ReadingCircle, error) {
	privacy := entity.CirclePrivacy(req.Privacy)
	if privacy != entity.PrivacyPrivate {
		privacy = entity.PrivacyPublic
	}

	circle := &entity.ReadingCircle{
		Name:        req.Name,
		Description: req.Description,
		Members:     req.Members,
		CurrentBook: req.CurrentBook,
		Avatar:      req.Avatar,
		Privacy:     privacy,
	}
	if err := s.circleRepo.Create(ctx, circle); err != nil {
		return nil, err
	}
	return circle, nil
}

func (s *discussionService) CreatePost(ctx context.Context, circleID string, req *request.CreatePostRequest) (*entity.Post, error) {
	circle, err := s.circleRepo.GetByID(ctx, circleID)
	if err != nil {
		return nil, err
	}
	if circle == nil {
		return nil, ErrCircleNotFound
	}

	post := &entity.Post{
		AuthorID:     req.AuthorID,
		AuthorName:   req.AuthorName,
		AuthorAvatar: req.AuthorAvatar,
		CircleID:     circle.ID,
		Content:      req.Content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	if err := s.circleRepo.AppendPost(ctx, circle.ID, post.ID); err != nil {
		return nil, err
	}

	notifications := make([]*entity.Notification, 0, len(circle.Members))
	for _, memberID := range circle.Members {
		if memberID == req.AuthorID {
			continue
		}
		notifications = append(notifications, &entity.Notification{
			UserID:    memberID,
			Type:      entity.NotificationCircle,
			Title:     "New Discussion",
			Message:   fmt.Sprintf("%s started a discussion in %q", req.AuthorName, circle.Name),
			ActionURL: "/circles",
			RelatedID: circle.ID,
		})
	}
	if len(notifications) > 0 {
		if err := s.notificationRepo.CreateMany(ctx, notifications); err != nil {
			return nil, err
		}
		for _, n := range notifications {
			s.publisher.PublishNotification(n)
		}
	}
	s.publisher.PublishCircleEvent(circle.ID, post)

	return post, nil
}

func (s *discussionService) CreateComment(ctx context.Context, postID string, req *request.CreateCommentRequest) (*entity.Comment, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &entity.Comment{
		PostID:       post.ID,
		AuthorID:     req.AuthorID,
		AuthorName:   req.AuthorName,
		AuthorAvatar: req.AuthorAvatar,
		Content:      req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	if err := s.postRepo.AppendComment(ctx, post.ID, comment.ID); err != nil {
		return nil, err
	}
	s.publisher.PublishCircleEvent(post.CircleID, comment)

	return comment, nil
}

// buildPostView attaches a post's comments reordered to match the post's
// comment-ID list.
func (s *discussionService) buildPostView(post *entity.Post, comments []*entity.Comment) *response.PostView {
	if comments == nil {
		comments = []*entity.Comment{}
	}
	orderByIDList(post.Comments, comments, func(c *entity.Comment) string { return c.ID })
	return &response.PostView{Post: post, Comments: comments}
}

// collectIDs gathers the union of referenced IDs across parents, keeping
// first-seen order and dropping duplicates.
func collectIDs[T any](parents []T, idsOf func(T) []string) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, p := range parents {
		for _, id := range idsOf(p) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// orderByIDList reorders items to follow the parent's ID list. Items the list
// does not mention keep their relative order at the end.
func orderByIDList[T any](idList []string, items []T, idOf func(T) string) {
	pos := make(map[string]int, len(idList))
	for i, id := range idList {
		pos[id] = i
	}
	rank := func(item T) int {
		if p, ok := pos[idOf(item)]; ok {
			return p
		}
		return len(idList)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return rank(items[i]) < rank(items[j])
	})
}
