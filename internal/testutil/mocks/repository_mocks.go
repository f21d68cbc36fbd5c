package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User

	// Error injection
	CreateErr               error
	GetByIDErr              error
	GetByEmailErr           error
	UpdateErr               error
	AddJoinedCircleErr      error
	RemoveJoinedCircleErr   error
	AddFavoriteErr          error
	RemoveFavoriteErr       error
	AddOwnedBookErr         error
}

var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*entity.User),
	}
}

// AddUser seeds a user, assigning an ID when empty
func (r *MockUserRepository) AddUser(user *entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = user
}

func (r *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = user
	return nil
}

func (r *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, nil
}

func (r *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.GetByEmailErr != nil {
		return nil, r.GetByEmailErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *MockUserRepository) AddJoinedCircle(ctx context.Context, userID, circleID string) error {
	if r.AddJoinedCircleErr != nil {
		return r.AddJoinedCircleErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.CirclesJoined = append(user.CirclesJoined, circleID)
	}
	return nil
}

func (r *MockUserRepository) RemoveJoinedCircle(ctx context.Context, userID, circleID string) error {
	if r.RemoveJoinedCircleErr != nil {
		return r.RemoveJoinedCircleErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.RemoveCircle(circleID)
	}
	return nil
}

func (r *MockUserRepository) AddFavorite(ctx context.Context, userID, bookID string) error {
	if r.AddFavoriteErr != nil {
		return r.AddFavoriteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.Favorites = append(user.Favorites, bookID)
	}
	return nil
}

func (r *MockUserRepository) RemoveFavorite(ctx context.Context, userID, bookID string) error {
	if r.RemoveFavoriteErr != nil {
		return r.RemoveFavoriteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		filtered := user.Favorites[:0]
		for _, id := range user.Favorites {
			if id != bookID {
				filtered = append(filtered, id)
			}
		}
		user.Favorites = filtered
	}
	return nil
}

func (r *MockUserRepository) AddOwnedBook(ctx context.Context, userID, bookID string) error {
	if r.AddOwnedBookErr != nil {
		return r.AddOwnedBookErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[userID]; ok {
		user.BooksOwned = append(user.BooksOwned, bookID)
	}
	return nil
}

// MockBookRepository is a mock implementation of BookRepository
type MockBookRepository struct {
	mu    sync.RWMutex
	books map[string]*entity.Book
	order []string

	CreateErr  error
	GetByIDErr error
	ListErr    error
	UpdateErr  error
	DeleteErr  error
}

var _ repository.BookRepository = (*MockBookRepository)(nil)

func NewMockBookRepository() *MockBookRepository {
	return &MockBookRepository{
		books: make(map[string]*entity.Book),
	}
}

func (r *MockBookRepository) AddBook(book *entity.Book) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	r.books[book.ID] = book
	r.order = append(r.order, book.ID)
}

func (r *MockBookRepository) Create(ctx context.Context, book *entity.Book) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.AddBook(book)
	return nil
}

func (r *MockBookRepository) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if book, ok := r.books[id]; ok {
		return book, nil
	}
	return nil, nil
}

func (r *MockBookRepository) List(ctx context.Context, geo *dao.GeoFilter) ([]*entity.Book, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	books := make([]*entity.Book, 0, len(r.order))
	for _, id := range r.order {
		if book, ok := r.books[id]; ok {
			books = append(books, book)
		}
	}
	return books, nil
}

func (r *MockBookRepository) Update(ctx context.Context, book *entity.Book) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.books[book.ID] = book
	return nil
}

func (r *MockBookRepository) Delete(ctx context.Context, id string) (bool, error) {
	if r.DeleteErr != nil {
		return false, r.DeleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.books[id]; !ok {
		return false, nil
	}
	delete(r.books, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

// MockCircleRepository is a mock implementation of CircleRepository
type MockCircleRepository struct {
	mu      sync.RWMutex
	circles map[string]*entity.ReadingCircle
	order   []string

	CreateErr          error
	GetByIDErr         error
	ListErr            error
	AddMemberErr       error
	SetMembershipErr   error
	SetMembersCountErr error
	AppendPostErr      error
}

var _ repository.CircleRepository = (*MockCircleRepository)(nil)

func NewMockCircleRepository() *MockCircleRepository {
	return &MockCircleRepository{
		circles: make(map[string]*entity.ReadingCircle),
	}
}

func (r *MockCircleRepository) AddCircle(circle *entity.ReadingCircle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if circle.ID == "" {
		circle.ID = uuid.NewString()
	}
	r.circles[circle.ID] = circle
	r.order = append(r.order, circle.ID)
}

func (r *MockCircleRepository) Create(ctx context.Context, circle *entity.ReadingCircle) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.AddCircle(circle)
	return nil
}

func (r *MockCircleRepository) GetByID(ctx context.Context, id string) (*entity.ReadingCircle, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if circle, ok := r.circles[id]; ok {
		return circle, nil
	}
	return nil, nil
}

func (r *MockCircleRepository) List(ctx context.Context) ([]*entity.ReadingCircle, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	circles := make([]*entity.ReadingCircle, 0, len(r.order))
	for _, id := range r.order {
		if circle, ok := r.circles[id]; ok {
			circles = append(circles, circle)
		}
	}
	return circles, nil
}

func (r *MockCircleRepository) AddMember(ctx context.Context, circleID, userID string) error {
	if r.AddMemberErr != nil {
		return r.AddMemberErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if circle, ok := r.circles[circleID]; ok {
		circle.Members = append(circle.Members, userID)
		circle.MembersCount++
	}
	return nil
}

func (r *MockCircleRepository) SetMembership(ctx context.Context, circleID string, members []string, count int) error {
	if r.SetMembershipErr != nil {
		return r.SetMembershipErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if circle, ok := r.circles[circleID]; ok {
		circle.Members = members
		circle.MembersCount = count
	}
	return nil
}

func (r *MockCircleRepository) SetMembersCount(ctx context.Context, circleID string, count int) error {
	if r.SetMembersCountErr != nil {
		return r.SetMembersCountErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if circle, ok := r.circles[circleID]; ok {
		circle.MembersCount = count
	}
	return nil
}

func (r *MockCircleRepository) AppendPost(ctx context.Context, circleID, postID string) error {
	if r.AppendPostErr != nil {
		return r.AppendPostErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if circle, ok := r.circles[circleID]; ok {
		circle.Posts = append(circle.Posts, postID)
	}
	return nil
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	mu    sync.RWMutex
	posts map[string]*entity.Post
	order []string

	CreateErr        error
	GetByIDErr       error
	GetByIDsErr      error
	GetByCircleIDErr error
	AppendCommentErr error
}

var _ repository.PostRepository = (*MockPostRepository)(nil)

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		posts: make(map[string]*entity.Post),
	}
}

func (r *MockPostRepository) AddPost(post *entity.Post) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	r.posts[post.ID] = post
	r.order = append(r.order, post.ID)
}

func (r *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.AddPost(post)
	return nil
}

func (r *MockPostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if post, ok := r.posts[id]; ok {
		return post, nil
	}
	return nil, nil
}

func (r *MockPostRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Post, error) {
	if r.GetByIDsErr != nil {
		return nil, r.GetByIDsErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	posts := make([]*entity.Post, 0, len(ids))
	for _, id := range ids {
		if post, ok := r.posts[id]; ok {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (r *MockPostRepository) GetByCircleID(ctx context.Context, circleID string) ([]*entity.Post, error) {
	if r.GetByCircleIDErr != nil {
		return nil, r.GetByCircleIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	posts := make([]*entity.Post, 0)
	for _, id := range r.order {
		if post, ok := r.posts[id]; ok && post.CircleID == circleID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (r *MockPostRepository) AppendComment(ctx context.Context, postID, commentID string) error {
	if r.AppendCommentErr != nil {
		return r.AppendCommentErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if post, ok := r.posts[postID]; ok {
		post.Comments = append(post.Comments, commentID)
	}
	return nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	mu       sync.RWMutex
	comments map[string]*entity.Comment
	order    []string

	CreateErr      error
	GetByIDsErr    error
	GetByPostIDErr error
}

var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		comments: make(map[string]*entity.Comment),
	}
}

func (r *MockCommentRepository) AddComment(comment *entity.Comment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	r.comments[comment.ID] = comment
	r.order = append(r.order, comment.ID)
}

func (r *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.AddComment(comment)
	return nil
}

func (r *MockCommentRepository) GetByIDs(ctx context.Context, ids []string) ([]*entity.Comment, error) {
	if r.GetByIDsErr != nil {
		return nil, r.GetByIDsErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	comments := make([]*entity.Comment, 0, len(ids))
	for _, id := range ids {
		if comment, ok := r.comments[id]; ok {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

func (r *MockCommentRepository) GetByPostID(ctx context.Context, postID string) ([]*entity.Comment, error) {
	if r.GetByPostIDErr != nil {
		return nil, r.GetByPostIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	comments := make([]*entity.Comment, 0)
	for _, id := range r.order {
		if comment, ok := r.comments[id]; ok && comment.PostID == postID {
			comments = append(comments, comment)
		}
	}
	return comments, nil
}

// MockTradeRepository is a mock implementation of TradeRepository
type MockTradeRepository struct {
	mu     sync.RWMutex
	trades map[string]*entity.Trade
	order  []string

	CreateErr       error
	GetByIDErr      error
	GetByUserIDErr  error
	UpdateStatusErr error
}

var _ repository.TradeRepository = (*MockTradeRepository)(nil)

func NewMockTradeRepository() *MockTradeRepository {
	return &MockTradeRepository{
		trades: make(map[string]*entity.Trade),
	}
}

func (r *MockTradeRepository) AddTrade(trade *entity.Trade) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if trade.ID == "" {
		trade.ID = uuid.NewString()
	}
	if trade.Status == "" {
		trade.Status = entity.TradePending
	}
	r.trades[trade.ID] = trade
	r.order = append(r.order, trade.ID)
}

func (r *MockTradeRepository) Create(ctx context.Context, trade *entity.Trade) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.AddTrade(trade)
	return nil
}

func (r *MockTradeRepository) GetByID(ctx context.Context, id string) (*entity.Trade, error) {
	if r.GetByIDErr != nil {
		return nil, r.GetByIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if trade, ok := r.trades[id]; ok {
		return trade, nil
	}
	return nil, nil
}

func (r *MockTradeRepository) GetByUserID(ctx context.Context, userID string) ([]*entity.Trade, error) {
	if r.GetByUserIDErr != nil {
		return nil, r.GetByUserIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	trades := make([]*entity.Trade, 0)
	for _, id := range r.order {
		trade := r.trades[id]
		if trade.RequesterID == userID || trade.OwnerID == userID {
			trades = append(trades, trade)
		}
	}
	return trades, nil
}

func (r *MockTradeRepository) UpdateStatus(ctx context.Context, id string, status entity.TradeStatus) (*entity.Trade, error) {
	if r.UpdateStatusErr != nil {
		return nil, r.UpdateStatusErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	trade, ok := r.trades[id]
	if !ok {
		return nil, nil
	}
	trade.Status = status
	return trade, nil
}

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	mu            sync.RWMutex
	notifications map[string]*entity.Notification
	order         []string

	CreateErr           error
	CreateManyErr       error
	GetByUserIDErr      error
	MarkReadErr         error
	MarkAllReadErr      error
	DeleteErr           error
	DeleteReadBeforeErr error
}

var _ repository.NotificationRepository = (*MockNotificationRepository)(nil)

func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{
		notifications: make(map[string]*entity.Notification),
	}
}

func (r *MockNotificationRepository) AddNotification(n *entity.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	r.notifications[n.ID] = n
	r.order = append(r.order, n.ID)
}

// All returns every stored notification in insertion order
func (r *MockNotificationRepository) All() []*entity.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ns := make([]*entity.Notification, 0, len(r.order))
	for _, id := range r.order {
		if n, ok := r.notifications[id]; ok {
			ns = append(ns, n)
		}
	}
	return ns
}

func (r *MockNotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.AddNotification(n)
	return nil
}

func (r *MockNotificationRepository) CreateMany(ctx context.Context, ns []*entity.Notification) error {
	if r.CreateManyErr != nil {
		return r.CreateManyErr
	}
	for _, n := range ns {
		r.AddNotification(n)
	}
	return nil
}

func (r *MockNotificationRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	if r.GetByUserIDErr != nil {
		return nil, r.GetByUserIDErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ns := make([]*entity.Notification, 0)
	// newest first
	for i := len(r.order) - 1; i >= 0; i-- {
		n := r.notifications[r.order[i]]
		if n.UserID == userID {
			ns = append(ns, n)
			if limit > 0 && len(ns) >= limit {
				break
			}
		}
	}
	return ns, nil
}

func (r *MockNotificationRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	if r.MarkReadErr != nil {
		return false, r.MarkReadErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if n, ok := r.notifications[id]; ok {
		n.Read = true
		return true, nil
	}
	return false, nil
}

func (r *MockNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	if r.MarkAllReadErr != nil {
		return r.MarkAllReadErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (r *MockNotificationRepository) Delete(ctx context.Context, id string) (bool, error) {
	if r.DeleteErr != nil {
		return false, r.DeleteErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notifications[id]; !ok {
		return false, nil
	}
	delete(r.notifications, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *MockNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if r.DeleteReadBeforeErr != nil {
		return 0, r.DeleteReadBeforeErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	kept := r.order[:0]
	for _, id := range r.order {
		n := r.notifications[id]
		if n.Read && n.Timestamp.Before(cutoff) {
			delete(r.notifications, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	r.order = kept
	return removed, nil
}

// MockOptionsRepository is a mock implementation of OptionsRepository
type MockOptionsRepository struct {
	mu      sync.RWMutex
	options *entity.Options

	GetErr    error
	UpsertErr error
}

var _ repository.OptionsRepository = (*MockOptionsRepository)(nil)

func NewMockOptionsRepository() *MockOptionsRepository {
	return &MockOptionsRepository{}
}

func (r *MockOptionsRepository) Get(ctx context.Context) (*entity.Options, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.options, nil
}

func (r *MockOptionsRepository) Upsert(ctx context.Context, options *entity.Options) error {
	if r.UpsertErr != nil {
		return r.UpsertErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.options = options
	return nil
}
