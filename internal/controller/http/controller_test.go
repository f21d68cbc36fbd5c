package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/config"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/dto/response"
	"github.com/bookloop/bookloop-go/internal/security"
	"github.com/bookloop/bookloop-go/internal/testutil/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter() (*gin.Engine, *gin.RouterGroup) {
	router := gin.New()
	api := router.Group("/api")
	return router, api
}

func newTestJWTProvider() *security.JWTProvider {
	return security.NewJWTProvider(&config.JWTConfig{
		Secret:              "test-secret-key-for-testing",
		AccessTokenDuration: time.Hour,
		Issuer:              "test",
	})
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// User controller

func setupUserController(t *testing.T) (*gin.Engine, *mocks.MockUserRepository) {
	userRepo := mocks.NewMockUserRepository()
	userService := service.NewUserService(userRepo, security.NewPasswordHasher(), newTestJWTProvider())
	controller := NewUserController(userService)

	router, api := setupTestRouter()
	controller.RegisterRoutes(api)
	return router, userRepo
}

func TestUserController_Signup_Success(t *testing.T) {
	router, _ := setupUserController(t)

	body := `{"name":"Alice","email":"alice@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Signup() status = %v, want %v", w.Code, http.StatusCreated)
	}

	var user entity.User
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("response unmarshal error = %v", err)
	}
	if user.ID == "" {
		t.Error("Signup() response has no ID")
	}
}

func TestUserController_Signup_BindError(t *testing.T) {
	router, _ := setupUserController(t)

	req := httptest.NewRequest(http.MethodPost, "/api/users/signup", bytes.NewBufferString("{invalid"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Signup() status = %v, want %v", w.Code, http.StatusBadRequest)
	}
}

func TestUserController_Signup_DuplicateEmail(t *testing.T) {
	router, userRepo := setupUserController(t)
	userRepo.AddUser(&entity.User{Name: "Alice", Email: "alice@example.com"})

	body := `{"name":"Alice","email":"alice@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/signup", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Signup() status = %v, want %v", w.Code, http.StatusBadRequest)
	}

	var msg response.Message
	if err := json.Unmarshal(w.Body.Bytes(), &msg); err != nil {
		t.Fatalf("response unmarshal error = %v", err)
	}
	if msg.Message != "Email already registered" {
		t.Errorf("Signup() message = %v, want Email already registered", msg.Message)
	}
}

func TestUserController_Login_QueryParams(t *testing.T) {
	router, _ := setupUserController(t)

	// Create the account through the API so the stored hash is real.
	signup := `{"name":"Alice","email":"alice@example.com","password":"secret123"}`
	req := httptest.NewRequest(http.MethodPost, "/api/users/signup", bytes.NewBufferString(signup))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/users/login?email=alice@example.com&password=secret123", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Login() status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal error = %v", err)
	}
	if resp.Token == "" {
		t.Error("Login() response has no token")
	}
}

func TestUserController_Login_BadCredentials(t *testing.T) {
	router, _ := setupUserController(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/login?email=nobody@example.com&password=x", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Login() status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestUserController_GetByID_NotFound(t *testing.T) {
	router, _ := setupUserController(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/missing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("GetByID() status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestUserController_Favorites(t *testing.T) {
	router, userRepo := setupUserController(t)
	user := &entity.User{Name: "Alice", Email: "alice@example.com"}
	userRepo.AddUser(user)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/users/%s/favorites/b-1", user.ID), nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("AddFavorite() status = %v, want %v", w.Code, http.StatusOK)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/users/%s/favorites", user.ID), nil)
	router.ServeHTTP(w, req)

	var resp response.FavoritesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal error = %v", err)
	}
	if len(resp.Favorites) != 1 || resp.Favorites[0] != "b-1" {
		t.Errorf("GetFavorites() favorites = %v, want [b-1]", resp.Favorites)
	}
}

// Book controller

func setupBookController(t *testing.T) (*gin.Engine, *mocks.MockBookRepository) {
	bookRepo := mocks.NewMockBookRepository()
	userRepo := mocks.NewMockUserRepository()
	bookService := service.NewBookService(bookRepo, userRepo)
	controller := NewBookController(bookService)

	router, api := setupTestRouter()
	controller.RegisterRoutes(api)
	return router, bookRepo
}

func TestBookController_List_EmptyArray(t *testing.T) {
	router, _ := setupBookController(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("List() status = %v, want %v", w.Code, http.StatusOK)
	}
	if body := w.Body.String(); body != "[]" {
		t.Errorf("List() body = %v, want []", body)
	}
}

func TestBookController_Create_And_Get(t *testing.T) {
	router, _ := setupBookController(t)

	body := `{"title":"Dune","author":"Frank Herbert","available":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/books", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Create() status = %v, want %v", w.Code, http.StatusCreated)
	}
	var book entity.Book
	if err := json.Unmarshal(w.Body.Bytes(), &book); err != nil {
		t.Fatalf("response unmarshal error = %v", err)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/books/"+book.ID, nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("GetByID() status = %v, want %v", w.Code, http.StatusOK)
	}
}

func TestBookController_LegacyAddBookAlias(t *testing.T) {
	router, _ := setupBookController(t)

	body := `{"title":"Dune"}`
	req := httptest.NewRequest(http.MethodPost, "/api/addbook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("legacy create status = %v, want %v", w.Code, http.StatusCreated)
	}
}

func TestBookController_Delete_NotFound(t *testing.T) {
	router, _ := setupBookController(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/books/missing", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Delete() status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

// Circle controller

type circleControllerDeps struct {
	circleRepo *mocks.MockCircleRepository
	userRepo   *mocks.MockUserRepository
	postRepo   *mocks.MockPostRepository
}

func setupCircleController(t *testing.T) (*gin.Engine, *circleControllerDeps) {
	deps := &circleControllerDeps{
		circleRepo: mocks.NewMockCircleRepository(),
		userRepo:   mocks.NewMockUserRepository(),
		postRepo:   mocks.NewMockPostRepository(),
	}
	commentRepo := mocks.NewMockCommentRepository()
	notificationRepo := mocks.NewMockNotificationRepository()
	publisher := service.NewNopPublisher()
	logger := zap.NewNop()

	discussionService := service.NewDiscussionService(deps.circleRepo, deps.postRepo, commentRepo, notificationRepo, publisher, logger)
	membershipService := service.NewMembershipService(deps.circleRepo, deps.userRepo, notificationRepo, publisher, logger)
	controller := NewCircleController(discussionService, membershipService)

	router, api := setupTestRouter()
	controller.RegisterRoutes(api)
	return router, deps
}

func TestCircleController_Create_And_List(t *testing.T) {
	router, _ := setupCircleController(t)

	body := `{"name":"Sci-Fi Club","description":"All things sci-fi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/circles", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("Create() status = %v, want %v", w.Code, http.StatusCreated)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/circles", nil)
	router.ServeHTTP(w, req)

	var views []json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("response unmarshal error = %v", err)
	}
	if len(views) != 1 {
		t.Errorf("List() returned %d circles, want 1", len(views))
	}
}

func TestCircleController_Join_And_Leave(t *testing.T) {
	router, deps := setupCircleController(t)

	circle := &entity.ReadingCircle{Name: "Sci-Fi Club"}
	deps.circleRepo.AddCircle(circle)
	user := &entity.User{Name: "Alice", Email: "alice@example.com"}
	deps.userRepo.AddUser(user)

	w := httptest.NewRecorder()
	req := jsonRequest(http.MethodPost, "/api/circles/"+circle.ID+"/join", map[string]string{"userId": user.ID})
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Join() status = %v, body = %v", w.Code, w.Body.String())
	}

	// A second join must be rejected.
	w = httptest.NewRecorder()
	req = jsonRequest(http.MethodPost, "/api/circles/"+circle.ID+"/join", map[string]string{"userId": user.ID})
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Join() twice status = %v, want %v", w.Code, http.StatusBadRequest)
	}

	w = httptest.NewRecorder()
	req = jsonRequest(http.MethodDelete, "/api/circles/"+circle.ID+"/leave", map[string]string{"userId": user.ID})
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Leave() status = %v, want %v", w.Code, http.StatusOK)
	}
}

func TestCircleController_Join_MissingCircle(t *testing.T) {
	router, deps := setupCircleController(t)
	user := &entity.User{Name: "Alice", Email: "alice@example.com"}
	deps.userRepo.AddUser(user)

	w := httptest.NewRecorder()
	req := jsonRequest(http.MethodPost, "/api/circles/missing/join", map[string]string{"userId": user.ID})
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Join() status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestCircleController_CreatePost(t *testing.T) {
	router, deps := setupCircleController(t)
	circle := &entity.ReadingCircle{Name: "Sci-Fi Club"}
	deps.circleRepo.AddCircle(circle)

	body := `{"authorId":"u-1","authorName":"Alice","content":"First post"}`
	req := httptest.NewRequest(http.MethodPost, "/api/circles/"+circle.ID+"/posts", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("CreatePost() status = %v, want %v", w.Code, http.StatusCreated)
	}
}

// Post controller

func TestPostController_CreateComment(t *testing.T) {
	circleRepo := mocks.NewMockCircleRepository()
	postRepo := mocks.NewMockPostRepository()
	commentRepo := mocks.NewMockCommentRepository()
	notificationRepo := mocks.NewMockNotificationRepository()
	discussionService := service.NewDiscussionService(circleRepo, postRepo, commentRepo, notificationRepo, service.NewNopPublisher(), zap.NewNop())
	controller := NewPostController(discussionService)

	router, api := setupTestRouter()
	controller.RegisterRoutes(api)

	post := &entity.Post{CircleID: "c-1", Content: "hello"}
	postRepo.AddPost(post)

	body := `{"authorId":"u-1","authorName":"Alice","content":"Nice point"}`
	req := httptest.NewRequest(http.MethodPost, "/api/posts/"+post.ID+"/comments", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("CreateComment() status = %v, want %v", w.Code, http.StatusCreated)
	}
}

// Trade controller

func setupTradeController(t *testing.T) (*gin.Engine, *mocks.MockTradeRepository) {
	tradeRepo := mocks.NewMockTradeRepository()
	notificationRepo := mocks.NewMockNotificationRepository()
	tradeService := service.NewTradeService(tradeRepo, notificationRepo, service.NewNopPublisher(), zap.NewNop())
	controller := NewTradeController(tradeService)

	router, api := setupTestRouter()
	controller.RegisterRoutes(api)
	return router, tradeRepo
}

func TestTradeController_Create(t *testing.T) {
	router, _ := setupTradeController(t)

	body := `{"requesterId":"u-1","requesterName":"Alice","ownerId":"u-2","ownerName":"Bob","bookId":"b-1","bookTitle":"Dune"}`
	req := httptest.NewRequest(http.MethodPost, "/api/trades", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("Create() status = %v, want %v", w.Code, http.StatusCreated)
	}
}

func TestTradeController_UpdateStatus_Invalid(t *testing.T) {
	router, tradeRepo := setupTradeController(t)
	trade := &entity.Trade{Status: entity.TradePending}
	tradeRepo.AddTrade(trade)

	req := jsonRequest(http.MethodPut, "/api/trades/"+trade.ID, map[string]string{"status": "cancelled"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("UpdateStatus() status = %v, want %v", w.Code, http.StatusBadRequest)
	}
}

func TestTradeController_UpdateStatus_NotFound(t *testing.T) {
	router, _ := setupTradeController(t)

	req := jsonRequest(http.MethodPut, "/api/trades/missing", map[string]string{"status": "accepted"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("UpdateStatus() status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

// Notification controller

func setupNotificationController(t *testing.T) (*gin.Engine, *mocks.MockNotificationRepository) {
	notificationRepo := mocks.NewMockNotificationRepository()
	notificationService := service.NewNotificationService(notificationRepo)
	controller := NewNotificationController(notificationService)

	router, api := setupTestRouter()
	controller.RegisterRoutes(api)
	return router, notificationRepo
}

func TestNotificationController_List_RequiresUserID(t *testing.T) {
	router, _ := setupNotificationController(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("List() status = %v, want %v", w.Code, http.StatusBadRequest)
	}
}

func TestNotificationController_List(t *testing.T) {
	router, notificationRepo := setupNotificationController(t)
	notificationRepo.AddNotification(&entity.Notification{UserID: "u-1", Title: "hello"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications?userId=u-1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("List() status = %v, want %v", w.Code, http.StatusOK)
	}
	var notifications []*entity.Notification
	if err := json.Unmarshal(w.Body.Bytes(), &notifications); err != nil {
		t.Fatalf("response unmarshal error = %v", err)
	}
	if len(notifications) != 1 {
		t.Errorf("List() returned %d notifications, want 1", len(notifications))
	}
}

func TestNotificationController_MarkRead_NotFound(t *testing.T) {
	router, _ := setupNotificationController(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/notifications/missing/read", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("MarkRead() status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestNotificationController_MarkAllRead(t *testing.T) {
	router, notificationRepo := setupNotificationController(t)
	n := &entity.Notification{UserID: "u-1"}
	notificationRepo.AddNotification(n)

	req := jsonRequest(http.MethodPut, "/api/notifications/mark-all-read", map[string]string{"userId": "u-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("MarkAllRead() status = %v, want %v", w.Code, http.StatusOK)
	}
	if !n.Read {
		t.Error("MarkAllRead() did not mark the notification read")
	}
}

// Options controller

func TestOptionsController_GetAndUpsert(t *testing.T) {
	optionsRepo := mocks.NewMockOptionsRepository()
	optionsService := service.NewOptionsService(optionsRepo, zap.NewNop())
	controller := NewOptionsController(optionsService)

	router, api := setupTestRouter()
	controller.RegisterRoutes(api)

	req := jsonRequest(http.MethodPut, "/api/options", map[string][]string{"genres": {"Fantasy"}})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Upsert() status = %v, want %v", w.Code, http.StatusOK)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/options", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Get() status = %v, want %v", w.Code, http.StatusOK)
	}

	var resp response.OptionsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal error = %v", err)
	}
	if len(resp.Genres) != 1 || resp.Genres[0] != "Fantasy" {
		t.Errorf("Get() Genres = %v, want [Fantasy]", resp.Genres)
	}
}

// Recommend controller

func TestRecommendController_Books(t *testing.T) {
	recommendService := service.NewRecommendService(nil, zap.NewNop())
	controller := NewRecommendController(recommendService)

	router, api := setupTestRouter()
	controller.RegisterRoutes(api)

	body := `{"user":{"id":"u-1"},"books":[{"id":"b-1"},{"id":"b-2"}],"topK":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/recommend/books", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Books() status = %v, want %v", w.Code, http.StatusOK)
	}
	var resp response.RecommendBooksResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response unmarshal error = %v", err)
	}
	if len(resp.BookIDs) != 1 {
		t.Errorf("Books() returned %d ids, want 1", len(resp.BookIDs))
	}
}

func TestRecommendController_Books_MissingUser(t *testing.T) {
	recommendService := service.NewRecommendService(nil, zap.NewNop())
	controller := NewRecommendController(recommendService)

	router, api := setupTestRouter()
	controller.RegisterRoutes(api)

	body := `{"books":[{"id":"b-1"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/recommend/books", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Books() status = %v, want %v", w.Code, http.StatusBadRequest)
	}
}
