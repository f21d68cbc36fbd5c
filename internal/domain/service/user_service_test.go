package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bookloop/bookloop-go/internal/config"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/dto/request"
	"github.com/bookloop/bookloop-go/internal/security"
	"github.com/bookloop/bookloop-go/internal/testutil/mocks"
)

func setupUserService(t *testing.T) (UserService, *mocks.MockUserRepository) {
	userRepo := mocks.NewMockUserRepository()
	passwordHasher := security.NewPasswordHasher()
	jwtProvider := security.NewJWTProvider(&config.JWTConfig{
		Secret:              "test-secret",
		AccessTokenDuration: time.Hour,
		Issuer:              "bookloop-test",
	})
	userService := NewUserService(userRepo, passwordHasher, jwtProvider)
	return userService, userRepo
}

func TestNewUserService(t *testing.T) {
	userService, _ := setupUserService(t)
	if userService == nil {
		t.Fatal("NewUserService() returned nil")
	}
}

func TestUserService_Signup_Success(t *testing.T) {
	userService, _ := setupUserService(t)
	ctx := context.Background()

	user, err := userService.Signup(ctx, &request.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Bio:      "Reader",
	})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if user.ID == "" {
		t.Error("Signup() did not assign an ID")
	}
	if user.Password == "secret123" {
		t.Error("Signup() stored the password in plain text")
	}
	if user.Email != "alice@example.com" {
		t.Errorf("Signup() Email = %v, want alice@example.com", user.Email)
	}
}

func TestUserService_Signup_EmailTaken(t *testing.T) {
	userService, userRepo := setupUserService(t)
	ctx := context.Background()

	userRepo.AddUser(&entity.User{Name: "Alice", Email: "alice@example.com"})

	_, err := userService.Signup(ctx, &request.SignupRequest{
		Name:     "Other Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Signup() error = %v, want ErrEmailTaken", err)
	}
}

func TestUserService_Signup_Error(t *testing.T) {
	userService, userRepo := setupUserService(t)
	ctx := context.Background()

	expectedErr := errors.New("database error")
	userRepo.GetByEmailErr = expectedErr

	_, err := userService.Signup(ctx, &request.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if !errors.Is(err, expectedErr) {
		t.Errorf("Signup() error = %v, want %v", err, expectedErr)
	}
}

func TestUserService_Login_Success(t *testing.T) {
	userService, _ := setupUserService(t)
	ctx := context.Background()

	if _, err := userService.Signup(ctx, &request.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	resp, err := userService.Login(ctx, "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token == "" {
		t.Error("Login() returned an empty token")
	}
	if resp.User == nil || resp.User.Email != "alice@example.com" {
		t.Errorf("Login() User = %+v, want alice@example.com", resp.User)
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	userService, _ := setupUserService(t)
	ctx := context.Background()

	if _, err := userService.Signup(ctx, &request.SignupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	}); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	_, err := userService.Login(ctx, "alice@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	userService, _ := setupUserService(t)
	ctx := context.Background()

	_, err := userService.Login(ctx, "nobody@example.com", "secret123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestUserService_GetByID_Success(t *testing.T) {
	userService, userRepo := setupUserService(t)
	ctx := context.Background()

	user := &entity.User{Name: "Alice", Email: "alice@example.com"}
	userRepo.AddUser(user)

	got, err := userService.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Name != "Alice" {
		t.Errorf("GetByID() Name = %v, want Alice", got.Name)
	}
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	userService, _ := setupUserService(t)
	ctx := context.Background()

	_, err := userService.GetByID(ctx, "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByID() error = %v, want ErrUserNotFound", err)
	}
}

func TestUserService_UpdateProfile_ReplacesFields(t *testing.T) {
	userService, userRepo := setupUserService(t)
	ctx := context.Background()

	user := &entity.User{
		Name:   "Alice",
		Email:  "alice@example.com",
		Avatar: "old.png",
		Bio:    "old bio",
		Location: entity.Location{
			City: "Lisbon",
		},
	}
	userRepo.AddUser(user)

	updated, err := userService.UpdateProfile(ctx, user.ID, &request.UpdateProfileRequest{
		Name:   "Alice B",
		Avatar: "new.png",
		Bio:    "new bio",
	})
	if err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}
	if updated.Name != "Alice B" {
		t.Errorf("UpdateProfile() Name = %v, want Alice B", updated.Name)
	}
	if updated.Bio != "new bio" {
		t.Errorf("UpdateProfile() Bio = %v, want new bio", updated.Bio)
	}
	// A request without a location clears the stored one.
	if updated.Location.City != "" {
		t.Errorf("UpdateProfile() Location.City = %v, want empty", updated.Location.City)
	}
}

func TestUserService_UpdateProfile_NotFound(t *testing.T) {
	userService, _ := setupUserService(t)
	ctx := context.Background()

	_, err := userService.UpdateProfile(ctx, "missing", &request.UpdateProfileRequest{Name: "X"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UpdateProfile() error = %v, want ErrUserNotFound", err)
	}
}

func TestUserService_Favorites_AddAndRemove(t *testing.T) {
	userService, userRepo := setupUserService(t)
	ctx := context.Background()

	user := &entity.User{Name: "Alice", Email: "alice@example.com"}
	userRepo.AddUser(user)

	favorites, err := userService.AddFavorite(ctx, user.ID, "book-1")
	if err != nil {
		t.Fatalf("AddFavorite() error = %v", err)
	}
	if len(favorites) != 1 || favorites[0] != "book-1" {
		t.Errorf("AddFavorite() favorites = %v, want [book-1]", favorites)
	}

	favorites, err = userService.RemoveFavorite(ctx, user.ID, "book-1")
	if err != nil {
		t.Fatalf("RemoveFavorite() error = %v", err)
	}
	if len(favorites) != 0 {
		t.Errorf("RemoveFavorite() favorites = %v, want empty", favorites)
	}
}

func TestUserService_GetFavorites_EmptyList(t *testing.T) {
	userService, userRepo := setupUserService(t)
	ctx := context.Background()

	user := &entity.User{Name: "Alice", Email: "alice@example.com"}
	userRepo.AddUser(user)

	favorites, err := userService.GetFavorites(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetFavorites() error = %v", err)
	}
	if favorites == nil {
		t.Error("GetFavorites() returned nil, want an empty slice")
	}
	if len(favorites) != 0 {
		t.Errorf("GetFavorites() favorites = %v, want empty", favorites)
	}
}

func TestUserService_GetFavorites_NotFound(t *testing.T) {
	userService, _ := setupUserService(t)
	ctx := context.Background()

	_, err := userService.GetFavorites(ctx, "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetFavorites() error = %v, want ErrUserNotFound", err)
	}
}
