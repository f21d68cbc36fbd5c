package service

import (
	"context"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
	"github.com/bookloop/bookloop-go/internal/dto/request"
	"github.com/bookloop/bookloop-go/internal/dto/response"
	"github.com/bookloop/bookloop-go/internal/security"
)

// UserService defines the interface for account and profile operations
type UserService interface {
	// Signup creates a new user account with a hashed password
	Signup(ctx context.Context, req *request.SignupRequest) (*entity.User, error)

	// Login verifies credentials and returns the user with a session token
	Login(ctx context.Context, email, password string) (*response.LoginResponse, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// UpdateProfile replaces the mutable profile fields
	UpdateProfile(ctx context.Context, id string, req *request.UpdateProfileRequest) (*entity.User, error)

	// GetFavorites returns the user's favorite book IDs
	GetFavorites(ctx context.Context, userID string) ([]string, error)

	// AddFavorite adds a book to the user's favorites and returns the list
	AddFavorite(ctx context.Context, userID, bookID string) ([]string, error)

	// RemoveFavorite removes a book from the user's favorites and returns the list
	RemoveFavorite(ctx context.Context, userID, bookID string) ([]string, error)
}

// userService implements UserService
type userService struct {
	userRepo       repository.UserRepository
	passwordHasher *security.PasswordHasher
	jwtProvider    *security.JWTProvider
}

// NewUserService creates a new UserService instance
func NewUserService(
	userRepo repository.UserRepository,
	passwordHasher *security.PasswordHasher,
	jwtProvider *security.JWTProvider,
) UserService {
	return &userService{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtProvider:    jwtProvider,
	}
}

func (s *userService) Signup(ctx context.Context, req *request.SignupRequest) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := s.passwordHasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:          req.Name,
		Email:         req.Email,
		Password:      hashed,
		Avatar:        req.Avatar,
		Bio:           req.Bio,
		BooksOwned:    req.BooksOwned,
		CirclesJoined: req.CirclesJoined,
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Preferences != nil {
		user.Preferences = *req.Preferences
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*response.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.passwordHasher.Verify(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtProvider.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	return &response.LoginResponse{User: user, Token: token}, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, req *request.UpdateProfileRequest) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// Profile updates replace the mutable fields wholesale.
	user.Name = req.Name
	user.Avatar = req.Avatar
	user.Bio = req.Bio
	if req.Location != nil {
		user.Location = *req.Location
	} else {
		user.Location = entity.Location{}
	}
	if req.Preferences != nil {
		user.Preferences = *req.Preferences
	} else {
		user.Preferences = entity.Preferences{}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetFavorites(ctx context.Context, userID string) ([]string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Favorites == nil {
		return []string{}, nil
	}
	return user.Favorites, nil
}

func (s *userService) AddFavorite(ctx context.Context, userID, bookID string) ([]string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.userRepo.AddFavorite(ctx, userID, bookID); err != nil {
		return nil, err
	}
	if !user.HasFavorite(bookID) {
		user.Favorites = append(user.Favorites, bookID)
	}
	if user.Favorites == nil {
		return []string{}, nil
	}
	return user.Favorites, nil
}

func (s *userService) RemoveFavorite(ctx context.Context, userID, bookID string) ([]string, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.userRepo.RemoveFavorite(ctx, userID, bookID); err != nil {
		return nil, err
	}

	remaining := make([]string, 0, len(user.Favorites))
	for _, id := range user.Favorites {
		if id != bookID {
			remaining = append(remaining, id)
		}
	}
	return remaining, nil
}
