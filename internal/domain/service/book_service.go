package service

import (
	"context"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
)

// BookService defines the interface for book catalog operations
type BookService interface {
	// List retrieves all books, optionally filtered by proximity
	List(ctx context.Context, geo *dao.GeoFilter) ([]*entity.Book, error)

	// GetByID retrieves a book by ID
	GetByID(ctx context.Context, id string) (*entity.Book, error)

	// Create lists a new book and records it against its owner
	Create(ctx context.Context, book *entity.Book) (*entity.Book, error)

	// Update overwrites a book's fields
	Update(ctx context.Context, id string, book *entity.Book) (*entity.Book, error)

	// Delete removes a book listing
	Delete(ctx context.Context, id string) error
}

// bookService implements BookService
type bookService struct {
	bookRepo repository.BookRepository
	userRepo repository.UserRepository
}

// NewBookService creates a new BookService instance
func NewBookService(bookRepo repository.BookRepository, userRepo repository.UserRepository) BookService {
	return &bookService{
		bookRepo: bookRepo,
		userRepo: userRepo,
	}
}

func (s *bookService) List(ctx context.Context, geo *dao.GeoFilter) ([]*entity.Book, error) {
	return s.bookRepo.List(ctx, geo)
}

func (s *bookService) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

func (s *bookService) Create(ctx context.Context, book *entity.Book) (*entity.Book, error) {
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	// Keep the owner's booksowned list in step with the catalog. A missing
	// owner matches nothing and is not an error.
	if book.OwnerID != "" {
		if err := s.userRepo.AddOwnedBook(ctx, book.OwnerID, book.ID); err != nil {
			return nil, err
		}
	}
	return book, nil
}

func (s *bookService) Update(ctx context.Context, id string, book *entity.Book) (*entity.Book, error) {
	existing, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrBookNotFound
	}

	book.ID = id
	if err := s.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) Delete(ctx context.Context, id string) error {
	found, err := s.bookRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrBookNotFound
	}
	return nil
}
