package repository

import (
	"context"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// BookRepository defines the interface for book data operations
type BookRepository interface {
	// Create creates a new book
	Create(ctx context.Context, book *entity.Book) error

	// GetByID retrieves a book by public UUID
	GetByID(ctx context.Context, id string) (*entity.Book, error)

	// List retrieves all books, optionally restricted to a bounding box
	List(ctx context.Context, geo *dao.GeoFilter) ([]*entity.Book, error)

	// Update updates an existing book
	Update(ctx context.Context, book *entity.Book) error

	// Delete hard-deletes a book; found=false when it did not exist
	Delete(ctx context.Context, id string) (bool, error)
}
