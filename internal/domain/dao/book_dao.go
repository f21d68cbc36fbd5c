package dao

import (
	"context"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// GeoFilter restricts a book listing to a bounding box around a point.
// Radius is in kilometers.
type GeoFilter struct {
	Lat    float64
	Lng    float64
	Radius float64
}

// BookDAO defines data access for books.
type BookDAO interface {
	// Create inserts a new book, assigning its UUID when empty
	Create(ctx context.Context, book *entity.Book) error

	// FindByID retrieves a book by public UUID
	FindByID(ctx context.Context, id string) (*entity.Book, error)

	// FindAll retrieves all books, optionally restricted to a bounding box
	FindAll(ctx context.Context, geo *GeoFilter) ([]*entity.Book, error)

	// Update overwrites an existing book document and returns it
	Update(ctx context.Context, book *entity.Book) error

	// Delete hard-deletes a book; returns found=false when no document matched
	Delete(ctx context.Context, id string) (bool, error)
}
