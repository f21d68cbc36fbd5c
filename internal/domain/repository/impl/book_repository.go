package impl

import (
	"context"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
)

// bookRepository implements repository.BookRepository by delegating to BookDAO.
type bookRepository struct {
	dao dao.BookDAO
}

// NewBookRepository creates a new BookRepository instance.
func NewBookRepository(bookDAO dao.BookDAO) repository.BookRepository {
	return &bookRepository{dao: bookDAO}
}

func (r *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	return r.dao.Create(ctx, book)
}

func (r *bookRepository) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *bookRepository) List(ctx context.Context, geo *dao.GeoFilter) ([]*entity.Book, error) {
	return r.dao.FindAll(ctx, geo)
}

func (r *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	return r.dao.Update(ctx, book)
}

func (r *bookRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.dao.Delete(ctx, id)
}
