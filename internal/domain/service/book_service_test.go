package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/testutil/mocks"
)

func setupBookService(t *testing.T) (BookService, *mocks.MockBookRepository, *mocks.MockUserRepository) {
	bookRepo := mocks.NewMockBookRepository()
	userRepo := mocks.NewMockUserRepository()
	svc := NewBookService(bookRepo, userRepo)
	return svc, bookRepo, userRepo
}

func TestBookService_Create_RecordsOwnership(t *testing.T) {
	svc, _, userRepo := setupBookService(t)
	ctx := context.Background()

	owner := &entity.User{Name: "Alice", Email: "alice@example.com"}
	userRepo.AddUser(owner)

	book, err := svc.Create(ctx, &entity.Book{
		Title:   "Dune",
		Author:  "Frank Herbert",
		OwnerID: owner.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if book.ID == "" {
		t.Error("Create() did not assign an ID")
	}
	if len(owner.BooksOwned) != 1 || owner.BooksOwned[0] != book.ID {
		t.Errorf("Create() owner.BooksOwned = %v, want [%v]", owner.BooksOwned, book.ID)
	}
}

func TestBookService_Create_WithoutOwner(t *testing.T) {
	svc, _, userRepo := setupBookService(t)
	ctx := context.Background()

	userRepo.AddOwnedBookErr = errors.New("should not be called")

	if _, err := svc.Create(ctx, &entity.Book{Title: "Dune"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
}

func TestBookService_GetByID_NotFound(t *testing.T) {
	svc, _, _ := setupBookService(t)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, "missing")
	if !errors.Is(err, ErrBookNotFound) {
		t.Errorf("GetByID() error = %v, want ErrBookNotFound", err)
	}
}

func TestBookService_Update_Success(t *testing.T) {
	svc, bookRepo, _ := setupBookService(t)
	ctx := context.Background()

	book := &entity.Book{Title: "Dune"}
	bookRepo.AddBook(book)

	updated, err := svc.Update(ctx, book.ID, &entity.Book{Title: "Dune Messiah"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.ID != book.ID {
		t.Errorf("Update() ID = %v, want %v", updated.ID, book.ID)
	}
	if updated.Title != "Dune Messiah" {
		t.Errorf("Update() Title = %v, want Dune Messiah", updated.Title)
	}
}

func TestBookService_Update_NotFound(t *testing.T) {
	svc, _, _ := setupBookService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, "missing", &entity.Book{Title: "X"})
	if !errors.Is(err, ErrBookNotFound) {
		t.Errorf("Update() error = %v, want ErrBookNotFound", err)
	}
}

func TestBookService_Delete_Success(t *testing.T) {
	svc, bookRepo, _ := setupBookService(t)
	ctx := context.Background()

	book := &entity.Book{Title: "Dune"}
	bookRepo.AddBook(book)

	if err := svc.Delete(ctx, book.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if got, _ := bookRepo.GetByID(ctx, book.ID); got != nil {
		t.Error("Delete() left the book in the repository")
	}
}

func TestBookService_Delete_NotFound(t *testing.T) {
	svc, _, _ := setupBookService(t)
	ctx := context.Background()

	err := svc.Delete(ctx, "missing")
	if !errors.Is(err, ErrBookNotFound) {
		t.Errorf("Delete() error = %v, want ErrBookNotFound", err)
	}
}

func TestBookService_List(t *testing.T) {
	svc, bookRepo, _ := setupBookService(t)
	ctx := context.Background()

	bookRepo.AddBook(&entity.Book{Title: "Dune"})
	bookRepo.AddBook(&entity.Book{Title: "Hyperion"})

	books, err := svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(books) != 2 {
		t.Errorf("List() returned %d books, want 2", len(books))
	}
}
