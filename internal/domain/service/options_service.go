package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
	"github.com/bookloop/bookloop-go/internal/dto/request"
)

// Default picker lists, written on first boot when no options document exists.
var (
	defaultGenres = []string{
		"Fiction", "Non-Fiction", "Mystery", "Romance", "Fantasy", "Science Fiction",
		"Biography", "History", "Self-Help", "Business", "Psychology", "Philosophy",
		"Poetry", "Drama", "Adventure", "Horror", "Thriller", "Comedy", "Crime",
		"Historical Fiction", "Contemporary Fiction", "Young Adult", "Children",
		"Memoir", "Travel", "Health & Fitness", "Cooking", "Art", "Music", "Sports",
	}
	defaultLanguages = []string{
		"English", "Spanish", "French", "German", "Italian", "Portuguese", "Russian",
		"Chinese", "Japanese", "Korean", "Arabic", "Hindi", "Bengali", "Urdu",
		"Dutch", "Swedish", "Norwegian", "Danish", "Finnish", "Polish", "Czech",
		"Hungarian", "Romanian", "Greek", "Turkish", "Hebrew", "Thai", "Vietnamese",
	}
	defaultAuthors = []string{
		"J.K. Rowling", "Stephen King", "Agatha Christie", "William Shakespeare",
		"Jane Austen", "Mark Twain", "Ernest Hemingway", "F. Scott Fitzgerald",
		"George Orwell", "Harper Lee", "J.R.R. Tolkien", "Dan Brown", "John Grisham",
		"Paulo Coelho", "Haruki Murakami", "Maya Angelou", "Toni Morrison",
		"Margaret Atwood", "Neil Gaiman", "Gillian Flynn", "Donna Tartt",
		"Khaled Hosseini", "Chimamanda Ngozi Adichie", "Yuval Noah Harari",
	}
)

// OptionsService manages the global genre/language/author picker lists.
type OptionsService interface {
	// Get returns the current lists, creating an empty document when none
	// exists yet
	Get(ctx context.Context) (*entity.Options, error)

	// Upsert replaces the lists
	Upsert(ctx context.Context, req *request.UpsertOptionsRequest) (*entity.Options, error)

	// Seed writes the default lists when no options document exists
	Seed(ctx context.Context) error
}

// optionsService implements OptionsService
type optionsService struct {
	optionsRepo repository.OptionsRepository
	logger      *zap.Logger
}

// NewOptionsService creates a new OptionsService instance
func NewOptionsService(optionsRepo repository.OptionsRepository, logger *zap.Logger) OptionsService {
	return &optionsService{
		optionsRepo: optionsRepo,
		logger:      logger,
	}
}

func (s *optionsService) Get(ctx context.Context) (*entity.Options, error) {
	options, err := s.optionsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if options == nil {
		options = &entity.Options{}
		if err := s.optionsRepo.Upsert(ctx, options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

func (s *optionsService) Upsert(ctx context.Context, req *request.UpsertOptionsRequest) (*entity.Options, error) {
	existing, err := s.optionsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	options := &entity.Options{
		Genres:    req.Genres,
		Languages: req.Languages,
		Authors:   req.Authors,
	}
	// Absent lists keep their previous values.
	if existing != nil {
		if options.Genres == nil {
			options.Genres = existing.Genres
		}
		if options.Languages == nil {
			options.Languages = existing.Languages
		}
		if options.Authors == nil {
			options.Authors = existing.Authors
		}
	}

	if err := s.optionsRepo.Upsert(ctx, options); err != nil {
		return nil, err
	}
	return options, nil
}

func (s *optionsService) Seed(ctx context.Context) error {
	existing, err := s.optionsRepo.Get(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	err = s.optionsRepo.Upsert(ctx, &entity.Options{
		Genres:    defaultGenres,
		Languages: defaultLanguages,
		Authors:   defaultAuthors,
	})
	if err != nil {
		return err
	}
	s.logger.Info("seeded default options")
	return nil
}
