package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/dto/request"
	"github.com/bookloop/bookloop-go/internal/testutil/mocks"
)

func setupOptionsService(t *testing.T) (OptionsService, *mocks.MockOptionsRepository) {
	optionsRepo := mocks.NewMockOptionsRepository()
	svc := NewOptionsService(optionsRepo, zap.NewNop())
	return svc, optionsRepo
}

func TestOptionsService_Get_CreatesEmptyDocument(t *testing.T) {
	svc, optionsRepo := setupOptionsService(t)
	ctx := context.Background()

	options, err := svc.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if options == nil {
		t.Fatal("Get() returned nil options")
	}

	stored, err := optionsRepo.Get(ctx)
	if err != nil {
		t.Fatalf("repo Get() error = %v", err)
	}
	if stored == nil {
		t.Error("Get() did not persist the empty document")
	}
}

func TestOptionsService_Upsert_KeepsAbsentLists(t *testing.T) {
	svc, optionsRepo := setupOptionsService(t)
	ctx := context.Background()

	if err := optionsRepo.Upsert(ctx, &entity.Options{
		Genres:    []string{"Fantasy"},
		Languages: []string{"English"},
		Authors:   []string{"Le Guin"},
	}); err != nil {
		t.Fatalf("seed Upsert() error = %v", err)
	}

	options, err := svc.Upsert(ctx, &request.UpsertOptionsRequest{
		Genres: []string{"Horror"},
	})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if len(options.Genres) != 1 || options.Genres[0] != "Horror" {
		t.Errorf("Upsert() Genres = %v, want [Horror]", options.Genres)
	}
	if len(options.Languages) != 1 || options.Languages[0] != "English" {
		t.Errorf("Upsert() Languages = %v, want [English]", options.Languages)
	}
	if len(options.Authors) != 1 || options.Authors[0] != "Le Guin" {
		t.Errorf("Upsert() Authors = %v, want [Le Guin]", options.Authors)
	}
}

func TestOptionsService_Seed_OnlyWhenMissing(t *testing.T) {
	svc, optionsRepo := setupOptionsService(t)
	ctx := context.Background()

	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	seeded, _ := optionsRepo.Get(ctx)
	if seeded == nil || len(seeded.Genres) == 0 {
		t.Fatal("Seed() did not write the default lists")
	}

	// Replace the lists, then confirm a second seed leaves them alone.
	custom := &entity.Options{Genres: []string{"Only"}}
	if err := optionsRepo.Upsert(ctx, custom); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if err := svc.Seed(ctx); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	stored, _ := optionsRepo.Get(ctx)
	if len(stored.Genres) != 1 || stored.Genres[0] != "Only" {
		t.Errorf("Seed() overwrote existing options: %v", stored.Genres)
	}
}
