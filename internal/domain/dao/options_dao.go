package dao

import (
	"context"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// OptionsDAO defines data access for the options singleton.
type OptionsDAO interface {
	// Get retrieves the options document, or nil when none exists
	Get(ctx context.Context) (*entity.Options, error)

	// Upsert creates or overwrites the options document
	Upsert(ctx context.Context, options *entity.Options) error
}
