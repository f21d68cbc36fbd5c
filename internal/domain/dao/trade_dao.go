package dao

import (
	"context"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// TradeDAO defines data access for trades.
type TradeDAO interface {
	// Create inserts a new trade, assigning its UUID when empty
	Create(ctx context.Context, trade *entity.Trade) error

	// FindByID retrieves a trade by public UUID
	FindByID(ctx context.Context, id string) (*entity.Trade, error)

	// FindByUserID retrieves trades where the user is requester or owner
	FindByUserID(ctx context.Context, userID string) ([]*entity.Trade, error)

	// UpdateStatus sets the trade status and returns the updated trade,
	// or nil when no trade matched
	UpdateStatus(ctx context.Context, id string, status entity.TradeStatus) (*entity.Trade, error)
}
