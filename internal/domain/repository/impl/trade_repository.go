package impl

import (
	"context"
	"time"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
)

// tradeRepository implements repository.TradeRepository by delegating to TradeDAO.
type tradeRepository struct {
	dao dao.TradeDAO
}

// NewTradeRepository creates a new TradeRepository instance.
func NewTradeRepository(tradeDAO dao.TradeDAO) repository.TradeRepository {
	return &tradeRepository{dao: tradeDAO}
}

func (r *tradeRepository) Create(ctx context.Context, trade *entity.Trade) error {
	return r.dao.Create(ctx, trade)
}

func (r *tradeRepository) GetByID(ctx context.Context, id string) (*entity.Trade, error) {
	return r.dao.FindByID(ctx, id)
}

func (r *tradeRepository) GetByUserID(ctx context.Context, userID string) ([]*entity.Trade, error) {
	return r.dao.FindByUserID(ctx, userID)
}

func (r *tradeRepository) UpdateStatus(ctx context.Context, id string, status entity.TradeStatus) (*entity.Trade, error) {
	return r.dao.UpdateStatus(ctx, id, status)
}

// notificationRepository implements repository.NotificationRepository by
// delegating to NotificationDAO.
type notificationRepository struct {
	dao dao.NotificationDAO
}

// NewNotificationRepository creates a new NotificationRepository instance.
func NewNotificationRepository(notificationDAO dao.NotificationDAO) repository.NotificationRepository {
	return &notificationRepository{dao: notificationDAO}
}

func (r *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	return r.dao.Create(ctx, n)
}

func (r *notificationRepository) CreateMany(ctx context.Context, ns []*entity.Notification) error {
	return r.dao.CreateMany(ctx, ns)
}

func (r *notificationRepository) GetByUserID(ctx context.Context, userID string, limit int) ([]*entity.Notification, error) {
	return r.dao.FindByUserID(ctx, userID, limit)
}

func (r *notificationRepository) MarkRead(ctx context.Context, id string) (bool, error) {
	return r.dao.MarkRead(ctx, id)
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	return r.dao.MarkAllRead(ctx, userID)
}

func (r *notificationRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.dao.Delete(ctx, id)
}

func (r *notificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.dao.DeleteReadBefore(ctx, cutoff)
}

// optionsRepository implements repository.OptionsRepository by delegating to
// OptionsDAO.
type optionsRepository struct {
	dao dao.OptionsDAO
}

// NewOptionsRepository creates a new OptionsRepository instance.
func NewOptionsRepository(optionsDAO dao.OptionsDAO) repository.OptionsRepository {
	return &optionsRepository{dao: optionsDAO}
}

func (r *optionsRepository) Get(ctx context.Context) (*entity.Options, error) {
	return r.dao.Get(ctx)
}

func (r *optionsRepository) Upsert(ctx context.Context, options *entity.Options) error {
	return r.dao.Upsert(ctx, options)
}
