package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
	"github.com/bookloop/bookloop-go/internal/dto/request"
)

// TradeService handles trade requests and the notifications their status
// changes fire.
type TradeService interface {
	// GetByUserID retrieves trades where the user is requester or owner
	GetByUserID(ctx context.Context, userID string) ([]*entity.Trade, error)

	// Create opens a pending trade and notifies the book owner
	Create(ctx context.Context, req *request.CreateTradeRequest) (*entity.Trade, error)

	// UpdateStatus advances a trade along the forward-only status machine and
	// notifies the requester when the new status has an entry in the
	// notification table
	UpdateStatus(ctx context.Context, id, status string) (*entity.Trade, error)
}

// tradeService implements TradeService
type tradeService struct {
	tradeRepo        repository.TradeRepository
	notificationRepo repository.NotificationRepository
	publisher        EventPublisher
	logger           *zap.Logger
}

// NewTradeService creates a new TradeService instance
func NewTradeService(
	tradeRepo repository.TradeRepository,
	notificationRepo repository.NotificationRepository,
	publisher EventPublisher,
	logger *zap.Logger,
) TradeService {
	return &tradeService{
		tradeRepo:        tradeRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

func (s *tradeService) GetByUserID(ctx context.Context, userID string) ([]*entity.Trade, error) {
	return s.tradeRepo.GetByUserID(ctx, userID)
}

func (s *tradeService) Create(ctx context.Context, req *request.CreateTradeRequest) (*entity.Trade, error) {
	trade := &entity.Trade{
		RequesterID:       req.RequesterID,
		RequesterName:     req.RequesterName,
		OwnerID:           req.OwnerID,
		OwnerName:         req.OwnerName,
		BookID:            req.BookID,
		BookTitle:         req.BookTitle,
		Message:           req.Message,
		TradeDescription:  req.TradeDescription,
		RequesterContact:  req.RequesterContact,
		RequesterLocation: req.RequesterLocation,
	}
	if err := s.tradeRepo.Create(ctx, trade); err != nil {
		return nil, err
	}

	notification := &entity.Notification{
		UserID:    trade.OwnerID,
		Type:      entity.NotificationTrade,
		Title:     "New Trade Request",
		Message:   fmt.Sprintf("%s wants to trade for %q", trade.RequesterName, trade.BookTitle),
		ActionURL: "/trades",
		RelatedID: trade.ID,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}
	s.publisher.PublishNotification(notification)

	return trade, nil
}

func (s *tradeService) UpdateStatus(ctx context.Context, id, status string) (*entity.Trade, error) {
	newStatus := entity.TradeStatus(status)
	if !newStatus.Valid() {
		return nil, ErrInvalidTradeStatus
	}

	current, err := s.tradeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrTradeNotFound
	}
	if !current.Status.CanTransitionTo(newStatus) {
		return nil, ErrInvalidTradeChange
	}

	trade, err := s.tradeRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return nil, err
	}
	if trade == nil {
		return nil, ErrTradeNotFound
	}

	if notification := statusNotification(trade); notification != nil {
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			return nil, err
		}
		s.publisher.PublishNotification(notification)
	}

	s.logger.Info("trade status updated",
		zap.String("trade_id", trade.ID),
		zap.String("status", string(trade.Status)),
	)
	return trade, nil
}

// statusNotification is the lookup table mapping a trade's new status to the
// notification the requester receives. Statuses without an entry fire nothing.
func statusNotification(trade *entity.Trade) *entity.Notification {
	var title, message string
	switch trade.Status {
	case entity.TradeAccepted:
		title = "Trade Request Accepted"
		message = fmt.Sprintf("%s accepted your request for %q", trade.OwnerName, trade.BookTitle)
	case entity.TradeDeclined:
		title = "Trade Request Declined"
		message = fmt.Sprintf("%s declined your request for %q", trade.OwnerName, trade.BookTitle)
	case entity.TradeCompleted:
		title = "Trade Completed"
		message = fmt.Sprintf("Your trade for %q has been completed successfully", trade.BookTitle)
	default:
		return nil
	}

	return &entity.Notification{
		UserID:    trade.RequesterID,
		Type:      entity.NotificationTrade,
		Title:     title,
		Message:   message,
		ActionURL: "/trades",
		RelatedID: trade.ID,
	}
}
