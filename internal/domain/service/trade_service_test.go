package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/dto/request"
	"github.com/bookloop/bookloop-go/internal/testutil/mocks"
)

var _ EventPublisher = (*mocks.MockPublisher)(nil)

func setupTradeService(t *testing.T) (TradeService, *mocks.MockTradeRepository, *mocks.MockNotificationRepository, *mocks.MockPublisher) {
	tradeRepo := mocks.NewMockTradeRepository()
	notificationRepo := mocks.NewMockNotificationRepository()
	publisher := mocks.NewMockPublisher()
	svc := NewTradeService(tradeRepo, notificationRepo, publisher, zap.NewNop())
	return svc, tradeRepo, notificationRepo, publisher
}

func TestTradeService_Create_NotifiesOwner(t *testing.T) {
	svc, _, notificationRepo, publisher := setupTradeService(t)
	ctx := context.Background()

	trade, err := svc.Create(ctx, &request.CreateTradeRequest{
		RequesterID:   "u-requester",
		RequesterName: "Alice",
		OwnerID:       "u-owner",
		OwnerName:     "Bob",
		BookID:        "b-1",
		BookTitle:     "Dune",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if trade.ID == "" {
		t.Error("Create() did not assign an ID")
	}

	notifications := notificationRepo.All()
	if len(notifications) != 1 {
		t.Fatalf("Create() created %d notifications, want 1", len(notifications))
	}
	n := notifications[0]
	if n.UserID != "u-owner" {
		t.Errorf("notification UserID = %v, want u-owner", n.UserID)
	}
	if n.Title != "New Trade Request" {
		t.Errorf("notification Title = %v, want New Trade Request", n.Title)
	}
	if n.Message != `Alice wants to trade for "Dune"` {
		t.Errorf("notification Message = %v", n.Message)
	}
	if n.ActionURL != "/trades" {
		t.Errorf("notification ActionURL = %v, want /trades", n.ActionURL)
	}
	if n.RelatedID != trade.ID {
		t.Errorf("notification RelatedID = %v, want %v", n.RelatedID, trade.ID)
	}
	if len(publisher.Notifications) != 1 {
		t.Errorf("Create() published %d notifications, want 1", len(publisher.Notifications))
	}
}

func TestTradeService_UpdateStatus_Accepted(t *testing.T) {
	svc, tradeRepo, notificationRepo, _ := setupTradeService(t)
	ctx := context.Background()

	trade := &entity.Trade{
		RequesterID:   "u-requester",
		RequesterName: "Alice",
		OwnerID:       "u-owner",
		OwnerName:     "Bob",
		BookTitle:     "Dune",
		Status:        entity.TradePending,
	}
	tradeRepo.AddTrade(trade)

	updated, err := svc.UpdateStatus(ctx, trade.ID, "accepted")
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != entity.TradeAccepted {
		t.Errorf("UpdateStatus() Status = %v, want accepted", updated.Status)
	}

	notifications := notificationRepo.All()
	if len(notifications) != 1 {
		t.Fatalf("UpdateStatus() created %d notifications, want 1", len(notifications))
	}
	n := notifications[0]
	if n.UserID != "u-requester" {
		t.Errorf("notification UserID = %v, want u-requester", n.UserID)
	}
	if n.Title != "Trade Request Accepted" {
		t.Errorf("notification Title = %v, want Trade Request Accepted", n.Title)
	}
	if n.Message != `Bob accepted your request for "Dune"` {
		t.Errorf("notification Message = %v", n.Message)
	}
}

func TestTradeService_UpdateStatus_Declined(t *testing.T) {
	svc, tradeRepo, notificationRepo, _ := setupTradeService(t)
	ctx := context.Background()

	trade := &entity.Trade{
		RequesterID: "u-requester",
		OwnerName:   "Bob",
		BookTitle:   "Dune",
		Status:      entity.TradePending,
	}
	tradeRepo.AddTrade(trade)

	if _, err := svc.UpdateStatus(ctx, trade.ID, "declined"); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	notifications := notificationRepo.All()
	if len(notifications) != 1 {
		t.Fatalf("UpdateStatus() created %d notifications, want 1", len(notifications))
	}
	if notifications[0].Title != "Trade Request Declined" {
		t.Errorf("notification Title = %v, want Trade Request Declined", notifications[0].Title)
	}
}

func TestTradeService_UpdateStatus_Completed(t *testing.T) {
	svc, tradeRepo, notificationRepo, _ := setupTradeService(t)
	ctx := context.Background()

	trade := &entity.Trade{
		RequesterID: "u-requester",
		BookTitle:   "Dune",
		Status:      entity.TradeAccepted,
	}
	tradeRepo.AddTrade(trade)

	if _, err := svc.UpdateStatus(ctx, trade.ID, "completed"); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	notifications := notificationRepo.All()
	if len(notifications) != 1 {
		t.Fatalf("UpdateStatus() created %d notifications, want 1", len(notifications))
	}
	if notifications[0].Message != `Your trade for "Dune" has been completed successfully` {
		t.Errorf("notification Message = %v", notifications[0].Message)
	}
}

func TestTradeService_UpdateStatus_PendingRejected(t *testing.T) {
	svc, tradeRepo, notificationRepo, publisher := setupTradeService(t)
	ctx := context.Background()

	trade := &entity.Trade{RequesterID: "u-requester", Status: entity.TradePending}
	tradeRepo.AddTrade(trade)

	_, err := svc.UpdateStatus(ctx, trade.ID, "pending")
	if !errors.Is(err, ErrInvalidTradeChange) {
		t.Errorf("UpdateStatus() error = %v, want ErrInvalidTradeChange", err)
	}
	if got := len(notificationRepo.All()); got != 0 {
		t.Errorf("UpdateStatus() created %d notifications, want 0", got)
	}
	if len(publisher.Notifications) != 0 {
		t.Errorf("UpdateStatus() published %d notifications, want 0", len(publisher.Notifications))
	}
}

func TestTradeService_UpdateStatus_TerminalStates(t *testing.T) {
	tests := []struct {
		name string
		from entity.TradeStatus
		to   string
	}{
		{"completed to accepted", entity.TradeCompleted, "accepted"},
		{"completed to pending", entity.TradeCompleted, "pending"},
		{"declined to completed", entity.TradeDeclined, "completed"},
		{"pending to completed", entity.TradePending, "completed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, tradeRepo, notificationRepo, _ := setupTradeService(t)
			trade := &entity.Trade{RequesterID: "u-requester", Status: tt.from}
			tradeRepo.AddTrade(trade)

			_, err := svc.UpdateStatus(context.Background(), trade.ID, tt.to)
			if !errors.Is(err, ErrInvalidTradeChange) {
				t.Errorf("UpdateStatus() error = %v, want ErrInvalidTradeChange", err)
			}
			if trade.Status != tt.from {
				t.Errorf("trade Status = %v, want unchanged %v", trade.Status, tt.from)
			}
			if got := len(notificationRepo.All()); got != 0 {
				t.Errorf("UpdateStatus() created %d notifications, want 0", got)
			}
		})
	}
}

func TestTradeService_UpdateStatus_InvalidStatus(t *testing.T) {
	svc, tradeRepo, _, _ := setupTradeService(t)
	ctx := context.Background()

	trade := &entity.Trade{Status: entity.TradePending}
	tradeRepo.AddTrade(trade)

	_, err := svc.UpdateStatus(ctx, trade.ID, "cancelled")
	if !errors.Is(err, ErrInvalidTradeStatus) {
		t.Errorf("UpdateStatus() error = %v, want ErrInvalidTradeStatus", err)
	}
}

func TestTradeService_UpdateStatus_NotFound(t *testing.T) {
	svc, _, _, _ := setupTradeService(t)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, "missing", "accepted")
	if !errors.Is(err, ErrTradeNotFound) {
		t.Errorf("UpdateStatus() error = %v, want ErrTradeNotFound", err)
	}
}

func TestTradeService_GetByUserID_BothSides(t *testing.T) {
	svc, tradeRepo, _, _ := setupTradeService(t)
	ctx := context.Background()

	tradeRepo.AddTrade(&entity.Trade{RequesterID: "alice", OwnerID: "bob"})
	tradeRepo.AddTrade(&entity.Trade{RequesterID: "carol", OwnerID: "alice"})
	tradeRepo.AddTrade(&entity.Trade{RequesterID: "carol", OwnerID: "bob"})

	trades, err := svc.GetByUserID(ctx, "alice")
	if err != nil {
		t.Fatalf("GetByUserID() error = %v", err)
	}
	if len(trades) != 2 {
		t.Errorf("GetByUserID() returned %d trades, want 2", len(trades))
	}
}
