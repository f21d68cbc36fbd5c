package mocks

import (
	"sync"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// MockPublisher records published events for assertions. It satisfies
// service.EventPublisher structurally; importing the service package here
// would cycle back through the in-package service tests.
type MockPublisher struct {
	mu            sync.Mutex
	Notifications []*entity.Notification
	CircleEvents  map[string][]any
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{
		CircleEvents: make(map[string][]any),
	}
}

func (p *MockPublisher) PublishNotification(n *entity.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Notifications = append(p.Notifications, n)
}

func (p *MockPublisher) PublishCircleEvent(circleID string, event any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.CircleEvents[circleID] = append(p.CircleEvents[circleID], event)
}
