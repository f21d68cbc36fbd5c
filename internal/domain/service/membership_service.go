package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
)

// MembershipService keeps user.circlesjoined and circle.members/memberscount
// mutually consistent across joins and leaves.
type MembershipService interface {
	// Join adds the user to the circle and notifies the existing members
	Join(ctx context.Context, circleID, userID string) error

	// Leave removes the user from the circle. A missing circle still clears
	// the user's reference to it.
	Leave(ctx context.Context, circleID, userID string) error
}

// membershipService implements MembershipService
type membershipService struct {
	circleRepo       repository.CircleRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	publisher        EventPublisher
	logger           *zap.Logger
}

// NewMembershipService creates a new MembershipService instance
func NewMembershipService(
	circleRepo repository.CircleRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	publisher EventPublisher,
	logger *zap.Logger,
) MembershipService {
	return &membershipService{
		circleRepo:       circleRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		logger:           logger,
	}
}

func (s *membershipService) Join(ctx context.Context, circleID, userID string) error {
	circle, err := s.circleRepo.GetByID(ctx, circleID)
	if err != nil {
		return err
	}
	if circle == nil {
		return ErrCircleNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if circle.HasMember(userID) || user.HasJoined(circleID) {
		return ErrAlreadyMember
	}

	// Member append and counter increment happen in a single update so the
	// counter cannot drift under concurrent joins.
	if err := s.circleRepo.AddMember(ctx, circleID, userID); err != nil {
		return err
	}
	if err := s.userRepo.AddJoinedCircle(ctx, userID, circleID); err != nil {
		return err
	}

	notifications := make([]*entity.Notification, 0, len(circle.Members))
	for _, memberID := range circle.Members {
		if memberID == userID {
			continue
		}
		notifications = append(notifications, &entity.Notification{
			UserID:    memberID,
			Type:      entity.NotificationCircle,
			Title:     "New Member Joined",
			Message:   fmt.Sprintf("%s joined %q", user.Name, circle.Name),
			ActionURL: "/circles",
			RelatedID: circleID,
		})
	}
	if len(notifications) > 0 {
		if err := s.notificationRepo.CreateMany(ctx, notifications); err != nil {
			return err
		}
		for _, n := range notifications {
			s.publisher.PublishNotification(n)
		}
	}

	s.logger.Info("user joined circle",
		zap.String("user_id", userID),
		zap.String("circle_id", circleID),
	)
	return nil
}

func (s *membershipService) Leave(ctx context.Context, circleID, userID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	// Removal is an unconditional set difference, so leaving a circle the
	// user never joined is a no-op rather than an error. It also runs when
	// the circle no longer exists, clearing orphaned references.
	if err := s.userRepo.RemoveJoinedCircle(ctx, userID, circleID); err != nil {
		return err
	}

	circle, err := s.circleRepo.GetByID(ctx, circleID)
	if err != nil {
		return err
	}
	if circle == nil {
		return nil
	}

	circle.RemoveMember(userID)
	count := circle.MembersCount - 1
	if count < 0 {
		count = 0
	}
	if err := s.circleRepo.SetMembership(ctx, circleID, circle.Members, count); err != nil {
		return err
	}

	s.logger.Info("user left circle",
		zap.String("user_id", userID),
		zap.String("circle_id", circleID),
	)
	return nil
}
