package handler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/domain/repository"
	"github.com/bookloop/bookloop-go/internal/domain/service"
)

// Job type identifiers
const (
	JobTypeNotificationCleanup = "notification.cleanup"
	JobTypeMemberReconcile     = "circle.reconcile_members"
)

// NotificationCleanupPayload is the payload for inbox cleanup jobs
type NotificationCleanupPayload struct {
	RetentionDays int  `json:"retention_days"`
	DryRun        bool `json:"dry_run"`
}

// MemberReconcilePayload is the payload for member-count reconciliation jobs.
// An empty CircleID reconciles every circle.
type MemberReconcilePayload struct {
	CircleID string `json:"circle_id,omitempty"`
}

// Handlers owns the background job implementations
type Handlers struct {
	notificationService service.NotificationService
	circleRepo          repository.CircleRepository
	logger              *zap.Logger
}

// NewHandlers creates the job handlers
func NewHandlers(
	notificationService service.NotificationService,
	circleRepo repository.CircleRepository,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		notificationService: notificationService,
		circleRepo:          circleRepo,
		logger:              logger,
	}
}

// RegisterAll registers every handler with the registry
func (h *Handlers) RegisterAll(r *Registry) {
	Register(r, JobTypeNotificationCleanup, h.CleanupNotifications)
	Register(r, JobTypeMemberReconcile, h.ReconcileMembers)
}

// CleanupNotifications deletes read notifications past the retention window
func (h *Handlers) CleanupNotifications(ctx context.Context, payload NotificationCleanupPayload) error {
	retention := time.Duration(payload.RetentionDays) * 24 * time.Hour
	if retention <= 0 {
		retention = 30 * 24 * time.Hour
	}

	if payload.DryRun {
		h.logger.Info("Notification cleanup dry run, skipping delete",
			zap.Int("retention_days", payload.RetentionDays),
		)
		return nil
	}

	removed, err := h.notificationService.PurgeRead(ctx, retention)
	if err != nil {
		return err
	}

	h.logger.Info("Purged read notifications",
		zap.Int64("removed", removed),
		zap.Duration("retention", retention),
	)
	return nil
}

// ReconcileMembers recomputes each circle's cached member counter from its
// members list. Counters drift when a leave races a join on the same circle.
func (h *Handlers) ReconcileMembers(ctx context.Context, payload MemberReconcilePayload) error {
	if payload.CircleID != "" {
		circle, err := h.circleRepo.GetByID(ctx, payload.CircleID)
		if err != nil {
			return err
		}
		if circle == nil {
			h.logger.Warn("Circle gone before reconcile", zap.String("circle_id", payload.CircleID))
			return nil
		}
		return h.reconcileOne(ctx, circle.ID, circle.MembersCount, len(circle.Members))
	}

	circles, err := h.circleRepo.List(ctx)
	if err != nil {
		return err
	}

	fixed := 0
	for _, circle := range circles {
		if circle.MembersCount == len(circle.Members) {
			continue
		}
		if err := h.reconcileOne(ctx, circle.ID, circle.MembersCount, len(circle.Members)); err != nil {
			return err
		}
		fixed++
	}

	h.logger.Info("Member count reconciliation finished",
		zap.Int("circles", len(circles)),
		zap.Int("fixed", fixed),
	)
	return nil
}

func (h *Handlers) reconcileOne(ctx context.Context, circleID string, cached, actual int) error {
	if cached == actual {
		return nil
	}
	if err := h.circleRepo.SetMembersCount(ctx, circleID, actual); err != nil {
		return err
	}
	h.logger.Info("Corrected member count",
		zap.String("circle_id", circleID),
		zap.Int("was", cached),
		zap.Int("now", actual),
	)
	return nil
}
