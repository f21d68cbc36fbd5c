package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/dto/request"
	"github.com/bookloop/bookloop-go/internal/recommend"
	"github.com/bookloop/bookloop-go/pkg/errors"
)

// RecommendService ranks candidate books and circles for a user. The external
// recommender is consulted first; any failure or empty answer falls back to
// the heuristic scorer and is never surfaced to the caller.
type RecommendService interface {
	// RecommendBooks returns ranked book IDs for the user
	RecommendBooks(ctx context.Context, req *request.RecommendBooksRequest) ([]string, error)

	// RecommendCircles returns ranked circle IDs for the user
	RecommendCircles(ctx context.Context, req *request.RecommendCirclesRequest) ([]string, error)
}

// recommendService implements RecommendService
type recommendService struct {
	strategy recommend.Strategy
	logger   *zap.Logger
}

// NewRecommendService creates a new RecommendService instance. The strategy
// may be nil when no external recommender is configured.
func NewRecommendService(strategy recommend.Strategy, logger *zap.Logger) RecommendService {
	return &recommendService{
		strategy: strategy,
		logger:   logger,
	}
}

func (s *recommendService) RecommendBooks(ctx context.Context, req *request.RecommendBooksRequest) ([]string, error) {
	if req.User == nil || req.Books == nil {
		return nil, errors.ErrValidation.WithMessage("user and books are required")
	}

	if s.strategy != nil {
		ids, err := s.strategy.RecommendBooks(ctx, req.User, req.Books, req.TopK)
		if err == nil && len(ids) > 0 {
			return ids, nil
		}
		if err != nil {
			s.logger.Warn("external book recommendation failed, using fallback", zap.Error(err))
		}
	}

	return recommend.ScoreBooks(req.User, req.Books, req.TopK), nil
}

func (s *recommendService) RecommendCircles(ctx context.Context, req *request.RecommendCirclesRequest) ([]string, error) {
	if req.User == nil || req.Circles == nil {
		return nil, errors.ErrValidation.WithMessage("user and circles are required")
	}

	if s.strategy != nil {
		ids, err := s.strategy.RecommendCircles(ctx, req.User, req.Circles, req.TopK)
		if err == nil && len(ids) > 0 {
			return ids, nil
		}
		if err != nil {
			s.logger.Warn("external circle recommendation failed, using fallback", zap.Error(err))
		}
	}

	return recommend.ScoreCircles(req.User, req.Circles, req.TopK), nil
}
