package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bookloop/bookloop-go/internal/config"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/recommend"
	"github.com/bookloop/bookloop-go/internal/security"
)

// ServiceModule provides service layer dependencies
var ServiceModule = fx.Module("service",
	fx.Provide(
		provideUserService,
		provideBookService,
		provideMembershipService,
		provideDiscussionService,
		provideTradeService,
		provideNotificationService,
		provideOptionsService,
		provideRecommendStrategy,
		provideRecommendService,
	),
)

func provideUserService(
	userRepo repository.UserRepository,
	passwordHasher *security.PasswordHasher,
	jwtProvider *security.JWTProvider,
) service.UserService {
	return service.NewUserService(userRepo, passwordHasher, jwtProvider)
}

func provideBookService(
	bookRepo repository.BookRepository,
	userRepo repository.UserRepository,
) service.BookService {
	return service.NewBookService(bookRepo, userRepo)
}

func provideMembershipService(
	circleRepo repository.CircleRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
	publisher service.EventPublisher,
	logger *zap.Logger,
) service.MembershipService {
	return service.NewMembershipService(circleRepo, userRepo, notificationRepo, publisher, logger)
}

func provideDiscussionService(
	circleRepo repository.CircleRepository,
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	notificationRepo repository.NotificationRepository,
	publisher service.EventPublisher,
	logger *zap.Logger,
) service.DiscussionService {
	return service.NewDiscussionService(circleRepo, postRepo, commentRepo, notificationRepo, publisher, logger)
}

func provideTradeService(
	tradeRepo repository.TradeRepository,
	notificationRepo repository.NotificationRepository,
	publisher service.EventPublisher,
	logger *zap.Logger,
) service.TradeService {
	return service.NewTradeService(tradeRepo, notificationRepo, publisher, logger)
}

func provideNotificationService(
	notificationRepo repository.NotificationRepository,
) service.NotificationService {
	return service.NewNotificationService(notificationRepo)
}

func provideOptionsService(
	optionsRepo repository.OptionsRepository,
	logger *zap.Logger,
) service.OptionsService {
	return service.NewOptionsService(optionsRepo, logger)
}

// provideRecommendStrategy returns the external recommender client, or nil
// when none is configured. The service falls back to the heuristic scorer.
func provideRecommendStrategy(cfg *config.RecommendConfig, logger *zap.Logger) recommend.Strategy {
	client := recommend.NewClient(cfg, logger)
	if !client.Enabled() {
		return nil
	}
	return client
}

func provideRecommendService(
	strategy recommend.Strategy,
	logger *zap.Logger,
) service.RecommendService {
	return service.NewRecommendService(strategy, logger)
}
