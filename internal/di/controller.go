package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	graphqlctrl "github.com/bookloop/bookloop-go/internal/controller/graphql"
	httpctrl "github.com/bookloop/bookloop-go/internal/controller/http"
	"github.com/bookloop/bookloop-go/internal/domain/service"
)

// ControllerModule provides HTTP and GraphQL controller dependencies
var ControllerModule = fx.Module("controller",
	fx.Provide(
		provideUserController,
		provideBookController,
		provideCircleController,
		providePostController,
		provideTradeController,
		provideNotificationController,
		provideOptionsController,
		provideRecommendController,
		provideGraphQLResolver,
		provideGraphQLSchema,
		provideGraphQLHandler,
	),
)

func provideUserController(userService service.UserService) *httpctrl.UserController {
	return httpctrl.NewUserController(userService)
}

func provideBookController(bookService service.BookService) *httpctrl.BookController {
	return httpctrl.NewBookController(bookService)
}

func provideCircleController(
	discussionService service.DiscussionService,
	membershipService service.MembershipService,
) *httpctrl.CircleController {
	return httpctrl.NewCircleController(discussionService, membershipService)
}

func providePostController(discussionService service.DiscussionService) *httpctrl.PostController {
	return httpctrl.NewPostController(discussionService)
}

func provideTradeController(tradeService service.TradeService) *httpctrl.TradeController {
	return httpctrl.NewTradeController(tradeService)
}

func provideNotificationController(notificationService service.NotificationService) *httpctrl.NotificationController {
	return httpctrl.NewNotificationController(notificationService)
}

func provideOptionsController(optionsService service.OptionsService) *httpctrl.OptionsController {
	return httpctrl.NewOptionsController(optionsService)
}

func provideRecommendController(recommendService service.RecommendService) *httpctrl.RecommendController {
	return httpctrl.NewRecommendController(recommendService)
}

func provideGraphQLResolver(
	userService service.UserService,
	bookService service.BookService,
	discussionService service.DiscussionService,
	tradeService service.TradeService,
) *graphqlctrl.Resolver {
	return graphqlctrl.NewResolver(userService, bookService, discussionService, tradeService)
}

func provideGraphQLSchema(resolver *graphqlctrl.Resolver) (*graphqlctrl.Schema, error) {
	return graphqlctrl.BuildSchema(resolver)
}

func provideGraphQLHandler(schema *graphqlctrl.Schema, logger *zap.Logger) *graphqlctrl.Handler {
	return graphqlctrl.NewHandler(schema, graphqlctrl.DefaultGraphQLConfig(), logger)
}
