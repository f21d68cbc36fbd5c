package di

import (
	"go.uber.org/fx"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/repository"
	"github.com/bookloop/bookloop-go/internal/domain/repository/impl"
)

// RepositoryModule provides repository dependencies.
// Repositories delegate to the DAO layer for database operations.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		provideUserRepository,
		provideBookRepository,
		provideCircleRepository,
		providePostRepository,
		provideCommentRepository,
		provideTradeRepository,
		provideNotificationRepository,
		provideOptionsRepository,
	),
)

func provideUserRepository(userDAO dao.UserDAO) repository.UserRepository {
	return impl.NewUserRepository(userDAO)
}

func provideBookRepository(bookDAO dao.BookDAO) repository.BookRepository {
	return impl.NewBookRepository(bookDAO)
}

func provideCircleRepository(circleDAO dao.CircleDAO) repository.CircleRepository {
	return impl.NewCircleRepository(circleDAO)
}

func providePostRepository(postDAO dao.PostDAO) repository.PostRepository {
	return impl.NewPostRepository(postDAO)
}

func provideCommentRepository(commentDAO dao.CommentDAO) repository.CommentRepository {
	return impl.NewCommentRepository(commentDAO)
}

func provideTradeRepository(tradeDAO dao.TradeDAO) repository.TradeRepository {
	return impl.NewTradeRepository(tradeDAO)
}

func provideNotificationRepository(notificationDAO dao.NotificationDAO) repository.NotificationRepository {
	return impl.NewNotificationRepository(notificationDAO)
}

func provideOptionsRepository(optionsDAO dao.OptionsDAO) repository.OptionsRepository {
	return impl.NewOptionsRepository(optionsDAO)
}
