package di

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	mongodao "github.com/bookloop/bookloop-go/internal/domain/dao/mongo"
)

// DAOModule provides DAO dependencies backed by MongoDB
var DAOModule = fx.Module("dao",
	fx.Provide(
		provideUserDAO,
		provideBookDAO,
		provideCircleDAO,
		providePostDAO,
		provideCommentDAO,
		provideTradeDAO,
		provideNotificationDAO,
		provideOptionsDAO,
	),
)

func provideUserDAO(db *mongo.Database) dao.UserDAO {
	return mongodao.NewUserDAO(db)
}

func provideBookDAO(db *mongo.Database) dao.BookDAO {
	return mongodao.NewBookDAO(db)
}

func provideCircleDAO(db *mongo.Database) dao.CircleDAO {
	return mongodao.NewCircleDAO(db)
}

func providePostDAO(db *mongo.Database) dao.PostDAO {
	return mongodao.NewPostDAO(db)
}

func provideCommentDAO(db *mongo.Database) dao.CommentDAO {
	return mongodao.NewCommentDAO(db)
}

func provideTradeDAO(db *mongo.Database) dao.TradeDAO {
	return mongodao.NewTradeDAO(db)
}

func provideNotificationDAO(db *mongo.Database) dao.NotificationDAO {
	return mongodao.NewNotificationDAO(db)
}

func provideOptionsDAO(db *mongo.Database) dao.OptionsDAO {
	return mongodao.NewOptionsDAO(db)
}
