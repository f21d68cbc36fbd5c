package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
)

// tradeDAO implements dao.TradeDAO using MongoDB.
type tradeDAO struct {
	*baseMongoDAO
}

// NewTradeDAO creates a new MongoDB-based TradeDAO.
func NewTradeDAO(db *mongo.Database) dao.TradeDAO {
	return &tradeDAO{
		baseMongoDAO: newBaseMongoDAO(db, "trades"),
	}
}

// Create inserts a new trade into MongoDB.
func (d *tradeDAO) Create(ctx context.Context, trade *entity.Trade) error {
	if trade.ID == "" {
		trade.ID = newID()
	}
	if trade.Status == "" {
		trade.Status = entity.TradePending
	}
	if trade.RequestDate.IsZero() {
		trade.RequestDate = time.Now()
	}
	return d.insertOne(ctx, trade)
}

// FindByID retrieves a trade by its public UUID.
func (d *tradeDAO) FindByID(ctx context.Context, id string) (*entity.Trade, error) {
	var trade entity.Trade
	err := d.findOneByFilter(ctx, byID(id), &trade)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trade, nil
}

// FindByUserID retrieves trades where the user is requester or owner.
func (d *tradeDAO) FindByUserID(ctx context.Context, userID string) ([]*entity.Trade, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"requesterId": userID},
			{"ownerId": userID},
		},
	}

	var trades []*entity.Trade
	if err := d.findManyByFilter(ctx, filter, options.Find(), &trades); err != nil {
		return nil, err
	}
	if trades == nil {
		trades = []*entity.Trade{}
	}
	return trades, nil
}

// UpdateStatus sets the trade status and returns the updated document, or nil
// when no trade matched.
func (d *tradeDAO) UpdateStatus(ctx context.Context, id string, status entity.TradeStatus) (*entity.Trade, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"status": status}}

	var trade entity.Trade
	err := d.collection.FindOneAndUpdate(ctx, byID(id), update, opts).Decode(&trade)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &trade, nil
}
