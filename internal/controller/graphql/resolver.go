package graphql

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/bookloop/bookloop-go/internal/domain/service"
)

// Resolver handles GraphQL resolvers. The schema is query-only; all writes go
// through the REST surface.
type Resolver struct {
	userService       service.UserService
	bookService       service.BookService
	discussionService service.DiscussionService
	tradeService      service.TradeService
}

// NewResolver creates a new resolver
func NewResolver(
	userService service.UserService,
	bookService service.BookService,
	discussionService service.DiscussionService,
	tradeService service.TradeService,
) *Resolver {
	return &Resolver{
		userService:       userService,
		bookService:       bookService,
		discussionService: discussionService,
		tradeService:      tradeService,
	}
}

// Book returns a book by ID
func (r *Resolver) Book(p graphql.ResolveParams) (interface{}, error) {
	id, ok := p.Args["id"].(string)
	if !ok {
		return nil, errors.New("invalid book ID")
	}
	return r.bookService.GetByID(p.Context, id)
}

// Books returns all books
func (r *Resolver) Books(p graphql.ResolveParams) (interface{}, error) {
	return r.bookService.List(p.Context, nil)
}

// Circle returns a circle with its nested discussion feed
func (r *Resolver) Circle(p graphql.ResolveParams) (interface{}, error) {
	id, ok := p.Args["id"].(string)
	if !ok {
		return nil, errors.New("invalid circle ID")
	}
	return r.discussionService.GetCircle(p.Context, id)
}

// Circles returns all circles with their nested discussion feeds
func (r *Resolver) Circles(p graphql.ResolveParams) (interface{}, error) {
	return r.discussionService.ListCircles(p.Context)
}

// User returns a user by ID
func (r *Resolver) User(p graphql.ResolveParams) (interface{}, error) {
	id, ok := p.Args["id"].(string)
	if !ok {
		return nil, errors.New("invalid user ID")
	}
	return r.userService.GetByID(p.Context, id)
}

// Trades returns all trades involving the user
func (r *Resolver) Trades(p graphql.ResolveParams) (interface{}, error) {
	userID, ok := p.Args["userId"].(string)
	if !ok {
		return nil, errors.New("invalid user ID")
	}
	return r.tradeService.GetByUserID(p.Context, userID)
}
