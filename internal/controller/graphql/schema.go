package graphql

import (
	"github.com/graphql-go/graphql"
)

// Schema represents the GraphQL schema
type Schema struct {
	schema graphql.Schema
}

// BuildSchema builds the read-only query schema
func BuildSchema(resolver *Resolver) (*Schema, error) {
	locationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Location",
		Fields: graphql.Fields{
			"city":    &graphql.Field{Type: graphql.String},
			"state":   &graphql.Field{Type: graphql.String},
			"country": &graphql.Field{Type: graphql.String},
		},
	})

	bookType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Book",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"author":      &graphql.Field{Type: graphql.String},
			"genre":       &graphql.Field{Type: graphql.String},
			"language":    &graphql.Field{Type: graphql.String},
			"ownerId":     &graphql.Field{Type: graphql.String},
			"ownerName":   &graphql.Field{Type: graphql.String},
			"available":   &graphql.Field{Type: graphql.Boolean},
			"rating":      &graphql.Field{Type: graphql.Float},
			"reviews":     &graphql.Field{Type: graphql.Int},
			"description": &graphql.Field{Type: graphql.String},
			"cover":       &graphql.Field{Type: graphql.String},
			"condition":   &graphql.Field{Type: graphql.String},
			"isForSale":   &graphql.Field{Type: graphql.Boolean},
			"price":       &graphql.Field{Type: graphql.Float},
			"location":    &graphql.Field{Type: locationType},
		},
	})

	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":          &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"avatar":        &graphql.Field{Type: graphql.String},
			"bio":           &graphql.Field{Type: graphql.String},
			"location":      &graphql.Field{Type: locationType},
			"booksowned":    &graphql.Field{Type: graphql.NewList(graphql.String)},
			"circlesjoined": &graphql.Field{Type: graphql.NewList(graphql.String)},
			"favorites":     &graphql.Field{Type: graphql.NewList(graphql.String)},
		},
	})

	commentType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Comment",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"authorName": &graphql.Field{Type: graphql.String},
			"content":    &graphql.Field{Type: graphql.String},
		},
	})

	postType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"authorName": &graphql.Field{Type: graphql.String},
			"content":    &graphql.Field{Type: graphql.String},
			"comments":   &graphql.Field{Type: graphql.NewList(commentType)},
		},
	})

	circleType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Circle",
		Fields: graphql.Fields{
			"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":         &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description":  &graphql.Field{Type: graphql.String},
			"members":      &graphql.Field{Type: graphql.NewList(graphql.String)},
			"memberscount": &graphql.Field{Type: graphql.Int},
			"currentbook":  &graphql.Field{Type: graphql.String},
			"privacy":      &graphql.Field{Type: graphql.String},
			"posts":        &graphql.Field{Type: graphql.NewList(postType)},
		},
	})

	tradeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Trade",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"bookId":        &graphql.Field{Type: graphql.String},
			"bookTitle":     &graphql.Field{Type: graphql.String},
			"requesterId":   &graphql.Field{Type: graphql.String},
			"requesterName": &graphql.Field{Type: graphql.String},
			"ownerId":       &graphql.Field{Type: graphql.String},
			"ownerName":     &graphql.Field{Type: graphql.String},
			"status":        &graphql.Field{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"book": &graphql.Field{
				Type:        bookType,
				Description: "Get a book by ID",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
				},
				Resolve: resolver.Book,
			},
			"books": &graphql.Field{
				Type:        graphql.NewList(bookType),
				Description: "List all books",
				Resolve:     resolver.Books,
			},
			"circle": &graphql.Field{
				Type:        circleType,
				Description: "Get a circle with its discussion feed",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
				},
				Resolve: resolver.Circle,
			},
			"circles": &graphql.Field{
				Type:        graphql.NewList(circleType),
				Description: "List all circles with their discussion feeds",
				Resolve:     resolver.Circles,
			},
			"user": &graphql.Field{
				Type:        userType,
				Description: "Get a user by ID",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
				},
				Resolve: resolver.User,
			},
			"trades": &graphql.Field{
				Type:        graphql.NewList(tradeType),
				Description: "List trades where the user is requester or owner",
				Args: graphql.FieldConfigArgument{
					"userId": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.ID),
					},
				},
				Resolve: resolver.Trades,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
	if err != nil {
		return nil, err
	}

	return &Schema{schema: schema}, nil
}

// Schema returns the graphql.Schema
func (s *Schema) Schema() graphql.Schema {
	return s.schema
}
