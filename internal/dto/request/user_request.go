// Package request contains the API request bodies.
package request

import "github.com/bookloop/bookloop-go/internal/domain/entity"

// SignupRequest is the body for creating an account.
type SignupRequest struct {
	Name          string              `json:"name" binding:"required"`
	Email         string              `json:"email" binding:"required,email"`
	Password      string              `json:"password" binding:"required,min=6"`
	Avatar        string              `json:"avatar"`
	Location      *entity.Location    `json:"location"`
	Bio           string              `json:"bio"`
	BooksOwned    []string            `json:"booksowned"`
	CirclesJoined []string            `json:"circlesjoined"`
	Preferences   *entity.Preferences `json:"preferences"`
}

// UpdateProfileRequest replaces the mutable profile fields wholesale.
type UpdateProfileRequest struct {
	Name        string              `json:"name"`
	Avatar      string              `json:"avatar"`
	Location    *entity.Location    `json:"location"`
	Bio         string              `json:"bio"`
	Preferences *entity.Preferences `json:"preferences"`
}
