package service

import "github.com/bookloop/bookloop-go/pkg/errors"

// Service-level errors. Messages are the exact strings the API returns, and
// each carries the HTTP status the handlers map it to.
var (
	ErrUserNotFound         = errors.ErrNotFound.WithMessage("User not found")
	ErrCircleNotFound       = errors.ErrNotFound.WithMessage("Circle not found")
	ErrBookNotFound         = errors.ErrNotFound.WithMessage("Book not found")
	ErrPostNotFound         = errors.ErrNotFound.WithMessage("Post not found")
	ErrTradeNotFound        = errors.ErrNotFound.WithMessage("Trade not found")
	ErrNotificationNotFound = errors.ErrNotFound.WithMessage("Notification not found")
	ErrAlreadyMember        = errors.ErrAlreadyMember.WithMessage("Already a member")
	ErrInvalidCredentials   = errors.ErrNotFound.WithMessage("User not found or incorrect password")
	ErrEmailTaken           = errors.ErrValidation.WithMessage("Email already registered")
	ErrInvalidTradeStatus   = errors.ErrValidation.WithMessage("Invalid trade status")
	ErrInvalidTradeChange   = errors.ErrValidation.WithMessage("Invalid trade status transition")
)
