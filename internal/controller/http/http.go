// Package http contains the Gin controllers for the REST API.
//
// Wire format: list endpoints return bare JSON arrays, single-entity
// endpoints return the entity, and every error body is {"message": "..."}.
package http

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookloop/bookloop-go/internal/dto/response"
	"github.com/bookloop/bookloop-go/pkg/errors"
)

// msgServerError is the catch-all body for unexpected failures.
const msgServerError = "Server error"

// respondError maps a service error onto the wire. Application errors carry
// their own status and message; anything else is a 500.
func respondError(ctx *gin.Context, err error) {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		ctx.JSON(appErr.Status, response.NewMessage(appErr.Message))
		return
	}
	ctx.JSON(http.StatusInternalServerError, response.NewMessage(msgServerError))
}

// respondBindError reports a malformed or incomplete request body.
func respondBindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, response.NewMessage(err.Error()))
}
