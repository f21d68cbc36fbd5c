package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/dto/request"
	"github.com/bookloop/bookloop-go/internal/dto/response"
)

// NotificationController handles notification inbox endpoints
type NotificationController struct {
	notificationService service.NotificationService
}

// NewNotificationController creates a new NotificationController instance
func NewNotificationController(notificationService service.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// RegisterRoutes registers the notification routes
func (c *NotificationController) RegisterRoutes(router *gin.RouterGroup) {
	notifications := router.Group("/notifications")
	{
		notifications.GET("", c.List)
		notifications.PUT("/:id/read", c.MarkRead)
		notifications.PUT("/mark-all-read", c.MarkAllRead)
		notifications.DELETE("/:id", c.Delete)
	}
}

// List returns the user's most recent notifications, newest first
// @Summary List notifications
// @Tags Notifications
// @Param userId query string true "User ID"
// @Success 200 {array} entity.Notification
// @Router /api/notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	userID := ctx.Query("userId")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, response.NewMessage("User ID is required"))
		return
	}

	notifications, err := c.notificationService.List(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if notifications == nil {
		notifications = []*entity.Notification{}
	}
	ctx.JSON(http.StatusOK, notifications)
}

// MarkRead marks one notification as read
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	if err := c.notificationService.MarkRead(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewMessage("Notification marked as read"))
}

// MarkAllRead marks all of a user's notifications as read
func (c *NotificationController) MarkAllRead(ctx *gin.Context) {
	var req request.MarkAllReadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewMessage("User ID is required"))
		return
	}

	if err := c.notificationService.MarkAllRead(ctx.Request.Context(), req.UserID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewMessage("All notifications marked as read"))
}

// Delete removes a notification
func (c *NotificationController) Delete(ctx *gin.Context) {
	if err := c.notificationService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewMessage("Notification deleted"))
}
