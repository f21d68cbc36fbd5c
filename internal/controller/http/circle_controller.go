package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/dto/request"
	"github.com/bookloop/bookloop-go/internal/dto/response"
)

// CircleController handles reading circle and membership endpoints
type CircleController struct {
	discussionService service.DiscussionService
	membershipService service.MembershipService
}

// NewCircleController creates a new CircleController instance
func NewCircleController(
	discussionService service.DiscussionService,
	membershipService service.MembershipService,
) *CircleController {
	return &CircleController{
		discussionService: discussionService,
		membershipService: membershipService,
	}
}

// RegisterRoutes registers the circle routes
func (c *CircleController) RegisterRoutes(router *gin.RouterGroup) {
	circles := router.Group("/circles")
	{
		circles.GET("", c.List)
		circles.POST("", c.Create)
		circles.GET("/:id", c.GetByID)
		circles.POST("/:id/join", c.Join)
		circles.DELETE("/:id/leave", c.Leave)
		circles.POST("/:id/posts", c.CreatePost)
	}
	// Legacy alias kept for existing clients.
	router.POST("/addcircles", c.Create)
}

// List returns every circle with its nested posts and comments
// @Summary List circles
// @Tags Circles
// @Success 200 {array} response.CircleView
// @Router /api/circles [get]
func (c *CircleController) List(ctx *gin.Context) {
	circles, err := c.discussionService.ListCircles(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	if circles == nil {
		circles = []*response.CircleView{}
	}
	ctx.JSON(http.StatusOK, circles)
}

// GetByID returns one circle with its nested posts and comments
func (c *CircleController) GetByID(ctx *gin.Context) {
	circle, err := c.discussionService.GetCircle(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, circle)
}

// Create creates a reading circle
func (c *CircleController) Create(ctx *gin.Context) {
	var req request.CreateCircleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	circle, err := c.discussionService.CreateCircle(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, circle)
}

// Join adds the requesting user to the circle
// @Summary Join circle
// @Tags Circles
// @Success 200 {object} response.Message
// @Router /api/circles/{id}/join [post]
func (c *CircleController) Join(ctx *gin.Context) {
	var req request.MembershipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.membershipService.Join(ctx.Request.Context(), ctx.Param("id"), req.UserID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewMessage("Joined circle successfully"))
}

// Leave removes the requesting user from the circle
// @Summary Leave circle
// @Tags Circles
// @Success 200 {object} response.Message
// @Router /api/circles/{id}/leave [delete]
func (c *CircleController) Leave(ctx *gin.Context) {
	var req request.MembershipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	if err := c.membershipService.Leave(ctx.Request.Context(), ctx.Param("id"), req.UserID); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewMessage("Left circle !!"))
}

// CreatePost starts a discussion in the circle
func (c *CircleController) CreatePost(ctx *gin.Context) {
	var req request.CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	post, err := c.discussionService.CreatePost(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, post)
}
