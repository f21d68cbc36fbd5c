package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/dto/request"
)

// PostController handles post-level endpoints
type PostController struct {
	discussionService service.DiscussionService
}

// NewPostController creates a new PostController instance
func NewPostController(discussionService service.DiscussionService) *PostController {
	return &PostController{discussionService: discussionService}
}

// RegisterRoutes registers the post routes
func (c *PostController) RegisterRoutes(router *gin.RouterGroup) {
	posts := router.Group("/posts")
	{
		posts.POST("/:id/comments", c.CreateComment)
	}
}

// CreateComment adds a comment to a post
// @Summary Comment on post
// @Tags Posts
// @Success 201 {object} entity.Comment
// @Router /api/posts/{id}/comments [post]
func (c *PostController) CreateComment(ctx *gin.Context) {
	var req request.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	comment, err := c.discussionService.CreateComment(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}
