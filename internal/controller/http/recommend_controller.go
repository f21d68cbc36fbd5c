package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/dto/request"
	"github.com/bookloop/bookloop-go/internal/dto/response"
)

// RecommendController handles recommendation endpoints
type RecommendController struct {
	recommendService service.RecommendService
}

// NewRecommendController creates a new RecommendController instance
func NewRecommendController(recommendService service.RecommendService) *RecommendController {
	return &RecommendController{recommendService: recommendService}
}

// RegisterRoutes registers the recommendation routes
func (c *RecommendController) RegisterRoutes(router *gin.RouterGroup) {
	recommend := router.Group("/recommend")
	{
		recommend.POST("/books", c.Books)
		recommend.POST("/circles", c.Circles)
	}
}

// Books ranks candidate books for a user
// @Summary Recommend books
// @Tags Recommendations
// @Success 200 {object} response.RecommendBooksResponse
// @Router /api/recommend/books [post]
func (c *RecommendController) Books(ctx *gin.Context) {
	var req request.RecommendBooksRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewMessage("user and books are required"))
		return
	}

	ids, err := c.recommendService.RecommendBooks(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	ctx.JSON(http.StatusOK, response.RecommendBooksResponse{BookIDs: ids})
}

// Circles ranks candidate circles for a user
// @Summary Recommend circles
// @Tags Recommendations
// @Success 200 {object} response.RecommendCirclesResponse
// @Router /api/recommend/circles [post]
func (c *RecommendController) Circles(ctx *gin.Context) {
	var req request.RecommendCirclesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewMessage("user and circles are required"))
		return
	}

	ids, err := c.recommendService.RecommendCircles(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	ctx.JSON(http.StatusOK, response.RecommendCirclesResponse{CircleIDs: ids})
}
