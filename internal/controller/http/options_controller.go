package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/dto/request"
	"github.com/bookloop/bookloop-go/internal/dto/response"
)

// OptionsController handles the global picker list endpoints
type OptionsController struct {
	optionsService service.OptionsService
}

// NewOptionsController creates a new OptionsController instance
func NewOptionsController(optionsService service.OptionsService) *OptionsController {
	return &OptionsController{optionsService: optionsService}
}

// RegisterRoutes registers the options routes
func (c *OptionsController) RegisterRoutes(router *gin.RouterGroup) {
	options := router.Group("/options")
	{
		options.GET("", c.Get)
		options.PUT("", c.Upsert)
	}
}

// Get returns the global genre, language and author lists
func (c *OptionsController) Get(ctx *gin.Context) {
	options, err := c.optionsService.Get(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := response.OptionsResponse{
		Genres:    options.Genres,
		Languages: options.Languages,
		Authors:   options.Authors,
	}
	if resp.Genres == nil {
		resp.Genres = []string{}
	}
	if resp.Languages == nil {
		resp.Languages = []string{}
	}
	if resp.Authors == nil {
		resp.Authors = []string{}
	}
	ctx.JSON(http.StatusOK, resp)
}

// Upsert replaces the global picker lists
func (c *OptionsController) Upsert(ctx *gin.Context) {
	var req request.UpsertOptionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	options, err := c.optionsService.Upsert(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, options)
}
