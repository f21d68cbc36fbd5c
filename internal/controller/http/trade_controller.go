package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/dto/request"
)

// TradeController handles trade request endpoints
type TradeController struct {
	tradeService service.TradeService
}

// NewTradeController creates a new TradeController instance
func NewTradeController(tradeService service.TradeService) *TradeController {
	return &TradeController{tradeService: tradeService}
}

// RegisterRoutes registers the trade routes
func (c *TradeController) RegisterRoutes(router *gin.RouterGroup) {
	trades := router.Group("/trades")
	{
		trades.GET("/user/:userId", c.GetByUserID)
		trades.POST("", c.Create)
		trades.PUT("/:id", c.UpdateStatus)
	}
}

// GetByUserID lists trades where the user is requester or owner
// @Summary List trades for user
// @Tags Trades
// @Success 200 {array} entity.Trade
// @Router /api/trades/user/{userId} [get]
func (c *TradeController) GetByUserID(ctx *gin.Context) {
	trades, err := c.tradeService.GetByUserID(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	if trades == nil {
		trades = []*entity.Trade{}
	}
	ctx.JSON(http.StatusOK, trades)
}

// Create opens a pending trade request
func (c *TradeController) Create(ctx *gin.Context) {
	var req request.CreateTradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	trade, err := c.tradeService.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, trade)
}

// UpdateStatus sets a trade's status
// @Summary Update trade status
// @Tags Trades
// @Success 200 {object} entity.Trade
// @Router /api/trades/{id} [put]
func (c *TradeController) UpdateStatus(ctx *gin.Context) {
	var req request.UpdateTradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	trade, err := c.tradeService.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, trade)
}
