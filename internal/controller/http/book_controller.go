package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookloop/bookloop-go/internal/domain/dao"
	"github.com/bookloop/bookloop-go/internal/domain/entity"
	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/dto/response"
)

// defaultRadiusKm applies when a location filter omits the radius.
const defaultRadiusKm = 50

// BookController handles book catalog endpoints
type BookController struct {
	bookService service.BookService
}

// NewBookController creates a new BookController instance
func NewBookController(bookService service.BookService) *BookController {
	return &BookController{bookService: bookService}
}

// RegisterRoutes registers the book routes
func (c *BookController) RegisterRoutes(router *gin.RouterGroup) {
	books := router.Group("/books")
	{
		books.GET("", c.List)
		books.POST("", c.Create)
		books.GET("/:id", c.GetByID)
		books.PUT("/:id", c.Update)
		books.DELETE("/:id", c.Delete)
	}
	// Legacy alias kept for existing clients.
	router.POST("/addbook", c.Create)
}

// List retrieves all books, optionally near a point
// @Summary List books
// @Tags Books
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Param radius query number false "Radius in km" default(50)
// @Success 200 {array} entity.Book
// @Router /api/books [get]
func (c *BookController) List(ctx *gin.Context) {
	geo, err := parseGeoFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, response.NewMessage("Invalid location parameters"))
		return
	}

	books, err := c.bookService.List(ctx.Request.Context(), geo)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if books == nil {
		books = []*entity.Book{}
	}
	ctx.JSON(http.StatusOK, books)
}

// GetByID retrieves a book
func (c *BookController) GetByID(ctx *gin.Context) {
	book, err := c.bookService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, book)
}

// Create lists a new book
// @Summary Add book
// @Tags Books
// @Success 201 {object} entity.Book
// @Router /api/books [post]
func (c *BookController) Create(ctx *gin.Context) {
	var book entity.Book
	if err := ctx.ShouldBindJSON(&book); err != nil {
		respondBindError(ctx, err)
		return
	}

	created, err := c.bookService.Create(ctx.Request.Context(), &book)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// Update overwrites a book's fields
func (c *BookController) Update(ctx *gin.Context) {
	var book entity.Book
	if err := ctx.ShouldBindJSON(&book); err != nil {
		respondBindError(ctx, err)
		return
	}

	updated, err := c.bookService.Update(ctx.Request.Context(), ctx.Param("id"), &book)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// Delete removes a book listing
func (c *BookController) Delete(ctx *gin.Context) {
	if err := c.bookService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewMessage("Book deleted"))
}

// parseGeoFilter builds the proximity filter from query parameters. Both lat
// and lng must be present for the filter to apply.
func parseGeoFilter(ctx *gin.Context) (*dao.GeoFilter, error) {
	latStr := ctx.Query("lat")
	lngStr := ctx.Query("lng")
	if latStr == "" || lngStr == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, err
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, err
	}

	radius := float64(defaultRadiusKm)
	if radiusStr := ctx.Query("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return nil, err
		}
	}

	return &dao.GeoFilter{Lat: lat, Lng: lng, Radius: radius}, nil
}
