package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookloop/bookloop-go/internal/domain/service"
	"github.com/bookloop/bookloop-go/internal/dto/request"
	"github.com/bookloop/bookloop-go/internal/dto/response"
)

// UserController handles account, profile and favorites endpoints
type UserController struct {
	userService service.UserService
}

// NewUserController creates a new UserController instance
func NewUserController(userService service.UserService) *UserController {
	return &UserController{userService: userService}
}

// RegisterRoutes registers the user routes
func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/signup", c.Signup)
		users.GET("/login", c.Login)
		users.GET("/:id", c.GetByID)
		users.PUT("/:id/profile", c.UpdateProfile)
		users.GET("/:id/favorites", c.GetFavorites)
		users.POST("/:id/favorites/:bookId", c.AddFavorite)
		users.DELETE("/:id/favorites/:bookId", c.RemoveFavorite)
	}
}

// Signup creates a new user account
// @Summary Sign up
// @Tags Users
// @Success 201 {object} entity.User
// @Router /api/users/signup [post]
func (c *UserController) Signup(ctx *gin.Context) {
	var req request.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	user, err := c.userService.Signup(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

// Login verifies credentials passed as query parameters
// @Summary Log in
// @Tags Users
// @Success 200 {object} response.LoginResponse
// @Router /api/users/login [get]
func (c *UserController) Login(ctx *gin.Context) {
	email := ctx.Query("email")
	password := ctx.Query("password")

	result, err := c.userService.Login(ctx.Request.Context(), email, password)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetByID retrieves a user
// @Summary Get user
// @Tags Users
// @Success 200 {object} entity.User
// @Router /api/users/{id} [get]
func (c *UserController) GetByID(ctx *gin.Context) {
	user, err := c.userService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateProfile replaces the user's profile fields
// @Summary Update profile
// @Tags Users
// @Success 200 {object} entity.User
// @Router /api/users/{id}/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req request.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBindError(ctx, err)
		return
	}

	user, err := c.userService.UpdateProfile(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// GetFavorites lists the user's favorite book IDs
func (c *UserController) GetFavorites(ctx *gin.Context) {
	favorites, err := c.userService.GetFavorites(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.FavoritesResponse{Favorites: favorites})
}

// AddFavorite adds a book to the user's favorites
func (c *UserController) AddFavorite(ctx *gin.Context) {
	favorites, err := c.userService.AddFavorite(ctx.Request.Context(), ctx.Param("id"), ctx.Param("bookId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.FavoritesResponse{Favorites: favorites})
}

// RemoveFavorite removes a book from the user's favorites
func (c *UserController) RemoveFavorite(ctx *gin.Context) {
	favorites, err := c.userService.RemoveFavorite(ctx.Request.Context(), ctx.Param("id"), ctx.Param("bookId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.FavoritesResponse{Favorites: favorites})
}
