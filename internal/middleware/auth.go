package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bookloop/bookloop-go/internal/dto/response"
	"github.com/bookloop/bookloop-go/internal/security"
)

// AuthMiddleware provides authentication middleware
type AuthMiddleware struct {
	jwtProvider     *security.JWTProvider
	securityService *security.SecurityService
}

// NewAuthMiddleware creates a new AuthMiddleware instance
func NewAuthMiddleware(jwtProvider *security.JWTProvider, securityService *security.SecurityService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtProvider:     jwtProvider,
		securityService: securityService,
	}
}

// Authenticate validates the JWT token and sets the claims in context
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.JSON(http.StatusBadRequest, response.NewMessage("Authorization header required"))
			c.Abort()
			return
		}

		claims, err := m.jwtProvider.ValidateAccessToken(tokenString)
		if err != nil {
			switch err {
			case security.ErrExpiredToken:
				c.JSON(http.StatusBadRequest, response.NewMessage("Token has expired"))
			default:
				c.JSON(http.StatusBadRequest, response.NewMessage("Invalid token"))
			}
			c.Abort()
			return
		}

		m.securityService.SetCurrentClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth validates the JWT token if present but doesn't require it
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := m.jwtProvider.ValidateAccessToken(tokenString)
		if err == nil {
			m.securityService.SetCurrentClaims(c, claims)
		}

		c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer" header.
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
