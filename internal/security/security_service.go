package security

import "github.com/gin-gonic/gin"

// claimsKey is the gin context key holding the authenticated user's claims.
const claimsKey = "user_claims"

// SecurityService bridges validated token claims and request context.
type SecurityService struct{}

// NewSecurityService creates a new SecurityService instance
func NewSecurityService() *SecurityService {
	return &SecurityService{}
}

// SetCurrentClaims stores the claims on the request context
func (s *SecurityService) SetCurrentClaims(c *gin.Context, claims *UserClaims) {
	c.Set(claimsKey, claims)
}

// GetCurrentClaims returns the claims for the current request, or nil
func (s *SecurityService) GetCurrentClaims(c *gin.Context) *UserClaims {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*UserClaims)
	if !ok {
		return nil
	}
	return claims
}

// CurrentUserID returns the authenticated user's ID, or "" when anonymous
func (s *SecurityService) CurrentUserID(c *gin.Context) string {
	claims := s.GetCurrentClaims(c)
	if claims == nil {
		return ""
	}
	return claims.UserID
}
