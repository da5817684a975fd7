package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/synergysphere/synergysphere-api/internal/constants"
	apierrors "github.com/synergysphere/synergysphere-api/internal/errors"
	"github.com/synergysphere/synergysphere-api/internal/token"
)

// RequireAuth extracts and verifies the bearer token, storing the claims for
// downstream handlers. Requests without a token get 401 "No token provided";
// invalid or expired tokens get 401 "Invalid token".
func RequireAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apierrors.Unauthorized(c, "No token provided")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyClaims, claims)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	return id, ok
}

// GetClaims retrieves the verified token claims from context
func GetClaims(c *gin.Context) (*token.Claims, bool) {
	value, exists := c.Get(constants.ContextKeyClaims)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*token.Claims)
	return claims, ok
}
