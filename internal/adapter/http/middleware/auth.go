package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/WinchoCode/Qpurpuse-API/internal/core/ports"
	"github.com/WinchoCode/Qpurpuse-API/pkg/apierrors"
)

const contextUserIDKey = "user_id"

// AuthMiddleware verifies the bearer token and stores the caller's user id
// in the request context. It never touches the database; handlers receive
// the resolved identity only.
func AuthMiddleware(tokenService ports.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingToken, lang),
			)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
			)
			return
		}

		claims, err := tokenService.Validate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
			)
			return
		}

		c.Set(contextUserIDKey, claims.UserID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(contextUserIDKey)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint64)
	return userID, ok
}
