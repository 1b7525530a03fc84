package middleware

import (
	"net/http"
	"strings"

	jwtsvc "starwars/internal/pkg/jwt"
	"starwars/internal/pkg/logger"
	"starwars/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const UserIDKey = "user_id"

// CurrentUser puts the caller's user id on the context.
// Without a bearer token (or without a token service) the caller is defaultUserID.
func CurrentUser(tokens *jwtsvc.Service, defaultUserID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if tokens == nil || h == "" {
			c.Set(UserIDKey, defaultUserID)
			c.Next()
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.Abort(c, response.NewAPIError(http.StatusUnauthorized, "Cabecera Authorization inválida"))
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		claims, err := tokens.ValidateToken(tokenStr)
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Invalid token")
			response.Abort(c, response.NewAPIError(http.StatusUnauthorized, "Token inválido"))
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// UserID returns the caller id set by CurrentUser.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(UserIDKey)
}
