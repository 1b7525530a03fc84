package middleware

import (
	"net/http"

	"starwars/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// APIErrors renders errors attached with c.Error once the handler chain returns.
// An *response.APIError becomes {"message": ..., "msg": ...} with its own status; anything else is a 500.
func APIErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		if apiErr, ok := response.AsAPIError(last.Err); ok {
			c.JSON(apiErr.Status, apiErr.ToMap())
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"message": last.Error()})
	}
}
