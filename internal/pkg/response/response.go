package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a record or a list as the response body.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Message writes the {"msg": ...} body used for confirmations and lookup failures.
func Message(c *gin.Context, statusCode int, msg string) {
	c.JSON(statusCode, gin.H{"msg": msg})
}

// APIError is an application error that carries its own HTTP status.
// It is rendered as {"message": ..., "msg": ...} by middleware.APIErrors.
type APIError struct {
	Status  int
	Message string
	Payload map[string]interface{}
}

func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) ToMap() gin.H {
	body := gin.H{}
	for k, v := range e.Payload {
		body[k] = v
	}
	body["message"] = e.Message
	body["msg"] = e.Message
	return body
}

func BadRequest(message string) *APIError {
	return NewAPIError(http.StatusBadRequest, message)
}

func NotFound(message string) *APIError {
	return NewAPIError(http.StatusNotFound, message)
}

// Abort records err on the context and stops the handler chain.
func Abort(c *gin.Context, err *APIError) {
	_ = c.Error(err)
	c.Abort()
}

// AsAPIError reports whether err carries an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
