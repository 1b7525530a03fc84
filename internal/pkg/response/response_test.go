package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_ToMap(t *testing.T) {
	err := &APIError{
		Status:  http.StatusTeapot,
		Message: "no coffee",
		Payload: map[string]interface{}{"hint": "tea", "message": "overridden"},
	}

	body := err.ToMap()
	assert.Equal(t, "no coffee", body["message"])
	assert.Equal(t, "no coffee", body["msg"])
	assert.Equal(t, "tea", body["hint"])
	assert.Equal(t, "no coffee", err.Error())
}

func TestAsAPIError(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("gone"))

	apiErr, ok := AsAPIError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)

	_, ok = AsAPIError(errors.New("plain"))
	assert.False(t, ok)

	assert.Equal(t, http.StatusBadRequest, BadRequest("x").Status)
}
