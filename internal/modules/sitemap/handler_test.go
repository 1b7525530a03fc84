package sitemap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSitemapListsAllRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewHandler(router).RegisterRoutes(&router.RouterGroup)
	// registered after the sitemap on purpose
	router.GET("/planets", func(c *gin.Context) {})
	router.DELETE("/favorite/people/:peopleId", func(c *gin.Context) {})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Msg)
	assert.Equal(t, []Route{
		{Method: http.MethodGet, Path: "/"},
		{Method: http.MethodDelete, Path: "/favorite/people/:peopleId"},
		{Method: http.MethodGet, Path: "/planets"},
	}, body.Routes)
}
