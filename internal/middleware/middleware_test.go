package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtsvc "starwars/internal/pkg/jwt"
	"starwars/internal/pkg/logger"
	"starwars/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Silence()
	r := gin.New()
	r.Use(handlers...)
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAPIErrorsRendersTypedError(t *testing.T) {
	r := newEngine(APIErrors())
	r.GET("/teapot", func(c *gin.Context) {
		response.Abort(c, response.NewAPIError(http.StatusTeapot, "soy una tetera"))
	})
	r.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.JSONEq(t, `{"message":"soy una tetera","msg":"soy una tetera"}`, rr.Body.String())

	rr = serve(r, httptest.NewRequest(http.MethodGet, "/plain", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"message":"boom"}`, rr.Body.String())
}

func TestAPIErrorsLeavesWrittenResponsesAlone(t *testing.T) {
	r := newEngine(APIErrors())
	r.GET("/written", func(c *gin.Context) {
		_ = c.Error(errors.New("logged only"))
		response.Message(c, http.StatusInternalServerError, "Error al guardar")
	})

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/written", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"msg":"Error al guardar"}`, rr.Body.String())
}

func TestErrorLoggerRecoversPanic(t *testing.T) {
	r := newEngine(ErrorLogger())
	r.GET("/panic", func(c *gin.Context) {
		panic("death star exploded")
	})

	rr := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body["message"])
}

func TestRequestIDPropagatesOrGenerates(t *testing.T) {
	r := newEngine(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(requestIDKey))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := serve(r, req)
	assert.Equal(t, "abc-123", rr.Body.String())
	assert.Equal(t, "abc-123", rr.Header().Get("X-Request-ID"))

	rr = serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rr.Body.String(), 36)
}

func TestCurrentUser(t *testing.T) {
	tokens := jwtsvc.New("test-secret", time.Hour)
	token, err := tokens.GenerateToken(3)
	require.NoError(t, err)

	whoami := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	}

	cases := []struct {
		name   string
		tokens *jwtsvc.Service
		header string
		status int
		body   string
	}{
		{name: "default caller", tokens: tokens, status: http.StatusOK, body: `{"user_id":1}`},
		{name: "bearer token", tokens: tokens, header: "Bearer " + token, status: http.StatusOK, body: `{"user_id":3}`},
		{name: "no token service ignores header", header: "Bearer whatever", status: http.StatusOK, body: `{"user_id":1}`},
		{name: "bad scheme", tokens: tokens, header: "Basic abc", status: http.StatusUnauthorized, body: `{"message":"Cabecera Authorization inválida","msg":"Cabecera Authorization inválida"}`},
		{name: "bad token", tokens: tokens, header: "Bearer junk", status: http.StatusUnauthorized, body: `{"message":"Token inválido","msg":"Token inválido"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newEngine(APIErrors(), CurrentUser(tc.tokens, 1))
			r.GET("/me", whoami)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := serve(r, req)
			assert.Equal(t, tc.status, rr.Code)
			assert.JSONEq(t, tc.body, rr.Body.String())
		})
	}
}

func TestCORSAllowList(t *testing.T) {
	r := newEngine(CORS([]string{"https://holonet.example"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://holonet.example")
	rr := serve(r, req)
	assert.Equal(t, "https://holonet.example", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://sith.example")
	rr = serve(r, req)
	assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
}
