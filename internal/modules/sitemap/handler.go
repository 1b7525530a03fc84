package sitemap

import (
	"net/http"
	"sort"

	"starwars/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const msgWelcome = "Bienvenido a la API de Star Wars"

// RouteLister is satisfied by *gin.Engine.
type RouteLister interface {
	Routes() gin.RoutesInfo
}

type Route struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// Response is the body of GET /.
type Response struct {
	Msg    string  `json:"msg"`
	Routes []Route `json:"routes"`
}

type Handler struct {
	routes RouteLister
}

// NewHandler creates a new sitemap handler
func NewHandler(routes RouteLister) *Handler {
	return &Handler{routes: routes}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.GetSitemap)
}

// GetSitemap lists every registered route. Routes are read per request, so
// routes added after this handler was registered are included.
func (h *Handler) GetSitemap(c *gin.Context) {
	info := h.routes.Routes()

	routes := make([]Route, 0, len(info))
	for _, r := range info {
		routes = append(routes, Route{Method: r.Method, Path: r.Path})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path != routes[j].Path {
			return routes[i].Path < routes[j].Path
		}
		return routes[i].Method < routes[j].Method
	})

	response.JSON(c, http.StatusOK, Response{Msg: msgWelcome, Routes: routes})
}
