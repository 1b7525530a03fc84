package server

import (
	"starwars/internal/middleware"
	"starwars/internal/modules/catalog"
	"starwars/internal/modules/favorite"
	"starwars/internal/modules/sitemap"
	jwtsvc "starwars/internal/pkg/jwt"
	"starwars/internal/pkg/response"
	"starwars/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const msgRouteNotFound = "Ruta no encontrada"

type Options struct {
	DB *gorm.DB
	// Tokens enables bearer-token identity. Nil means every caller is DefaultUserID.
	Tokens             *jwtsvc.Service
	DefaultUserID      int64
	CORSAllowedOrigins []string
}

// NewRouter wires repositories, handlers and middleware into a gin engine.
func NewRouter(opts Options) *gin.Engine {
	userRepo := repository.NewUserRepository(opts.DB)
	personRepo := repository.NewPersonRepository(opts.DB)
	planetRepo := repository.NewPlanetRepository(opts.DB)
	favoriteRepo := repository.NewFavoriteRepository(opts.DB)

	catalogHandler := catalog.NewHandler(userRepo, personRepo, planetRepo)

	favoriteService := favorite.NewService(favoriteRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	metrics := middleware.NewMetrics()

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(),
		metrics.Middleware(),
		middleware.CORS(opts.CORSAllowedOrigins),
		middleware.APIErrors(),
		middleware.CurrentUser(opts.Tokens, opts.DefaultUserID),
	)

	r.NoRoute(func(c *gin.Context) {
		response.Abort(c, response.NotFound(msgRouteNotFound))
	})

	root := &r.RouterGroup
	sitemap.NewHandler(r).RegisterRoutes(root)
	catalogHandler.RegisterRoutes(root)
	favoriteHandler.RegisterRoutes(root)
	r.GET("/metrics", metrics.Handler())

	return r
}
