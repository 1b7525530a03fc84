package favorite

import (
	"errors"
	"net/http"

	"starwars/internal/domain"
	"starwars/internal/middleware"
	"starwars/internal/pkg/response"
	"starwars/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type messages struct {
	added   string
	removed string
}

var targetMessages = map[domain.TargetKind]messages{
	domain.TargetPlanet: {added: "Planeta favorito añadido", removed: "Planeta favorito eliminado"},
	domain.TargetPerson: {added: "Personaje favorito añadido", removed: "Personaje favorito eliminado"},
}

const (
	msgAlreadyFavorite  = "Ya es favorito"
	msgFavoriteNotFound = "Favorito no encontrado"
	msgInvalidID        = "ID inválido"
)

// Handler serves the current user's favorites.
type Handler struct {
	service *Service
}

// NewHandler creates a new favorite handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers favorite routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users/favorites", h.ListFavorites)

	favorite := rg.Group("/favorite")
	{
		favorite.POST("/planet/:planetId", h.AddFavorite(domain.TargetPlanet, "planetId"))
		favorite.POST("/people/:peopleId", h.AddFavorite(domain.TargetPerson, "peopleId"))
		favorite.DELETE("/planet/:planetId", h.RemoveFavorite(domain.TargetPlanet, "planetId"))
		favorite.DELETE("/people/:peopleId", h.RemoveFavorite(domain.TargetPerson, "peopleId"))
	}
}

// ListFavorites handles GET /users/favorites
func (h *Handler) ListFavorites(c *gin.Context) {
	userID := middleware.UserID(c)

	favorites, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, ToFavoriteListResponse(favorites))
}

// AddFavorite handles POST /favorite/planet/:planetId and POST /favorite/people/:peopleId.
// The returned handler links the current user to the target named by param.
func (h *Handler) AddFavorite(kind domain.TargetKind, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := validator.PathID(c.Param(param))
		if !ok {
			response.Abort(c, response.BadRequest(msgInvalidID))
			return
		}
		userID := middleware.UserID(c)

		_, err := h.service.Add(c.Request.Context(), userID, domain.FavoriteTarget{Kind: kind, ID: id})
		if err != nil {
			if errors.Is(err, ErrAlreadyFavorite) {
				response.Message(c, http.StatusBadRequest, msgAlreadyFavorite)
				return
			}
			_ = c.Error(err)
			response.Message(c, http.StatusInternalServerError, "Error al guardar el favorito: "+err.Error())
			return
		}

		response.Message(c, http.StatusCreated, targetMessages[kind].added)
	}
}

// RemoveFavorite handles DELETE /favorite/planet/:planetId and DELETE /favorite/people/:peopleId.
func (h *Handler) RemoveFavorite(kind domain.TargetKind, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := validator.PathID(c.Param(param))
		if !ok {
			response.Abort(c, response.BadRequest(msgInvalidID))
			return
		}
		userID := middleware.UserID(c)

		err := h.service.Remove(c.Request.Context(), userID, domain.FavoriteTarget{Kind: kind, ID: id})
		if err != nil {
			if errors.Is(err, ErrFavoriteNotFound) {
				response.Message(c, http.StatusNotFound, msgFavoriteNotFound)
				return
			}
			_ = c.Error(err)
			response.Message(c, http.StatusInternalServerError, "Error al eliminar el favorito: "+err.Error())
			return
		}

		response.Message(c, http.StatusOK, targetMessages[kind].removed)
	}
}
