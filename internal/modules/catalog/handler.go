package catalog

import (
	"errors"
	"net/http"

	"starwars/internal/pkg/response"
	"starwars/internal/pkg/validator"
	"starwars/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	msgPersonNotFound = "Personaje no encontrado"
	msgPlanetNotFound = "Planeta no encontrado"
	msgInvalidID      = "ID inválido"
)

// Handler serves the read-only users, people and planets endpoints.
type Handler struct {
	users   UserRepository
	people  PersonRepository
	planets PlanetRepository
}

// NewHandler creates a new catalog handler
func NewHandler(users UserRepository, people PersonRepository, planets PlanetRepository) *Handler {
	return &Handler{
		users:   users,
		people:  people,
		planets: planets,
	}
}

// RegisterRoutes registers catalog routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.GetUsers)

	rg.GET("/people", h.GetPeople)
	rg.GET("/people/:id", h.GetPersonByID)

	rg.GET("/planets", h.GetPlanets)
	rg.GET("/planets/:id", h.GetPlanetByID)
	rg.GET("/planet/:id", h.GetPlanetByID)
}

/* ---------- USERS ---------- */

// GetUsers handles GET /users
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, toList(users, ToUserResponse))
}

/* ---------- PEOPLE ---------- */

// GetPeople handles GET /people
func (h *Handler) GetPeople(c *gin.Context) {
	people, err := h.people.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, toList(people, ToPersonResponse))
}

// GetPersonByID handles GET /people/:id
func (h *Handler) GetPersonByID(c *gin.Context) {
	id, ok := validator.PathID(c.Param("id"))
	if !ok {
		response.Abort(c, response.BadRequest(msgInvalidID))
		return
	}

	person, err := h.people.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Message(c, http.StatusNotFound, msgPersonNotFound)
			return
		}
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, ToPersonResponse(*person))
}

/* ---------- PLANETS ---------- */

// GetPlanets handles GET /planets
func (h *Handler) GetPlanets(c *gin.Context) {
	planets, err := h.planets.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, toList(planets, ToPlanetResponse))
}

// GetPlanetByID handles GET /planets/:id and GET /planet/:id
func (h *Handler) GetPlanetByID(c *gin.Context) {
	id, ok := validator.PathID(c.Param("id"))
	if !ok {
		response.Abort(c, response.BadRequest(msgInvalidID))
		return
	}

	planet, err := h.planets.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Message(c, http.StatusNotFound, msgPlanetNotFound)
			return
		}
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, ToPlanetResponse(*planet))
}
