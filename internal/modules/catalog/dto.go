package catalog

import (
	"starwars/internal/domain"
	"starwars/internal/modules/favorite"
)

// ---------- USERS ----------

type UserResponse struct {
	ID        int64                       `json:"id"`
	Email     string                      `json:"email"`
	Favorites []favorite.FavoriteResponse `json:"favorites"`
}

func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Favorites: favorite.ToFavoriteListResponse(u.Favorites),
	}
}

// ---------- PEOPLE ----------

type PersonResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ToPersonResponse(p domain.Person) PersonResponse {
	return PersonResponse{ID: p.ID, Name: p.Name}
}

// ---------- PLANETS ----------

type PlanetResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ToPlanetResponse(p domain.Planet) PlanetResponse {
	return PlanetResponse{ID: p.ID, Name: p.Name}
}

func toList[T, R any](items []T, convert func(T) R) []R {
	out := make([]R, len(items))
	for i, item := range items {
		out[i] = convert(item)
	}
	return out
}
