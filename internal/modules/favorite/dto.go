package favorite

import "starwars/internal/domain"

// FavoriteResponse is the wire shape of a favorite. The unset target is null.
type FavoriteResponse struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	PeopleID *int64 `json:"people_id"`
	PlanetID *int64 `json:"planet_id"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}

func ToFavoriteResponse(f domain.Favorite) FavoriteResponse {
	resp := FavoriteResponse{ID: f.ID, UserID: f.UserID}
	if id, ok := f.Target.PersonID(); ok {
		resp.PeopleID = &id
	}
	if id, ok := f.Target.PlanetID(); ok {
		resp.PlanetID = &id
	}
	return resp
}

func ToFavoriteListResponse(favorites []domain.Favorite) []FavoriteResponse {
	items := make([]FavoriteResponse, len(favorites))
	for i, f := range favorites {
		items[i] = ToFavoriteResponse(f)
	}
	return items
}
