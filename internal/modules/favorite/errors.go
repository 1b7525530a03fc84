package favorite

import "errors"

var (
	ErrAlreadyFavorite  = errors.New("already a favorite")
	ErrFavoriteNotFound = errors.New("favorite not found")
)
