package favorite

import (
	"context"

	"starwars/internal/domain"
)

type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error)
	Find(ctx context.Context, userID int64, target domain.FavoriteTarget) (*domain.Favorite, error)
	Insert(ctx context.Context, f *domain.Favorite) error
	Delete(ctx context.Context, f *domain.Favorite) error
}
