package favorite

import (
	"context"
	"errors"
	"fmt"

	"starwars/internal/domain"
	"starwars/internal/repository"
)

// Service applies the favorite rules on top of FavoriteRepository.
type Service struct {
	favorites FavoriteRepository
}

// NewService creates a new favorite service
func NewService(favorites FavoriteRepository) *Service {
	return &Service{favorites: favorites}
}

// List returns the favorites of userID ordered by id.
func (s *Service) List(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	return s.favorites.ListByUser(ctx, userID)
}

// Add creates the favorite (userID, target). The referenced person or planet is not
// required to exist.
func (s *Service) Add(ctx context.Context, userID int64, target domain.FavoriteTarget) (*domain.Favorite, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.favorites.Find(ctx, userID, target)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("lookup favorite %s: %w", target, err)
	}
	if existing != nil {
		return nil, ErrAlreadyFavorite
	}

	fav := &domain.Favorite{UserID: userID, Target: target}
	if err := s.favorites.Insert(ctx, fav); err != nil {
		// lost a race with a concurrent request for the same target
		if errors.Is(err, repository.ErrDuplicateFavorite) {
			return nil, ErrAlreadyFavorite
		}
		return nil, err
	}
	return fav, nil
}

// Remove deletes the favorite (userID, target). Returns ErrFavoriteNotFound when
// there is nothing to delete.
func (s *Service) Remove(ctx context.Context, userID int64, target domain.FavoriteTarget) error {
	if err := target.Validate(); err != nil {
		return err
	}

	fav, err := s.favorites.Find(ctx, userID, target)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrFavoriteNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup favorite %s: %w", target, err)
	}

	if err := s.favorites.Delete(ctx, fav); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrFavoriteNotFound
		}
		return err
	}
	return nil
}
