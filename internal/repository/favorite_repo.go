package repository

import (
	"context"
	"fmt"

	"starwars/internal/domain"

	"gorm.io/gorm"
)

// favoriteModel is the storage shape of a favorite: two nullable target columns,
// exactly one of them set, and at most one row per (user, target).
type favoriteModel struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	UserID   int64  `gorm:"column:user_id;not null;index;uniqueIndex:idx_favorites_user_people,where:people_id IS NOT NULL;uniqueIndex:idx_favorites_user_planet,where:planet_id IS NOT NULL"`
	PeopleID *int64 `gorm:"column:people_id;uniqueIndex:idx_favorites_user_people,where:people_id IS NOT NULL;check:chk_favorites_single_target,(people_id IS NULL) <> (planet_id IS NULL)"`
	PlanetID *int64 `gorm:"column:planet_id;uniqueIndex:idx_favorites_user_planet,where:planet_id IS NOT NULL"`
}

func (favoriteModel) TableName() string { return "favorites" }

func toDomainFavorite(m favoriteModel) domain.Favorite {
	f := domain.Favorite{ID: m.ID, UserID: m.UserID}
	switch {
	case m.PeopleID != nil:
		f.Target = domain.PersonTarget(*m.PeopleID)
	case m.PlanetID != nil:
		f.Target = domain.PlanetTarget(*m.PlanetID)
	}
	return f
}

func toFavoriteModel(f *domain.Favorite) favoriteModel {
	m := favoriteModel{ID: f.ID, UserID: f.UserID}
	if id, ok := f.Target.PersonID(); ok {
		m.PeopleID = &id
	}
	if id, ok := f.Target.PlanetID(); ok {
		m.PlanetID = &id
	}
	return m
}

// FavoriteRepository handles favorite data access
type FavoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// ListByUser returns the favorites of userID ordered by id.
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Favorite, error) {
	var rows []favoriteModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	favorites := make([]domain.Favorite, len(rows))
	for i, row := range rows {
		favorites[i] = toDomainFavorite(row)
	}
	return favorites, nil
}

// Find looks up the favorite of userID pointing at target. Returns ErrNotFound when absent.
func (r *FavoriteRepository) Find(ctx context.Context, userID int64, target domain.FavoriteTarget) (*domain.Favorite, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	switch target.Kind {
	case domain.TargetPerson:
		query = query.Where("people_id = ?", target.ID)
	case domain.TargetPlanet:
		query = query.Where("planet_id = ?", target.ID)
	default:
		return nil, fmt.Errorf("%w: kind %q", domain.ErrInvalidTarget, target.Kind)
	}

	var row favoriteModel
	if err := query.First(&row).Error; err != nil {
		return nil, notFound(err)
	}
	f := toDomainFavorite(row)
	return &f, nil
}

// Insert stores f in its own transaction. A second row for the same (user, target)
// is rejected by the unique indexes and reported as ErrDuplicateFavorite.
func (r *FavoriteRepository) Insert(ctx context.Context, f *domain.Favorite) error {
	if err := f.Target.Validate(); err != nil {
		return err
	}

	m := toFavoriteModel(f)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&m).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateFavorite
		}
		return fmt.Errorf("failed to insert favorite: %w", err)
	}

	f.ID = m.ID
	return nil
}

// Delete removes f in its own transaction. Returns ErrNotFound if the row is already gone.
func (r *FavoriteRepository) Delete(ctx context.Context, f *domain.Favorite) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&favoriteModel{}, f.ID)
		if res.Error != nil {
			return fmt.Errorf("failed to delete favorite: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
