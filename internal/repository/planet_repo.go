package repository

import (
	"context"
	"fmt"

	"starwars/internal/domain"

	"gorm.io/gorm"
)

// PlanetRepository handles planet data access
type PlanetRepository struct {
	db *gorm.DB
}

// NewPlanetRepository creates a new planet repository
func NewPlanetRepository(db *gorm.DB) *PlanetRepository {
	return &PlanetRepository{db: db}
}

// ListAll returns every planet.
func (r *PlanetRepository) ListAll(ctx context.Context) ([]domain.Planet, error) {
	var planets []domain.Planet
	if err := r.db.WithContext(ctx).Find(&planets).Error; err != nil {
		return nil, fmt.Errorf("failed to list planets: %w", err)
	}
	return planets, nil
}

// GetByID returns ErrNotFound when no planet has the given id.
func (r *PlanetRepository) GetByID(ctx context.Context, id int64) (*domain.Planet, error) {
	var p domain.Planet
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *PlanetRepository) Create(ctx context.Context, p *domain.Planet) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create planet: %w", err)
	}
	return nil
}
