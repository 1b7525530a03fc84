package repository

import (
	"context"
	"fmt"

	"starwars/internal/domain"

	"gorm.io/gorm"
)

// PersonRepository handles person data access
type PersonRepository struct {
	db *gorm.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// ListAll returns every person.
func (r *PersonRepository) ListAll(ctx context.Context) ([]domain.Person, error) {
	var people []domain.Person
	if err := r.db.WithContext(ctx).Find(&people).Error; err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	return people, nil
}

// GetByID returns ErrNotFound when no person has the given id.
func (r *PersonRepository) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	var p domain.Person
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *PersonRepository) Create(ctx context.Context, p *domain.Person) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create person: %w", err)
	}
	return nil
}
