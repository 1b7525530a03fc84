package catalog

import (
	"context"

	"starwars/internal/domain"
)

type UserRepository interface {
	ListAll(ctx context.Context) ([]domain.User, error)
}

type PersonRepository interface {
	ListAll(ctx context.Context) ([]domain.Person, error)
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
}

type PlanetRepository interface {
	ListAll(ctx context.Context) ([]domain.Planet, error)
	GetByID(ctx context.Context, id int64) (*domain.Planet, error)
}
