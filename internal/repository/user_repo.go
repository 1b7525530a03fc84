package repository

import (
	"context"
	"fmt"
	"strings"

	"starwars/internal/domain"
	"starwars/internal/pkg/validator"

	"gorm.io/gorm"
)

// UserRepository handles user data access
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// ListAll returns every user with its favorites attached.
func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		return users, nil
	}

	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	var rows []favoriteModel
	if err := r.db.WithContext(ctx).Where("user_id IN ?", ids).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}

	byUser := make(map[int64][]domain.Favorite, len(users))
	for _, row := range rows {
		byUser[row.UserID] = append(byUser[row.UserID], toDomainFavorite(row))
	}
	for i := range users {
		users[i].Favorites = byUser[users[i].ID]
	}
	return users, nil
}

// GetByID returns the user with its favorites, or ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err)
	}

	var rows []favoriteModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", id).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	for _, row := range rows {
		u.Favorites = append(u.Favorites, toDomainFavorite(row))
	}
	return &u, nil
}

// Create lowercases the email and validates u before inserting it.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	if errs := validator.Validate(u); errs != nil {
		return fmt.Errorf("invalid user: %v", errs)
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
