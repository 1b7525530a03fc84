package repository

import (
	"fmt"

	"starwars/internal/domain"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table the API reads and writes.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.User{},
		&domain.Person{},
		&domain.Planet{},
		&favoriteModel{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	return nil
}
