package main

import (
	"context"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"starwars/internal/config"
	"starwars/internal/database"
	"starwars/internal/domain"
	"starwars/internal/pkg/logger"
	"starwars/internal/repository"
)

func main() {
	_ = godotenv.Load()
	logger.Init("starwars-seed", true)

	cfg, err := config.Load()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("DB connection failed")
	}

	logger.Logger.Info().Msg("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		logger.Logger.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	// Cleanup old data (favorites first)
	logger.Logger.Info().Msg("Cleaning old data...")
	for _, table := range []string{"favorites", "people", "planets", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			logger.Logger.Fatal().Err(err).Str("table", table).Msg("cleanup failed")
		}
	}

	ctx := context.Background()
	seedUsers(ctx, db)
	seedPeople(ctx, db)
	seedPlanets(ctx, db)

	logger.Logger.Info().Msg("Seed complete")
}

func seedUsers(ctx context.Context, db *gorm.DB) {
	users := repository.NewUserRepository(db)
	for _, email := range []string{"luke@rebels.org", "leia@rebels.org", "han@falcon.io"} {
		hash, err := bcrypt.GenerateFromPassword([]byte("maytheforce"), bcrypt.DefaultCost)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("hash password")
		}
		u := domain.NewUser(email, string(hash))
		if err := users.Create(ctx, u); err != nil {
			logger.Logger.Fatal().Err(err).Str("email", email).Msg("create user")
		}
		logger.Logger.Info().Int64("id", u.ID).Str("email", email).Msg("User created")
	}
}

func seedPeople(ctx context.Context, db *gorm.DB) {
	people := repository.NewPersonRepository(db)
	for _, p := range []domain.Person{
		{Name: "Luke Skywalker", BirthYear: "19BBY", Gender: "male"},
		{Name: "C-3PO", BirthYear: "112BBY", Gender: "n/a"},
		{Name: "R2-D2", BirthYear: "33BBY", Gender: "n/a"},
		{Name: "Darth Vader", BirthYear: "41.9BBY", Gender: "male"},
		{Name: "Leia Organa", BirthYear: "19BBY", Gender: "female"},
	} {
		if err := people.Create(ctx, &p); err != nil {
			logger.Logger.Fatal().Err(err).Str("name", p.Name).Msg("create person")
		}
	}
	logger.Logger.Info().Msg("People created")
}

func seedPlanets(ctx context.Context, db *gorm.DB) {
	planets := repository.NewPlanetRepository(db)
	for _, p := range []domain.Planet{
		{Name: "Tatooine", Population: "200000"},
		{Name: "Alderaan", Population: "2000000000"},
		{Name: "Yavin IV", Population: "1000"},
		{Name: "Hoth", Population: "unknown"},
		{Name: "Dagobah", Population: "unknown"},
	} {
		if err := planets.Create(ctx, &p); err != nil {
			logger.Logger.Fatal().Err(err).Str("name", p.Name).Msg("create planet")
		}
	}
	logger.Logger.Info().Msg("Planets created")
}
