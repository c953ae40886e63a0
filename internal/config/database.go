package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"journey_compass/internal/models"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB
)

// InitDB initializes the database connection using environment variables and
// migrates the schema.
func InitDB() {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "compass")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	DB = db
}

// Migrate applies the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.PointOfInterest{},
		&models.Route{},
		&models.RoutePoint{},
		&models.Review{},
		&models.Favorite{},
		&models.RouteImage{},
		&models.UserPreference{},
		&models.ShareLink{},
	)
}

// SeedCategories inserts the reference category set if missing.
func SeedCategories(db *gorm.DB) error {
	categories := []models.Category{
		{Name: "Nature", Description: "Parks, trails and landscapes"},
		{Name: "History", Description: "Historic sites and monuments"},
		{Name: "Gastronomy", Description: "Food markets, restaurants and tastings"},
		{Name: "Adventure", Description: "Hiking, climbing and outdoor sport"},
		{Name: "Culture", Description: "Museums, galleries and theatres"},
		{Name: "Family", Description: "Stops suitable for children"},
		{Name: "Romantic", Description: "Quiet spots for two"},
		{Name: "Urban", Description: "City walks and architecture"},
	}
	for _, c := range categories {
		if err := db.Where(models.Category{Name: c.Name}).FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}
	return nil
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}
