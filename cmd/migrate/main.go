package main

import (
	"fmt"
	"log"
	"os"

	"journey_compass/internal/config"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "compass-migrate",
	Short: "Schema and seed management for Journey Compass",
	Long: `compass-migrate applies the database schema and seeds reference data.

Examples:

  compass-migrate migrate
  compass-migrate seed
`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the schema for all models",
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		if err := config.Migrate(db); err != nil {
			color.Red("❌ Migration failed: %v", err)
			os.Exit(1)
		}
		color.Green("✅ Schema is up to date")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the reference category set",
	Run: func(cmd *cobra.Command, args []string) {
		db := openDB()
		if err := config.SeedCategories(db); err != nil {
			color.Red("❌ Seeding failed: %v", err)
			os.Exit(1)
		}
		color.Green("✅ Categories seeded")
	},
}

func openDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "postgres"),
		envOr("DB_PASSWORD", "password"),
		envOr("DB_NAME", "compass"),
		envOr("DB_PORT", "5432"),
		envOr("DB_SSLMODE", "disable"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		color.Red("❌ Database connection failed: %v", err)
		os.Exit(1)
	}
	return db
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}
