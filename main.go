// ABOUTME: Entry point for the BMI Platform server
// ABOUTME: Loads configuration, opens the database, and serves HTTP
package main

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/bmi-dev/bmi-platform/db"
	"github.com/bmi-dev/bmi-platform/web"
)

const version = "0.1.0"

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	dbPath := os.Getenv("BMI_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(xdg.DataHome, "bmi", "bmi.db")
	}

	port := os.Getenv("BMI_PORT")
	if port == "" {
		port = "5000"
	}

	if os.Getenv("BMI_DEBUG") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.OpenDatabase(dbPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", dbPath).Msg("failed to open database")
	}
	defer database.Close()

	router, err := web.NewRouter(database, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build router")
	}

	logger.Info().
		Str("version", version).
		Str("database", dbPath).
		Str("addr", ":"+port).
		Msg("starting BMI Platform")

	if err := router.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
