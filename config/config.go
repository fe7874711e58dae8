package config

import (
	"log"
	"os"

	"github.com/AfanKulaglic/saraya-menu-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Log is the shared application logger
var Log *zap.Logger

// JWTSecret used to sign tokens, set in Init from env or fallback
var JWTSecret []byte

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Init loads .env (if present), builds the logger, and reads the JWT secret.
// Must run before InitDB.
func Init() {
	_ = godotenv.Load()

	var err error
	if getEnv("APP_ENV", "development") == "production" {
		Log, err = zap.NewProduction()
	} else {
		Log, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}

	JWTSecret = []byte(getEnv("JWT_SECRET", "saraya_menu_super_secret_2026"))
}

func InitDB() {
	dbPath := getEnv("DB_PATH", "saraya_menu.db")
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Venue{},
	)
	if err != nil {
		Log.Fatal("Failed to migrate database", zap.Error(err))
	}

	Log.Info("Database connected and migrated", zap.String("db_path", dbPath))
}
