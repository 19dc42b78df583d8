package config

import (
	"log"
	"os"

	"mojamalca-api/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — set by Load from env or fallback
var JWTSecret []byte

// AppConfig holds everything read from the environment
type AppConfig struct {
	Port         string
	Env          string
	LogLevel     string
	DBPath       string
	ResendAPIKey string
	ContactFrom  string
	ContactTo    string
}

var App AppConfig

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads the .env file (optional) and populates App
func Load() {
	// .env is a convenience for local runs; absence is not an error
	_ = godotenv.Load()

	App = AppConfig{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DBPath:       getEnv("DB_PATH", "mojamalca.db"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		ContactFrom:  getEnv("CONTACT_FROM", "MojaMalca <noreply@mojamalca.si>"),
		ContactTo:    getEnv("CONTACT_TO", "prodaja@mojamalca.si"),
	}
	JWTSecret = []byte(getEnv("JWT_SECRET", "mojamalca_super_secret_2024"))
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(App.DBPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
}

// Migrate runs the schema migration for every model. Split out so tests
// can run it against their own in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Company{},
		&models.Employee{},
		&models.Admin{},
		&models.Menu{},
		&models.MenuOption{},
		&models.MenuCategory{},
		&models.MenuBaseItem{},
		&models.Order{},
		&models.OrderSelection{},
		&models.DeliveryMenuItem{},
	)
}
