package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates the service settings read from the environment.
type Config struct {
	Port           string
	AllowedOrigins []string
	HTTPTimeout    time.Duration

	LogLevel  string
	LogFormat string // text|json

	StoreDriver  string // mongo|sqlite|memory
	MongoURI     string
	DBName       string
	SQLitePath   string
	StoreTimeout time.Duration

	JWTSecret string
	TokenTTL  time.Duration

	MailProvider   string // sendgrid|ses|log
	SendGridAPIKey string
	MailFrom       string
	MailFromName   string

	AWSRegion     string
	AWSBucketName string

	NutritionProvider string // apininjas|edamam
	APINinjasKey      string
	EdamamAppID       string
	EdamamAppKey      string

	GeminiAPIKey string
	GeminiModel  string
}

const (
	defaultPort         = "8080"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultStoreDriver  = "sqlite"
	defaultMongoURI     = "mongodb://localhost:27017/"
	defaultDBName       = "nutritrack"
	defaultSQLitePath   = "nutritrack.db"
	defaultStoreTimeout = 10 * time.Second
	defaultHTTPTimeout  = 10 * time.Second
	defaultTokenTTL     = 24 * time.Hour
	defaultMailProvider = "log"
	defaultMailFrom     = "no-reply@nutritrack.app"
	defaultMailFromName = "NutriTrack"
	defaultProvider     = "apininjas"
	defaultGeminiModel  = "gemini-1.5-flash"
)

// Load reads the .env file when present, then the environment, applying defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	cfg := &Config{
		Port:              valueOrDefault("PORT", defaultPort),
		AllowedOrigins:    splitCSV(os.Getenv("ALLOWED_ORIGINS")),
		LogLevel:          valueOrDefault("LOG_LEVEL", defaultLogLevel),
		LogFormat:         valueOrDefault("LOG_FORMAT", defaultLogFormat),
		StoreDriver:       valueOrDefault("STORE_DRIVER", defaultStoreDriver),
		MongoURI:          valueOrDefault("MONGO_URI", defaultMongoURI),
		DBName:            valueOrDefault("DB_NAME", defaultDBName),
		SQLitePath:        valueOrDefault("SQLITE_PATH", defaultSQLitePath),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		MailProvider:      valueOrDefault("MAIL_PROVIDER", defaultMailProvider),
		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		MailFrom:          valueOrDefault("MAIL_FROM", defaultMailFrom),
		MailFromName:      valueOrDefault("MAIL_FROM_NAME", defaultMailFromName),
		AWSRegion:         os.Getenv("AWS_REGION"),
		AWSBucketName:     os.Getenv("AWS_BUCKET_NAME"),
		NutritionProvider: valueOrDefault("NUTRITION_PROVIDER", defaultProvider),
		APINinjasKey:      os.Getenv("API_NINJAS_KEY"),
		EdamamAppID:       os.Getenv("EDAMAM_APP_ID"),
		EdamamAppKey:      os.Getenv("EDAMAM_APP_KEY"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       valueOrDefault("GEMINI_MODEL", defaultGeminiModel),
	}

	var err error
	if cfg.StoreTimeout, err = parseDuration("STORE_TIMEOUT", defaultStoreTimeout); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = parseDuration("HTTP_TIMEOUT", defaultHTTPTimeout); err != nil {
		return nil, err
	}
	if cfg.TokenTTL, err = parseDuration("TOKEN_TTL", defaultTokenTTL); err != nil {
		return nil, err
	}

	if port, err := strconv.Atoi(cfg.Port); err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT value %q", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s value %q: must be positive", key, v)
	}
	return d, nil
}

func splitCSV(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
