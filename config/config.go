package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config berisi seluruh pengaturan aplikasi dari environment / .env.
type Config struct {
	AppEnv         string
	Port           string
	GeoJSONURL     string
	GeoJSONNameKey string
	FetchTimeout   time.Duration
	SpreadsheetURL string
	MaxUploadMB    int
	SessionTTL     time.Duration
	AliasesFile    string
	Location       *time.Location
	LogLevel       string
	DeltaMode      string
	CorsOrigins    string
	RateLimit      int
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Load membaca .env (bila ada) lalu environment. Bool kedua false bila
// .env tidak ditemukan.
func Load() (*Config, bool) {
	envLoaded := godotenv.Load() == nil

	loc, err := time.LoadLocation(GetEnv("TIMEZONE", "Asia/Jakarta"))
	if err != nil {
		loc = time.UTC
	}

	return &Config{
		AppEnv:         GetEnv("APP_ENV", "development"),
		Port:           GetEnv("PORT", "3000"),
		GeoJSONURL:     GetEnv("GEOJSON_URL", ""),
		GeoJSONNameKey: GetEnv("GEOJSON_NAME_KEY", "Nama Pelabuhan"),
		FetchTimeout:   time.Duration(GetEnvAsInt("FETCH_TIMEOUT_SECONDS", 10)) * time.Second,
		SpreadsheetURL: GetEnv("SPREADSHEET_URL", ""),
		MaxUploadMB:    GetEnvAsInt("MAX_UPLOAD_MB", 20),
		SessionTTL:     time.Duration(GetEnvAsInt("SESSION_TTL_MINUTES", 120)) * time.Minute,
		AliasesFile:    GetEnv("COLUMN_ALIASES_FILE", ""),
		Location:       loc,
		LogLevel:       GetEnv("LOG_LEVEL", ""),
		DeltaMode:      GetEnv("DELTA_MODE", "hire_month"),
		CorsOrigins:    GetEnv("CORS_ORIGINS", "*"),
		RateLimit:      GetEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
	}, envLoaded
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
