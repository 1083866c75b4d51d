package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all process-wide configuration. It is loaded once in main
// and passed into the components that need it.
type Config struct {
	Port string
	Env  string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	JWTSecret   string
	TokenExpiry time.Duration

	BrevoAPIKey  string
	SenderEmail  string
	SenderName   string
	ContactEmail string
	AppBaseURL   string
	EmailTimeout time.Duration

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	HideAssignedRequests bool
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load builds the configuration from the environment.
func Load() *Config {
	return &Config{
		Port: GetEnv("PORT", "3000"),
		Env:  GetEnv("ENV", "development"),

		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBUser:     GetEnv("DB_USER", "postgres"),
		DBPassword: GetEnv("DB_PASSWORD", "postgres"),
		DBName:     GetEnv("DB_NAME", "mynunny"),
		DBPort:     GetEnv("DB_PORT", "5432"),

		RedisHost:     GetEnv("REDIS_HOST", "localhost"),
		RedisPort:     GetEnv("REDIS_PORT", "6379"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetIntEnv("REDIS_DB", 0),

		JWTSecret:   GetEnv("JWT_SECRET", "change-this-in-production"),
		TokenExpiry: GetDurationEnv("TOKEN_EXPIRY", 7*24*time.Hour),

		BrevoAPIKey:  GetEnv("BREVO_API_KEY", ""),
		SenderEmail:  GetEnv("SENDER_EMAIL", "noreply@mynunny.com"),
		SenderName:   GetEnv("SENDER_NAME", "MyNunny"),
		ContactEmail: GetEnv("CONTACT_EMAIL", "support@mynunny.com"),
		AppBaseURL:   GetEnv("APP_BASE_URL", "http://localhost:3000"),
		EmailTimeout: GetDurationEnv("EMAIL_TIMEOUT", 8*time.Second),

		CloudinaryCloudName: GetEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    GetEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: GetEnv("CLOUDINARY_API_SECRET", ""),

		HideAssignedRequests: GetBoolEnv("HIDE_ASSIGNED_REQUESTS", true),
	}
}

// IsProduction checks if the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetBoolEnv returns a bool environment variable or a default value.
func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
