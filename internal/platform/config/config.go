package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	AppBaseURL   string

	JWTSecret                string
	JWTIssuer                string
	AccessTokenExpiry        time.Duration
	RefreshTokenExpiry       time.Duration
	EmailConfirmTokenExpiry  time.Duration
	PasswordResetTokenExpiry time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	UserCacheTTL  time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string

	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	ContactCreateRate string
	LoginRate         string
	AvatarUpdateRate  string

	UserAgentBanPatterns []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("APP_BASE_URL", "http://localhost:8080")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "contacts-app")
	viper.SetDefault("ACCESS_TOKEN_EXPIRY", "15m")
	viper.SetDefault("REFRESH_TOKEN_EXPIRY", "168h")
	viper.SetDefault("EMAIL_CONFIRM_TOKEN_EXPIRY", "24h")
	viper.SetDefault("PASSWORD_RESET_TOKEN_EXPIRY", "1h")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("USER_CACHE_TTL", "5m")
	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "noreply@contacts-app.local")
	viper.SetDefault("CLOUDINARY_NAME", "")
	viper.SetDefault("CLOUDINARY_API_KEY", "")
	viper.SetDefault("CLOUDINARY_API_SECRET", "")
	viper.SetDefault("CONTACT_CREATE_RATE", "5-M")
	viper.SetDefault("LOGIN_RATE", "10-M")
	viper.SetDefault("AVATAR_UPDATE_RATE", "3-M")
	viper.SetDefault("USER_AGENT_BAN_PATTERNS", []string{"Googlebot", "Python-urllib"})

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.AppBaseURL = viper.GetString("APP_BASE_URL")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.AccessTokenExpiry = durationOrDefault("ACCESS_TOKEN_EXPIRY", 15*time.Minute)
	cfg.RefreshTokenExpiry = durationOrDefault("REFRESH_TOKEN_EXPIRY", 7*24*time.Hour)
	cfg.EmailConfirmTokenExpiry = durationOrDefault("EMAIL_CONFIRM_TOKEN_EXPIRY", 24*time.Hour)
	cfg.PasswordResetTokenExpiry = durationOrDefault("PASSWORD_RESET_TOKEN_EXPIRY", time.Hour)

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	cfg.UserCacheTTL = durationOrDefault("USER_CACHE_TTL", 5*time.Minute)

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUser = viper.GetString("SMTP_USER")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.MailFrom = viper.GetString("MAIL_FROM")
	if cfg.SMTPUser == "" {
		log.Println("Warning: SMTP_USER not set. Outgoing mail will be logged instead of sent.")
	}

	cfg.CloudinaryName = viper.GetString("CLOUDINARY_NAME")
	cfg.CloudinaryAPIKey = viper.GetString("CLOUDINARY_API_KEY")
	cfg.CloudinaryAPISecret = viper.GetString("CLOUDINARY_API_SECRET")
	if cfg.CloudinaryName == "" {
		log.Println("Warning: CLOUDINARY_NAME not set. Avatar upload will not function.")
	}

	cfg.ContactCreateRate = viper.GetString("CONTACT_CREATE_RATE")
	cfg.LoginRate = viper.GetString("LOGIN_RATE")
	cfg.AvatarUpdateRate = viper.GetString("AVATAR_UPDATE_RATE")

	cfg.UserAgentBanPatterns = viper.GetStringSlice("USER_AGENT_BAN_PATTERNS")

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
