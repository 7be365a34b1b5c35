package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	SMTP     SMTPConfig
	Gateways GatewayConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	EmailTopic         string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

// GatewayConfig carries bootstrap credentials for payment adapters.
// Values stored through the admin settings take precedence; these are the
// environment fallback for fresh installs.
type GatewayConfig struct {
	Midtrans MidtransConfig
	Stripe   StripeConfig
	Razorpay RazorpayConfig
}

type MidtransConfig struct {
	Enabled   bool
	Mode      string
	ServerKey string
}

type StripeConfig struct {
	Enabled   bool
	Mode      string
	SecretKey string
}

type RazorpayConfig struct {
	Enabled   bool
	Mode      string
	KeyId     string
	KeySecret string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			EmailTopic:         getEnv("BILLING_EMAIL_TOPIC_NAME", "BILLING_EMAILS"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "WorkSuite"),
		},
		Gateways: GatewayConfig{
			Midtrans: MidtransConfig{
				Enabled:   getEnvAsBool("MIDTRANS_ENABLED", false),
				Mode:      getEnv("MIDTRANS_MODE", "sandbox"),
				ServerKey: getEnv("MIDTRANS_SERVER_KEY", ""),
			},
			Stripe: StripeConfig{
				Enabled:   getEnvAsBool("STRIPE_ENABLED", false),
				Mode:      getEnv("STRIPE_MODE", "sandbox"),
				SecretKey: getEnv("STRIPE_SECRET_KEY", ""),
			},
			Razorpay: RazorpayConfig{
				Enabled:   getEnvAsBool("RAZORPAY_ENABLED", false),
				Mode:      getEnv("RAZORPAY_MODE", "sandbox"),
				KeyId:     getEnv("RAZORPAY_KEY_ID", ""),
				KeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),
			},
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
