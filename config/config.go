package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port       string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTKey     string
	BcryptCost int

	// Static API keys granting root access
	APIKeys []string

	// Cloud mailer relay
	MailerURL      string
	MailerKey      string
	MailerHostType string
	SMTPHost       string
	MailerUsername string
	MailerPassword string
	FromEmail      string

	// Payment gateway transaction-verification endpoints
	PaystackVerifyURL string
	SquadVerifyURL    string

	// Asset host
	ClouderURL string
	ClouderKey string

	PrimaryDomain string

	// Processing payments older than this many days are auto-cancelled
	StalePaymentDays int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:       getEnv("PORT", "3000"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "academy"),
		DBPort:     getEnv("DB_PORT", "5432"),

		JWTKey:     getEnv("JWT_SECRET_KEY", "defaultSecret"),
		BcryptCost: getEnvInt("BCRYPT_COST", 10),

		APIKeys: splitKeys(getEnv("API_KEYS", "")),

		MailerURL:      getEnv("MAILER_URL", "https://api.mailer.xnyder.com"),
		MailerKey:      getEnv("MAILER_ACCESS_KEY", ""),
		MailerHostType: getEnv("MAILER_HOST_TYPE", ""),
		SMTPHost:       getEnv("SMTP_HOST", ""),
		MailerUsername: getEnv("MAILER_USERNAME", ""),
		MailerPassword: getEnv("MAILER_PASSWORD", ""),
		FromEmail:      getEnv("FROM_EMAIL", ""),

		PaystackVerifyURL: getEnv("PAYSTACK_VERIFY_URL", "https://api.paystack.co/transaction/verify/"),
		SquadVerifyURL:    getEnv("SQUAD_VERIFY_URL", "https://sandbox-api-d.squadco.com/transaction/verify/"),

		ClouderURL: getEnv("CLOUDER_URL", "https://api.clouder.xnyder.com"),
		ClouderKey: getEnv("CLOUDER_ACCESS_KEY", ""),

		PrimaryDomain: getEnv("PRIMARY_DOMAIN", "https://academy.example.com"),

		StalePaymentDays: getEnvInt("STALE_PAYMENT_DAYS", 30),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if len(AppConfig.APIKeys) == 0 {
		log.Println("Warning: API_KEYS is empty. Root endpoints will reject every request.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
