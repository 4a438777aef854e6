package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application configuration
type Config struct {
	Port     string
	Storage  string
	DBConn   string
	LogLevel string

	JWTSecret     string
	JWTTTL        time.Duration
	AdminUsername string
	AdminPassword string

	HMACSecret    string
	EncryptionKey []byte

	RedisAddr string
	LockTTL   time.Duration

	AMQPURL        string
	EventsExchange string

	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SenderEmail      string
	ReminderSchedule string
	ReminderLeadDays int

	// Loan terms applied at origination
	LoanDurationMonths int
	LoanInterestRate   decimal.Decimal
	LoanDueDay         int
	Location           *time.Location
}

// NewConfig loads configuration from environment variables, reading a .env file first when present
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		Storage:          getEnv("STORAGE", "postgres"),
		DBConn:           getEnv("DB_CONN", "host=localhost port=5436 user=test password=test dbname=loans sslmode=disable"),
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:        getEnv("JWT_SECRET", "secret"),
		AdminUsername:    getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
		HMACSecret:       getEnv("HMAC_SECRET", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6"),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		AMQPURL:          getEnv("AMQP_URL", ""),
		EventsExchange:   getEnv("EVENTS_EXCHANGE", "loans"),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		SenderEmail:      getEnv("SENDER_EMAIL", "no-reply@loans.local"),
		ReminderSchedule: getEnv("REMINDER_SCHEDULE", "0 9 * * *"),
	}

	var err error
	if cfg.JWTTTL, err = getEnvDuration("JWT_TTL", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.LockTTL, err = getEnvDuration("LOCK_TTL", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.ReminderLeadDays, err = getEnvInt("REMINDER_LEAD_DAYS", 3); err != nil {
		return nil, err
	}
	if cfg.LoanDurationMonths, err = getEnvInt("LOAN_DURATION_MONTHS", 9); err != nil {
		return nil, err
	}
	if cfg.LoanDueDay, err = getEnvInt("LOAN_DUE_DAY", 13); err != nil {
		return nil, err
	}
	if cfg.LoanInterestRate, err = decimal.NewFromString(getEnv("LOAN_INTEREST_RATE", "0.20")); err != nil {
		return nil, fmt.Errorf("invalid LOAN_INTEREST_RATE: %w", err)
	}
	if cfg.Location, err = time.LoadLocation(getEnv("TIMEZONE", "UTC")); err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	if cfg.EncryptionKey, err = hex.DecodeString(getEnv("ENCRYPTION_KEY", "a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5d6")); err != nil {
		return nil, fmt.Errorf("invalid ENCRYPTION_KEY: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Storage != "postgres" && c.Storage != "memory" {
		return fmt.Errorf("STORAGE must be postgres or memory, got %q", c.Storage)
	}
	if c.Storage == "postgres" && c.DBConn == "" {
		return fmt.Errorf("DB_CONN is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.HMACSecret == "" {
		return fmt.Errorf("HMAC_SECRET is required")
	}
	if n := len(c.EncryptionKey); n != 16 && n != 24 && n != 32 {
		return fmt.Errorf("ENCRYPTION_KEY must decode to 16, 24 or 32 bytes, got %d", n)
	}
	if c.LoanDurationMonths < 1 {
		return fmt.Errorf("LOAN_DURATION_MONTHS must be at least 1")
	}
	if c.LoanDueDay < 1 || c.LoanDueDay > 31 {
		return fmt.Errorf("LOAN_DUE_DAY must be between 1 and 31")
	}
	if c.LoanInterestRate.IsNegative() {
		return fmt.Errorf("LOAN_INTEREST_RATE must not be negative")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
