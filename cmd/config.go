package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"marketplace/internal/pkg/errs"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration, read from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	LogLevel  string

	// RedisAddr enables the GEO index for panic routing when set.
	RedisAddr string

	// KafkaBrokers enables publishing of domain events when set.
	KafkaBrokers          []string
	KafkaJobEventsTopic   string
	KafkaPanicEventsTopic string

	RelayHeartbeatSpec    string
	CenterIndexSyncSpec   string
	OtpRateLimitPerMinute int
}

const (
	defaultHTTPPort              = "8080"
	defaultDBSslMode             = "disable"
	defaultLogLevel              = "info"
	defaultJobEventsTopic        = "marketplace.job-events"
	defaultPanicEventsTopic      = "marketplace.panic-events"
	defaultRelayHeartbeatSpec    = "*/30 * * * * *"
	defaultCenterIndexSyncSpec   = "0 */5 * * * *"
	defaultOtpRateLimitPerMinute = 5
)

// LoadConfig reads .env when it exists and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	otpLimit, err := intVariable("OTP_RATE_LIMIT_PER_MINUTE", defaultOtpRateLimitPerMinute)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		HTTPPort:              variable("HTTP_PORT", defaultHTTPPort),
		DBHost:                variable("DB_HOST", ""),
		DBPort:                variable("DB_PORT", "5432"),
		DBUser:                variable("DB_USER", ""),
		DBPassword:            variable("DB_PASSWORD", ""),
		DBName:                variable("DB_NAME", ""),
		DBSslMode:             variable("DB_SSLMODE", defaultDBSslMode),
		JWTSecret:             variable("JWT_SECRET", ""),
		LogLevel:              variable("LOG_LEVEL", defaultLogLevel),
		RedisAddr:             variable("REDIS_ADDR", ""),
		KafkaBrokers:          listVariable("KAFKA_BROKERS"),
		KafkaJobEventsTopic:   variable("KAFKA_JOB_EVENTS_TOPIC", defaultJobEventsTopic),
		KafkaPanicEventsTopic: variable("KAFKA_PANIC_EVENTS_TOPIC", defaultPanicEventsTopic),
		RelayHeartbeatSpec:    variable("RELAY_HEARTBEAT_SPEC", defaultRelayHeartbeatSpec),
		CenterIndexSyncSpec:   variable("CENTER_INDEX_SYNC_SPEC", defaultCenterIndexSyncSpec),
		OtpRateLimitPerMinute: otpLimit,
	}
	return config, nil
}

// ValidateDatabase reports every missing database setting at once.
func (c Config) ValidateDatabase() error {
	required := []struct{ name, value string }{
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
	}

	var problems []error
	for _, setting := range required {
		if setting.value == "" {
			problems = append(problems, errs.NewValueIsRequiredError(setting.name))
		}
	}
	return errors.Join(problems...)
}

// Validate checks everything the API server needs.
func (c Config) Validate() error {
	problems := []error{c.ValidateDatabase()}
	if c.JWTSecret == "" {
		problems = append(problems, errs.NewValueIsRequiredError("JWT_SECRET"))
	}
	if c.OtpRateLimitPerMinute < 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("OTP_RATE_LIMIT_PER_MINUTE", c.OtpRateLimitPerMinute, 0, "unbounded"))
	}
	if len(c.KafkaBrokers) > 0 && (c.KafkaJobEventsTopic == "" || c.KafkaPanicEventsTopic == "") {
		problems = append(problems, errs.NewValueIsRequiredError("KAFKA_JOB_EVENTS_TOPIC and KAFKA_PANIC_EVENTS_TOPIC"))
	}
	return errors.Join(problems...)
}

// DSN is the libpq connection string shared by GORM and database/sql.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func variable(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func intVariable(key string, fallback int) (int, error) {
	raw := variable(key, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return value, nil
}

func listVariable(key string) []string {
	var items []string
	for _, item := range strings.Split(variable(key, ""), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
