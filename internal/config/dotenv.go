package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

const (
	// NotifyCommitBeforeSend commits the dedup row first, then sends the
	// operator summary best-effort. A notifier outage loses the one summary
	// email with no replay path.
	NotifyCommitBeforeSend = "commit-before-send"
	// NotifySendBeforeCommit sends first and commits the dedup row after a
	// confirmed send. A crash or race between send and commit can duplicate
	// the summary.
	NotifySendBeforeCommit = "send-before-commit"
)

type Config struct {
	BaseURL                  string
	OperatorEmail            string
	MailFrom                 string
	ResendAPIKey             string
	NotifyOrder              string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeSeconds int
	DBConnMaxIdleTimeSeconds int
}

func Default() Config {
	return Config{
		BaseURL:                  "http://localhost:8080",
		OperatorEmail:            "operator@deadair.local",
		MailFrom:                 "Dead Air <games@deadair.local>",
		NotifyOrder:              NotifyCommitBeforeSend,
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("BASE_URL"); raw != "" {
		cfg.BaseURL = raw
	}
	if raw := os.Getenv("OPERATOR_EMAIL"); raw != "" {
		cfg.OperatorEmail = raw
	}
	if raw := os.Getenv("MAIL_FROM"); raw != "" {
		cfg.MailFrom = raw
	}
	if raw := os.Getenv("RESEND_API_KEY"); raw != "" {
		cfg.ResendAPIKey = raw
	}
	if raw := os.Getenv("NOTIFY_ORDER"); raw == NotifyCommitBeforeSend || raw == NotifySendBeforeCommit {
		cfg.NotifyOrder = raw
	}
	if raw := os.Getenv("DB_MAX_OPEN_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxOpenConns = value
		}
	}
	if raw := os.Getenv("DB_MAX_IDLE_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxIdleConns = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_LIFETIME_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxLifetimeSeconds = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_IDLE_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxIdleTimeSeconds = value
		}
	}
	return cfg
}
