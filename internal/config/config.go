package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string
	DbMaxConn int

	AutoMigrate bool

	Log      string
	LogLevel string
	LogDir   string
	Env      string // dev|prod

	CORSOrigins []string
}

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует — чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	maxConn, err := strconv.Atoi(def(os.Getenv("DB_MAX_CONNS"), "10"))
	if err != nil {
		return nil, fmt.Errorf("DB_MAX_CONNS: %w", err)
	}
	autoMigrate, err := strconv.ParseBool(def(os.Getenv("DB_AUTOMIGRATE"), "true"))
	if err != nil {
		return nil, fmt.Errorf("DB_AUTOMIGRATE: %w", err)
	}

	cfg := &Config{
		Port:      def(os.Getenv("PORT"), "8080"),
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),
		DbMaxConn: maxConn,

		AutoMigrate: autoMigrate,

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		LogDir:   def(os.Getenv("LOG_DIR"), "logs"),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		CORSOrigins: splitList(def(os.Getenv("CORS_ORIGINS"), "*")),
	}

	return cfg, nil
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}
	if c.DbMaxConn <= 0 {
		return nil, fmt.Errorf("DB_MAX_CONNS must be positive, got %d", c.DbMaxConn)
	}

	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}
	if !c.AutoMigrate {
		warnings = append(warnings, "DB_AUTOMIGRATE is off, schema must be applied manually")
	}
	for _, o := range c.CORSOrigins {
		if o == "*" && c.Env == "prod" {
			warnings = append(warnings, "CORS allows any origin in prod")
			break
		}
	}

	return warnings, nil
}

// GetDSN — полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&pool_max_conns=%d",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode, c.DbMaxConn,
	)
}

// GetDSNSafe — DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetMigrateURL — адрес для golang-migrate (драйвер pgx/v5).
func (c *Config) GetMigrateURL() string {
	return fmt.Sprintf(
		"pgx5://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
