package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment. All
// values arrive as opaque strings; nothing beyond presence/defaulting is
// checked here.
type Config struct {
	Port string `env:"PORT" envDefault:"5000"`

	DBHost     string `env:"DB_HOST"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`

	// DatabaseURL overrides the DB_* variables when set. Anything that is
	// not a mysql/postgres URL is treated as a sqlite path, which is how
	// local development runs.
	DatabaseURL string `env:"DATABASE_URL"`

	// PublicBaseURL is the client-facing address of this API, handed to the
	// gallery so image links resolve from the browser's side of the network.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:5000"`

	UploadDir string `env:"UPLOAD_DIR" envDefault:"schoolImages"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load reads config.env (the deployment's historical name) or .env when
// present, then parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load("config.env")
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// DSN builds the connection string for database.Connect. DATABASE_URL wins;
// otherwise the DB_* variables are assembled into a MySQL DSN with the fixed
// 60s dial/read/write timeouts the service has always run with.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true&timeout=60s&readTimeout=60s&writeTimeout=60s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}
