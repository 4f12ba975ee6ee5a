package config

import (
	"fmt"
	"net"
	"time"

	"github.com/caarlos0/env/v11"    // Struct parsing from environment variables
	"github.com/go-sql-driver/mysql" // DSN formatting for MySQL
	"github.com/joho/godotenv"       // For loading .env files
)

// Driver names accepted in DB_DRIVER
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config holds the application configuration
type Config struct {
	AppPort    string `env:"APP_PORT" envDefault:"8080"`         // Application port
	DBDriver   string `env:"DB_DRIVER" envDefault:"mysql"`       // mysql or sqlite
	DBUser     string `env:"DB_USER"`                            // Database user
	DBPassword string `env:"DB_PASSWORD"`                        // Database password
	DBHost     string `env:"DB_HOST" envDefault:"127.0.0.1"`     // Database host
	DBPort     string `env:"DB_PORT" envDefault:"3306"`          // Database port
	DBName     string `env:"DB_NAME" envDefault:"events"`        // Database name
	SQLitePath string `env:"SQLITE_PATH" envDefault:"events.db"` // Database file when DB_DRIVER=sqlite

	JWTSecret  string        `env:"JWT_SECRET,required,notEmpty"` // Signs session handles
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`  // Session lifetime

	RedisAddr string        `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"` // Redis server address
	RedisPass string        `env:"REDIS_PASS"`                             // Redis password
	RedisDB   int           `env:"REDIS_DB" envDefault:"0"`                // Redis database number
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"60s"`             // TTL for cached list reads

	IsProd    bool   `env:"IS_PROD" envDefault:"false"` // Is production environment
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	AllowAdminSignup bool    `env:"ALLOW_ADMIN_SIGNUP" envDefault:"true"` // Public registration may request the admin role
	BcryptCost       int     `env:"BCRYPT_COST" envDefault:"10"`
	LoginRate        float64 `env:"LOGIN_RATE" envDefault:"0.2"` // Login attempts per second per client
	LoginBurst       int     `env:"LOGIN_BURST" envDefault:"5"`
}

// LoadConfig loads configuration from a .env file (if present) and the environment
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBDriver != DriverMySQL && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

// MySQLDSN builds the Data Source Name for the MySQL connection
func (c *Config) MySQLDSN() string {
	mc := mysql.NewConfig()
	mc.User = c.DBUser
	mc.Passwd = c.DBPassword
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.DBHost, c.DBPort)
	mc.DBName = c.DBName
	mc.ParseTime = true
	return mc.FormatDSN()
}
