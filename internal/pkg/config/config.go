package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Cookie      CookieConfig
	Log         LogConfig
	JWT         JWTConfig
	Reservation ReservationConfig
	QR          QRConfig
	Mail        MailConfig
	Redis       RedisConfig
	RateLimit   RateLimitConfig
	Backfill    BackfillConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Colombo"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Colombo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type ReservationConfig struct {
	MaxPerUser        int           `envconfig:"RESERVATION_MAX_PER_USER" default:"3"`
	SideEffectTimeout time.Duration `envconfig:"RESERVATION_SIDE_EFFECT_TIMEOUT" default:"5s"`
}

type QRConfig struct {
	Dir  string `envconfig:"QR_CODE_DIR" default:"qr-codes"`
	Size int    `envconfig:"QR_CODE_SIZE" default:"200"`
}

// Missing credentials switch the mailer to log-only mode.
type MailConfig struct {
	APIKey    string        `envconfig:"MAILERSEND_API_KEY" default:""`
	FromEmail string        `envconfig:"MAIL_FROM_EMAIL" default:""`
	FromName  string        `envconfig:"MAIL_FROM_NAME" default:"Colombo International Bookfair"`
	Timeout   time.Duration `envconfig:"MAIL_TIMEOUT" default:"10s"`
}

func (c MailConfig) Enabled() bool {
	return c.APIKey != "" && c.FromEmail != ""
}

// Empty Addr disables redis-backed features.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Capacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"20"`
	RefillTokens   int           `envconfig:"RATE_LIMIT_REFILL_TOKENS" default:"1"`
	RefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"3s"`
	TTL            time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
	Prefix         string        `envconfig:"RATE_LIMIT_PREFIX" default:"rl"`
}

// Interval 0 disables the sweep.
type BackfillConfig struct {
	Interval    time.Duration `envconfig:"BACKFILL_INTERVAL" default:"1m"`
	GracePeriod time.Duration `envconfig:"BACKFILL_GRACE_PERIOD" default:"30s"`
	BatchSize   int32         `envconfig:"BACKFILL_BATCH_SIZE" default:"50"`
	MaxAttempts int32         `envconfig:"BACKFILL_MAX_ATTEMPTS" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// loadDotEnv reads .env when present; real environment variables win.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}
	return nil
}

func LoadConfig() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Colombo",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Colombo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-bookfair",
			Duration: "1h",
		},
		Reservation: ReservationConfig{
			MaxPerUser:        3,
			SideEffectTimeout: 2 * time.Second,
		},
		QR: QRConfig{
			Dir:  "qr-codes-test",
			Size: 128,
		},
		Mail: MailConfig{
			FromName: "Colombo International Bookfair",
			Timeout:  time.Second,
		},
		RateLimit: RateLimitConfig{
			Enabled:        false,
			Capacity:       20,
			RefillTokens:   1,
			RefillInterval: time.Second,
			TTL:            time.Minute,
			Prefix:         "rl-test",
		},
		Backfill: BackfillConfig{
			Interval:    0,
			GracePeriod: time.Second,
			BatchSize:   10,
			MaxAttempts: 3,
		},
	}
}
