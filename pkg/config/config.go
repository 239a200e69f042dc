package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const (
	GraceMinutesMax = 120
)

type Config struct {
	HTTP     HTTPConfig
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Postgres PostgresConfig
	JWT      JWTConfig
	Identity IdentityConfig
	Kafka    KafkaConfig
	Mailer   MailerConfig

	Attendance AttendanceConfig
	Session    SessionConfig
	RateLimit  RateLimitConfig

	SeedDemoAccounts bool `env:"SEED_DEMO_ACCOUNTS" envDefault:"false"`
	PasswordHashCost int  `env:"PASSWORD_HASH_COST" envDefault:"10"`
}

type HTTPConfig struct {
	Port            int           `env:"HTTP_PORT"             envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// Peers allowed to set X-Forwarded-For / X-Real-IP, as IPs or CIDRs.
	TrustedProxies []string `env:"HTTP_TRUSTED_PROXIES" envSeparator:","`
}

// TrustedPrefixes parses TrustedProxies. A bare address becomes a single
// host prefix.
func (h HTTPConfig) TrustedPrefixes() ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(h.TrustedProxies))

	for _, raw := range h.TrustedProxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		if strings.Contains(raw, "/") {
			p, err := netip.ParsePrefix(raw)
			if err != nil {
				return nil, fmt.Errorf("HTTP_TRUSTED_PROXIES: %w", err)
			}

			prefixes = append(prefixes, p.Masked())

			continue
		}

		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("HTTP_TRUSTED_PROXIES: %w", err)
		}

		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}

	return prefixes, nil
}

type PostgresConfig struct {
	DSN      string `env:"POSTGRES_DSN"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type JWTConfig struct {
	Secret         string        `env:"JWT_SECRET"`
	Issuer         string        `env:"JWT_ISSUER"           envDefault:"attendance"`
	AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" envDefault:"12h"`
}

// IdentityConfig points at a remote identity service. An empty ServiceURL keeps
// authentication on the local Postgres directory.
type IdentityConfig struct {
	ServiceURL    string        `env:"IDENTITY_SERVICE_URL"`
	Timeout       time.Duration `env:"IDENTITY_TIMEOUT"        envDefault:"5s"`
	RetryAttempts int           `env:"IDENTITY_RETRY_ATTEMPTS" envDefault:"3"`
}

type KafkaConfig struct {
	Brokers           []string `env:"KAFKA_BROKERS"            envDefault:"kafka:9092" envSeparator:","`
	NotificationTopic string   `env:"KAFKA_NOTIFICATION_TOPIC" envDefault:"send-notifications"`
	ConsumerID        string   `env:"KAFKA_CONSUMER_ID"        envDefault:"attendance-notifier"`
}

type MailerConfig struct {
	From     string `env:"MAILER_FROM"`
	FromName string `env:"MAILER_FROM_NAME" envDefault:"Attendance"`
	Host     string `env:"MAILER_HOST"`
	Port     int    `env:"MAILER_PORT"      envDefault:"587"`
	Login    string `env:"MAILER_LOGIN"`
	Password string `env:"MAILER_PASSWORD"`
}

type AttendanceConfig struct {
	WorkdayStart        string          `env:"WORKDAY_START"         envDefault:"09:00"`
	TimeZone            string          `env:"TIME_ZONE"             envDefault:"UTC"`
	AnnualLeaveDays     decimal.Decimal `env:"ANNUAL_LEAVE_DAYS"     envDefault:"20"`
	DefaultGraceMinutes int             `env:"DEFAULT_GRACE_MINUTES" envDefault:"15"`
}

type SessionConfig struct {
	CleanupInterval   time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"1h"`
	AttemptRetention  time.Duration `env:"ATTEMPT_RETENTION"        envDefault:"720h"`
	AttemptCleanEvery time.Duration `env:"ATTEMPT_CLEANUP_INTERVAL" envDefault:"24h"`
}

type RateLimitConfig struct {
	PerSecond float64 `env:"LOGIN_RATE_PER_SECOND" envDefault:"2"`
	Burst     int     `env:"LOGIN_RATE_BURST"      envDefault:"20"`
}

// New loads the API service configuration.
func New(envPath string) (Config, error) {
	c, err := load(envPath)
	if err != nil {
		return Config{}, err
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// NewNotifier loads the configuration of the email notifier, which needs
// Kafka and SMTP settings only.
func NewNotifier(envPath string) (Config, error) {
	c, err := load(envPath)
	if err != nil {
		return Config{}, err
	}

	if c.Mailer.Host == "" || c.Mailer.From == "" {
		return Config{}, errors.New("MAILER_HOST and MAILER_FROM are required")
	}

	if len(c.Kafka.Brokers) == 0 {
		return Config{}, errors.New("KAFKA_BROKERS is required")
	}

	return c, nil
}

func load(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}

	if _, err := time.Parse("15:04", c.Attendance.WorkdayStart); err != nil {
		return fmt.Errorf("WORKDAY_START must be HH:MM: %w", err)
	}

	if _, err := time.LoadLocation(c.Attendance.TimeZone); err != nil {
		return fmt.Errorf("TIME_ZONE: %w", err)
	}

	if c.PasswordHashCost < bcrypt.MinCost || c.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("PASSWORD_HASH_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	if _, err := c.HTTP.TrustedPrefixes(); err != nil {
		return err
	}

	if c.Attendance.DefaultGraceMinutes < 0 || c.Attendance.DefaultGraceMinutes > GraceMinutesMax {
		return fmt.Errorf("DEFAULT_GRACE_MINUTES must be between 0 and %d", GraceMinutesMax)
	}

	return nil
}

// Location returns the configured time zone; validate guarantees it loads.
func (a AttendanceConfig) Location() *time.Location {
	loc, err := time.LoadLocation(a.TimeZone)
	if err != nil {
		return time.UTC
	}

	return loc
}

// WorkdayStartOffset is the offset of the workday start from local midnight.
func (a AttendanceConfig) WorkdayStartOffset() time.Duration {
	t, err := time.Parse("15:04", a.WorkdayStart)
	if err != nil {
		return 9 * time.Hour
	}

	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}
