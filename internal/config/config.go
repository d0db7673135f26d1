package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Issuer    IssuerConfig
	Storage   StorageConfig
	Jobs      JobsConfig
	Logging   LoggingConfig
	Server    ServerConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
}

// DatabaseConfig holds settings for the offer store.
// Driver is "postgres" for deployments and "sqlite" for local development.
type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
}

// IssuerConfig identifies the company issuing offers. These values appear in
// the rendered document header and seller block.
type IssuerConfig struct {
	CompanyName   string
	Tagline       string
	Email         string
	Phone         string
	Website       string
	FallbackEmail string
}

// StorageConfig configures where archived offer documents are exported.
type StorageConfig struct {
	Mode                  string
	LocalBasePath         string
	CloudConnectionString string
	CloudContainer        string
}

// JobsConfig configures background jobs.
type JobsConfig struct {
	// ExpiryEnabled turns on the automatic expiry sweep that moves offers
	// past their validity date from active to expired.
	ExpiryEnabled bool
	// ExpirySchedule is the cron expression for the sweep.
	ExpirySchedule string
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout int
	EnableSwagger  bool
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerMinute int
	WhitelistPaths    []string
}

// ConnectionString builds a PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// RequestTimeoutDuration returns request timeout as duration
func (s *ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// Load loads configuration from file and environment variables.
// Environment variables override values from the optional config.json.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "offerflow")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "offerflow")
	v.SetDefault("database.user", "offerflow_user")
	v.SetDefault("database.password", "")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.sqlitepath", "offerflow.db")
	v.SetDefault("database.maxopenconns", 25)
	v.SetDefault("database.maxidleconns", 5)
	v.SetDefault("database.connmaxlifetime", 300)

	v.SetDefault("issuer.companyname", "VIS-SOL")
	v.SetDefault("issuer.tagline", "Dedykowane rozwiązania IT")
	v.SetDefault("issuer.email", "biuro@vis-sol.pl")
	v.SetDefault("issuer.phone", "783 864 780")
	v.SetDefault("issuer.website", "vis-sol.prv.pl")
	v.SetDefault("issuer.fallbackemail", "klient@firma.pl")

	v.SetDefault("storage.mode", "local")
	v.SetDefault("storage.localbasepath", "./archive")
	v.SetDefault("storage.cloudcontainer", "offer-archive")

	v.SetDefault("jobs.expiryenabled", false)
	v.SetDefault("jobs.expiryschedule", "@hourly")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("server.readtimeout", 15)
	v.SetDefault("server.writetimeout", 15)
	v.SetDefault("server.requesttimeout", 30)
	v.SetDefault("server.enableswagger", true)

	v.SetDefault("cors.allowedmethods", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedheaders", []string{"Accept", "Content-Type", "Authorization"})
	v.SetDefault("cors.maxage", 300)

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.requestsperminute", 120)
	v.SetDefault("ratelimit.whitelistpaths", []string{"/health", "/health/db"})
}
