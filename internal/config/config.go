package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultEnvFile         = ".env"
	defaultPort            = "3001"
	defaultAPIURL          = "https://api.airtable.com/v0"
	defaultTimeout         = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultAllowedOrigins  = "*"
)

// Keys shared by environment variables and command-line flags.
const (
	KeyEnvFile         = "ENV_FILE"
	KeyEnv             = "APP_ENV"
	KeyPort            = "PORT"
	KeyLogLevel        = "LOG_LEVEL"
	KeyAPIURL          = "AIRTABLE_API_URL"
	KeyBaseID          = "AIRTABLE_BASE_ID"
	KeyTable           = "AIRTABLE_TABLE_NAME"
	KeyToken           = "AIRTABLE_ACCESS_TOKEN"
	KeyTimeout         = "AIRTABLE_TIMEOUT"
	KeyAllowedOrigins  = "CORS_ALLOWED_ORIGINS"
	KeyShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

var ErrMissingValue = errors.New("missing required configuration value")

type Config struct {
	Env      string
	Server   Server
	Airtable Airtable
	Logger   Logger
}

type Server struct {
	Port            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Addr is the listen address for net/http.
func (s Server) Addr() string {
	return ":" + s.Port
}

// Airtable describes the table every record operation is proxied to.
type Airtable struct {
	APIURL  string
	BaseID  string
	Table   string
	Token   string
	Timeout time.Duration
}

// TableURL is the collection endpoint of the configured table.
func (a Airtable) TableURL() string {
	return strings.TrimRight(a.APIURL, "/") + "/" + a.BaseID + "/" + a.Table
}

type Logger struct {
	LogLevel string
}

// Load reads the optional .env file, then builds the configuration from the
// environment (and any flags bound to viper). Environment variables win
// over the .env file.
func Load() (*Config, error) {
	viper.SetDefault(KeyEnvFile, defaultEnvFile)
	viper.AutomaticEnv()

	if err := godotenv.Load(viper.GetString(KeyEnvFile)); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.SetDefault(KeyEnv, EnvLocal)
	viper.SetDefault(KeyPort, defaultPort)
	viper.SetDefault(KeyAPIURL, defaultAPIURL)
	viper.SetDefault(KeyTimeout, defaultTimeout)
	viper.SetDefault(KeyAllowedOrigins, defaultAllowedOrigins)
	viper.SetDefault(KeyShutdownTimeout, defaultShutdownTimeout)

	cfg := &Config{
		Env: viper.GetString(KeyEnv),
		Server: Server{
			Port:            viper.GetString(KeyPort),
			AllowedOrigins:  splitList(viper.GetString(KeyAllowedOrigins)),
			ShutdownTimeout: viper.GetDuration(KeyShutdownTimeout),
		},
		Airtable: Airtable{
			APIURL:  viper.GetString(KeyAPIURL),
			BaseID:  viper.GetString(KeyBaseID),
			Table:   viper.GetString(KeyTable),
			Token:   viper.GetString(KeyToken),
			Timeout: viper.GetDuration(KeyTimeout),
		},
		Logger: Logger{LogLevel: viper.GetString(KeyLogLevel)},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad is Load for process start-up: it exits on an invalid configuration.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func (c *Config) validate() error {
	var errs []error
	required := map[string]string{
		KeyBaseID: c.Airtable.BaseID,
		KeyTable:  c.Airtable.Table,
		KeyToken:  c.Airtable.Token,
	}
	for _, key := range []string{KeyBaseID, KeyTable, KeyToken} {
		if strings.TrimSpace(required[key]) == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingValue, key))
		}
	}

	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		errs = append(errs, fmt.Errorf("unknown %s %q", KeyEnv, c.Env))
	}

	return errors.Join(errs...)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
