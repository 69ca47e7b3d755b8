package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

// Backend is the REST API the console mirrors.
type Backend struct {
	BaseURL string        `yaml:"BASE_URL" env:"BACKEND_BASE_URL" env-default:"https://menvy-server.vercel.app/api/v2"`
	Timeout time.Duration `yaml:"TIMEOUT" env:"BACKEND_TIMEOUT" env-default:"10s"`
}

type Identity struct {
	JWTKey        string        `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	TokenTTL      time.Duration `yaml:"TOKEN_TTL" env:"TOKEN_TTL" env-default:"5m"`
	SessionTTL    time.Duration `yaml:"SESSION_TTL" env:"SESSION_TTL" env-default:"24h"`
	AdminEmail    string        `yaml:"ADMIN_EMAIL" env:"ADMIN_EMAIL"`
	AdminPassword string        `yaml:"ADMIN_PASSWORD" env:"ADMIN_PASSWORD"`
	AdminName     string        `yaml:"ADMIN_NAME" env:"ADMIN_NAME" env-default:"Administrator"`
}

// SendGrid delivers password reset codes. Without an API key password reset
// is unavailable.
type SendGrid struct {
	APIKey    string `yaml:"API_KEY" env:"SENDGRID_API_KEY"`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"no-reply@menvy.store"`
	FromName  string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Menvy Console"`
}

func (s SendGrid) Enabled() bool {
	return s.APIKey != ""
}

// Gate holds the shared secret for the products area.
type Gate struct {
	Username string        `yaml:"USERNAME" env:"GATE_USERNAME" env-default:"admin"`
	Password string        `yaml:"PASSWORD" env:"GATE_PASSWORD" env-default:"products123"`
	Window   time.Duration `yaml:"WINDOW" env:"GATE_WINDOW" env-default:"30m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15s"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"10m"`
	// Prefix namespaces Redis keys; the in-process cache ignores it.
	Prefix string `yaml:"prefix" env:"CACHE_PREFIX" env-default:"menvy"`
}

type Dashboard struct {
	Source   string        `yaml:"SOURCE" env:"DASHBOARD_SOURCE" env-default:"remote"`
	CacheTTL time.Duration `yaml:"CACHE_TTL" env:"DASHBOARD_CACHE_TTL" env-default:"30s"`
}

type View struct {
	PageSize int `yaml:"PAGE_SIZE" env:"VIEW_PAGE_SIZE" env-default:"10"`
}

type Sales struct {
	BillPrefix string `yaml:"BILL_PREFIX" env:"SALES_BILL_PREFIX" env-default:"MN"`
}

type Otel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"menvy-console"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-default:"production"`
	HTTPServer   `yaml:"http_server"`
	Backend      Backend      `yaml:"backend"`
	Identity     Identity     `yaml:"identity"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Gate         Gate         `yaml:"gate"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Cache        CacheConfig  `yaml:"cache"`
	Dashboard    Dashboard    `yaml:"dashboard"`
	View         View         `yaml:"view"`
	Sales        Sales        `yaml:"sales"`
	Otel         Otel         `yaml:"otel"`
}

func MustLoad() *Config {

	// a local .env is optional
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "path to the console config file")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = "config/local.yaml"
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not read config file: %s", err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Dashboard.Source {
	case DashboardSourceRemote, DashboardSourceLocal:
	default:
		return fmt.Errorf("invalid dashboard source %q: want %q or %q", c.Dashboard.Source, DashboardSourceRemote, DashboardSourceLocal)
	}

	if c.View.PageSize < 1 {
		return fmt.Errorf("view page size must be positive, got %d", c.View.PageSize)
	}

	if len(c.Sales.BillPrefix) != 2 {
		return fmt.Errorf("bill prefix must be two letters, got %q", c.Sales.BillPrefix)
	}
	for _, r := range c.Sales.BillPrefix {
		if r < 'A' || r > 'Z' {
			return fmt.Errorf("bill prefix must be upper-case A-Z, got %q", c.Sales.BillPrefix)
		}
	}

	return nil
}

const (
	DashboardSourceRemote = "remote"
	DashboardSourceLocal  = "local"
)

// Enabled reports whether a Redis instance is configured.
func (r *RedisConnect) Enabled() bool {
	return r.Host != ""
}

func (r *RedisConnect) GetDSN() string {
	if r.Username == "" && r.Password == "" {
		return fmt.Sprintf("redis://%s:%s/%d", r.Host, r.Port, r.DB)
	}
	return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
}
