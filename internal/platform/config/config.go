// Package config loads the relay configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
)

// Config holds every setting of the relay process.
type Config struct {
	Port     string `default:"8080"`
	APIKey   string
	LogLevel string `default:"info"`

	HTTP      HTTPConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Upstream  UpstreamConfig
	GitHub    GitHubConfig
}

// HTTPConfig configures the outbound HTTP client.
type HTTPConfig struct {
	Timeout       time.Duration `default:"10s"` // total timeout of one upstream request
	RatePerSecond float64       `default:"10"`  // outbound throttle
	Burst         int           `default:"5"`
}

// RateLimitConfig configures the inbound sliding window.
type RateLimitConfig struct {
	Requests int           `default:"10"`
	Window   time.Duration `default:"60s"`
}

// RedisConfig configures the optional Redis connection.
type RedisConfig struct {
	Host     string
	Port     string `default:"6379"`
	Password string
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool { return r.Host != "" }

// Addr returns host:port.
func (r RedisConfig) Addr() string { return r.Host + ":" + r.Port }

// CacheConfig configures the read-through cache.
type CacheConfig struct {
	TTL time.Duration `default:"5m"`
}

// UpstreamConfig holds the base URLs of every data source.
type UpstreamConfig struct {
	SebonBaseURL       string `default:"https://www.sebon.gov.np"`
	CDSCURL            string `default:"https://www.cdsc.com.np/"`
	NepalipaisaBaseURL string `default:"https://nepalipaisa.com/api"`
	SharesansarBaseURL string `default:"https://www.sharesansar.com"`
	ChukulBaseURL      string `default:"https://chukul.com/api"`
}

// GitHubConfig configures the publication sink.
type GitHubConfig struct {
	Token   string
	Owner   string
	Repo    string
	Branch  string `default:"main"`
	DataDir string `default:"data"`
}

// Enabled reports whether the sink has enough settings to write.
func (g GitHubConfig) Enabled() bool {
	return g.Token != "" && g.Owner != "" && g.Repo != ""
}

// Load reads an optional .env file, applies defaults and overrides them from the environment.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, fmt.Errorf("config defaults: %w", err)
	}

	setString(&cfg.Port, "PORT")
	setString(&cfg.APIKey, "API_KEY")
	setString(&cfg.LogLevel, "LOG_LEVEL")

	if err := setDuration(&cfg.HTTP.Timeout, "HTTP_TIMEOUT"); err != nil {
		return Config{}, err
	}
	if err := setFloat(&cfg.HTTP.RatePerSecond, "UPSTREAM_RPS"); err != nil {
		return Config{}, err
	}
	if err := setInt(&cfg.HTTP.Burst, "UPSTREAM_BURST"); err != nil {
		return Config{}, err
	}
	if err := setInt(&cfg.RateLimit.Requests, "RATE_LIMIT_REQUESTS"); err != nil {
		return Config{}, err
	}
	if err := setDuration(&cfg.RateLimit.Window, "RATE_LIMIT_WINDOW"); err != nil {
		return Config{}, err
	}

	setString(&cfg.Redis.Host, "REDIS_HOST")
	setString(&cfg.Redis.Port, "REDIS_PORT")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	if err := setDuration(&cfg.Cache.TTL, "CACHE_TTL"); err != nil {
		return Config{}, err
	}

	setString(&cfg.Upstream.SebonBaseURL, "SEBON_BASE_URL")
	setString(&cfg.Upstream.CDSCURL, "CDSC_URL")
	setString(&cfg.Upstream.NepalipaisaBaseURL, "NEPALIPAISA_BASE_URL")
	setString(&cfg.Upstream.SharesansarBaseURL, "SHARESANSAR_BASE_URL")
	setString(&cfg.Upstream.ChukulBaseURL, "CHUKUL_BASE_URL")

	setString(&cfg.GitHub.Token, "GITHUB_TOKEN")
	setString(&cfg.GitHub.Owner, "GITHUB_OWNER")
	setString(&cfg.GitHub.Repo, "GITHUB_REPO")
	setString(&cfg.GitHub.Branch, "GITHUB_BRANCH")
	setString(&cfg.GitHub.DataDir, "GITHUB_DATA_DIR")

	return cfg, nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("config %s: %w", key, err)
	}
	*dst = d
	return nil
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("config %s: %w", key, err)
	}
	*dst = f
	return nil
}
