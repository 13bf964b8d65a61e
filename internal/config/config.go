package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	FreshRSS    FreshRSSConfig    `yaml:"freshrss"`
	Readability ReadabilityConfig `yaml:"readability"`
	Cache       CacheConfig       `yaml:"cache"`
	RabbitMQ    RabbitMQConfig    `yaml:"rabbitmq"`
	HTTP        HTTPConfig        `yaml:"http"`
	Session     SessionConfig     `yaml:"session"`
	LogLevel    string            `yaml:"log_level"`
}

// RabbitMQConfig is optional: with an empty URL no state changes are published.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type FreshRSSConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	PageSize int           `yaml:"page_size"`
	MaxPages int           `yaml:"max_pages"`
	Timeout  time.Duration `yaml:"timeout"`
	Retry    RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type ReadabilityConfig struct {
	BaseURL          string        `yaml:"base_url"`
	Timeout          time.Duration `yaml:"timeout"`
	MinContentLength int           `yaml:"min_content_length"`
}

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type CacheConfig struct {
	Driver   string `yaml:"driver"`
	RedisURL string `yaml:"redis_url"`
	Prefix   string `yaml:"prefix"`
}

type HTTPConfig struct {
	Addr            string        `yaml:"addr"`
	PublicURL       string        `yaml:"public_url"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	RSSAuthorName   string        `yaml:"rss_author_name"`
	RSSAuthorEmail  string        `yaml:"rss_author_email"`
}

type SessionConfig struct {
	RefreshInterval      time.Duration `yaml:"refresh_interval"`
	RequestTimeout       time.Duration `yaml:"request_timeout"`
	BackgroundRevalidate bool          `yaml:"background_revalidate"`
	OptimisticMutations  bool          `yaml:"optimistic_mutations"`
	DateLimit            int           `yaml:"date_limit"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "news_briefing"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "article_state"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "article_state_changes"
	}
	if c.FreshRSS.PageSize == 0 {
		c.FreshRSS.PageSize = 100
	}
	if c.FreshRSS.MaxPages == 0 {
		c.FreshRSS.MaxPages = 10
	}
	if c.FreshRSS.Timeout == 0 {
		c.FreshRSS.Timeout = 30 * time.Second
	}
	if c.FreshRSS.Retry.MaxAttempts == 0 {
		c.FreshRSS.Retry.MaxAttempts = 3
	}
	if c.FreshRSS.Retry.InitialBackoff == 0 {
		c.FreshRSS.Retry.InitialBackoff = 1 * time.Second
	}
	if c.FreshRSS.Retry.MaxBackoff == 0 {
		c.FreshRSS.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Readability.Timeout == 0 {
		c.Readability.Timeout = 15 * time.Second
	}
	if c.Readability.MinContentLength == 0 {
		c.Readability.MinContentLength = 200
	}
	if c.Cache.Driver == "" {
		c.Cache.Driver = CacheDriverMemory
	}
	if c.Cache.Prefix == "" {
		c.Cache.Prefix = "briefing:cache:"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.HTTP.PublicURL == "" {
		c.HTTP.PublicURL = "http://localhost" + c.HTTP.Addr
	}
	if c.HTTP.ShutdownTimeout == 0 {
		c.HTTP.ShutdownTimeout = 10 * time.Second
	}
	if c.Session.RefreshInterval == 0 {
		c.Session.RefreshInterval = 15 * time.Minute
	}
	if c.Session.RequestTimeout == 0 {
		c.Session.RequestTimeout = 20 * time.Second
	}
	if c.Session.DateLimit == 0 {
		c.Session.DateLimit = 30
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	if c.FreshRSS.BaseURL == "" {
		return fmt.Errorf("freshrss.base_url is required")
	}
	switch c.Cache.Driver {
	case CacheDriverMemory:
	case CacheDriverRedis:
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("cache.redis_url is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown cache driver %q", c.Cache.Driver)
	}
	return nil
}
