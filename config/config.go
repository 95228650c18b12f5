package config

import (
	// Go Internal Packages
	"time"

	// Local Packages
	errors "bospay-gateway/errors"
)

var DefaultConfig = []byte(`
application: "bospay-gateway"

logger:
  level: "debug"

is_prod_mode: false

server:
  addr: ":8080"

backend:
  base_url: "https://my-next-backend-two.vercel.app"
  timeout_seconds: 15

cache:
  mode: "memory"
  org_ttl_minutes: 60
  list_ttl_minutes: 5

redis:
  uri: "localhost:6379"
  password: ""

retry:
  max_attempts: 3
  initial_interval_ms: 200
`)

type Config struct {
	Application string  `koanf:"application"`
	Logger      Logger  `koanf:"logger"`
	IsProdMode  bool    `koanf:"is_prod_mode"`
	Server      Server  `koanf:"server"`
	Backend     Backend `koanf:"backend"`
	Cache       Cache   `koanf:"cache"`
	Redis       Redis   `koanf:"redis"`
	Retry       Retry   `koanf:"retry"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

type Backend struct {
	BaseURL        string `koanf:"base_url"`
	TimeoutSeconds int    `koanf:"timeout_seconds"`
}

// Cache mode selects where fetched responses are kept between requests:
// "memory" for an in-process TTL cache, "redis" for a shared one, "off"
// to hit the upstream on every request.
type Cache struct {
	Mode           string `koanf:"mode"`
	OrgTTLMinutes  int    `koanf:"org_ttl_minutes"`
	ListTTLMinutes int    `koanf:"list_ttl_minutes"`
}

func (c Cache) OrgTTL() time.Duration  { return time.Duration(c.OrgTTLMinutes) * time.Minute }
func (c Cache) ListTTL() time.Duration { return time.Duration(c.ListTTLMinutes) * time.Minute }

type Redis struct {
	URI      string `koanf:"uri"`
	Password string `koanf:"password"`
}

type Retry struct {
	MaxAttempts       int `koanf:"max_attempts"`
	InitialIntervalMs int `koanf:"initial_interval_ms"`
}

func (r Retry) InitialInterval() time.Duration {
	return time.Duration(r.InitialIntervalMs) * time.Millisecond
}

// Validate validates the configuration
func (c *Config) Validate() error {
	ve := errors.ValidationErrs()

	if c.Application == "" {
		ve.Add("application", "cannot be empty")
	}
	if c.Logger.Level == "" {
		ve.Add("logger.level", "cannot be empty")
	}
	if c.Server.Addr == "" {
		ve.Add("server.addr", "cannot be empty")
	}
	if c.Backend.BaseURL == "" {
		ve.Add("backend.base_url", "cannot be empty")
	}
	if c.Backend.TimeoutSeconds <= 0 {
		ve.Add("backend.timeout_seconds", "must be positive")
	}
	switch c.Cache.Mode {
	case "memory", "redis", "off":
	default:
		ve.Add("cache.mode", "must be one of memory, redis, off")
	}
	if c.Cache.Mode == "redis" && c.Redis.URI == "" {
		ve.Add("redis.uri", "cannot be empty")
	}
	if c.Retry.MaxAttempts <= 0 {
		ve.Add("retry.max_attempts", "must be positive")
	}

	return ve.Err()
}
